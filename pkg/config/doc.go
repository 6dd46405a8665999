// Package config loads the browscap service configuration from the
// environment.
//
// Values come from process environment variables, optionally seeded from
// .env files through github.com/joho/godotenv, and are parsed into typed
// structs with github.com/caarlos0/env/v11. Every variable carries the
// BROWSCAP_ prefix:
//
//	BROWSCAP_DB_LOCATION            database file: path, file:// URL or s3://bucket/key
//	BROWSCAP_DB_S3_REGION           S3 region (default us-east-1)
//	BROWSCAP_DB_S3_ENDPOINT         S3-compatible endpoint, e.g. MinIO
//	BROWSCAP_DB_S3_ACCESS_KEY_ID    static credentials (optional)
//	BROWSCAP_DB_S3_SECRET_KEY
//	BROWSCAP_DB_S3_FORCE_PATH_STYLE
//	BROWSCAP_LOG_LEVEL              debug, info, warn, error (overrides the env preset)
//	BROWSCAP_LOG_FORMAT             json or text (overrides the env preset)
//	BROWSCAP_LOG_ENV                development, staging, production
//	BROWSCAP_LOG_SERVICE
//	BROWSCAP_HTTP_ADDR              listen address (default :8080)
//	BROWSCAP_HTTP_*_TIMEOUT         READ, READ_HEADER, WRITE, IDLE, SHUTDOWN
//	BROWSCAP_LOOKUP_MAX_BATCH       user agents accepted per batch request
//	BROWSCAP_LOOKUP_MAX_BODY_BYTES  request body limit
//
// # Usage
//
//	cfg, err := config.Load() // reads ./.env when present
//	if err != nil {
//	    return err
//	}
//	opts, _ := cfg.Log.Options()
//	log := logger.New(opts...)
//
// Variables already present in the environment take precedence over .env
// files, and earlier files take precedence over later ones.
//
// # Error Handling
//
// ErrLoadingEnvFile, ErrParsingConfig and ErrInvalidConfig are joined with
// the underlying cause and can be matched with errors.Is.
package config
