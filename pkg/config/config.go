package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/browscap/pkg/datafile"
	"github.com/dmitrymomot/browscap/pkg/httpserver"
	"github.com/dmitrymomot/browscap/pkg/logger"
	"github.com/dmitrymomot/browscap/pkg/lookupapi"
)

// Config is the complete application configuration.
type Config struct {
	Database DatabaseConfig    `envPrefix:"BROWSCAP_DB_"`
	Log      LogConfig         `envPrefix:"BROWSCAP_LOG_"`
	HTTP     httpserver.Config `envPrefix:"BROWSCAP_HTTP_"`
	Lookup   lookupapi.Config  `envPrefix:"BROWSCAP_LOOKUP_"`
}

// DatabaseConfig locates the browscap.ini file.
type DatabaseConfig struct {
	// Location is a local path, a file:// URL or s3://bucket/key.
	// Compressed files (.gz, .zst) are detected automatically.
	Location string            `env:"LOCATION"`
	S3       datafile.S3Config `envPrefix:"S3_"`
}

// LogConfig configures the process logger.
//
// Env selects a preset: production and staging log JSON at info, anything
// else logs text at debug. Level and Format override the preset when set.
// Without Env the logger writes JSON at info.
type LogConfig struct {
	Level   string        `env:"LEVEL"`
	Format  logger.Format `env:"FORMAT"`
	Env     string        `env:"ENV"`
	Service string        `env:"SERVICE" envDefault:"browscap"`
}

// Options converts the log settings into logger options.
func (c LogConfig) Options() ([]logger.Option, error) {
	level, format := c.Level, c.Format
	if c.Env == "" {
		if level == "" {
			level = "info"
		}
		if format == "" {
			format = logger.FormatJSON
		}
	}

	var opts []logger.Option
	if c.Env != "" {
		opts = append(opts, logger.WithEnvironment(c.Env, c.Service))
	} else if c.Service != "" {
		opts = append(opts, logger.WithAttr(slog.String("service", c.Service)))
	}

	if level != "" {
		l, err := logger.ParseLevel(level)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		opts = append(opts, logger.WithLevel(l))
	}
	if format != "" {
		if format != logger.FormatJSON && format != logger.FormatText {
			return nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, format)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return opts, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := c.Log.Options(); err != nil {
		return err
	}
	if c.Lookup.MaxBatch <= 0 {
		return fmt.Errorf("%w: lookup max batch must be positive", ErrInvalidConfig)
	}
	if c.Lookup.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: lookup max body bytes must be positive", ErrInvalidConfig)
	}
	return nil
}
