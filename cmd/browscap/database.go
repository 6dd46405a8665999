package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/browscap/pkg/browscap"
	"github.com/dmitrymomot/browscap/pkg/datafile"
	"github.com/dmitrymomot/browscap/pkg/logger"
)

// openDatabase fetches, decompresses and parses the database at location.
func openDatabase(ctx context.Context, location string, s3cfg datafile.S3Config, log *slog.Logger) (*browscap.DB, error) {
	start := time.Now()

	rc, err := datafile.Open(ctx, location, s3cfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't load browscap data: %w", err)
	}
	defer rc.Close()

	db, err := browscap.Open(rc, browscap.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("couldn't load browscap data: %w", err)
	}

	meta := db.Metadata()
	log.DebugContext(ctx, "browscap database loaded",
		logger.Location(location),
		logger.Variant(meta.Variant.String()),
		slog.String("version", meta.Version),
		logger.Count(db.Len()),
		logger.Duration(time.Since(start)),
	)
	return db, nil
}
