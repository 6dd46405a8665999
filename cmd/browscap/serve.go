package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/browscap/pkg/httpserver"
	"github.com/dmitrymomot/browscap/pkg/logger"
	"github.com/dmitrymomot/browscap/pkg/lookupapi"
)

var errNoDatabase = errors.New("no database: pass a location or set BROWSCAP_DB_LOCATION")

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [database-file]",
		Short: "Serve the HTTP lookup API",
		Long: `Load the database once and serve lookups over HTTP until interrupted.

Routes: GET /lookup?ua=, POST /lookup, GET /schema, /healthz, /readyz, /metrics.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location := a.cfg.Database.Location
			if len(args) == 1 {
				location = args[0]
			}
			if location == "" {
				return errNoDatabase
			}

			log := logger.New(append(a.logOpts, logger.WithContextExtractors(lookupapi.RequestIDExtractor()))...)

			db, err := openDatabase(cmd.Context(), location, a.cfg.Database.S3, log)
			if err != nil {
				return err
			}
			defer db.Close()

			h, err := lookupapi.New(db,
				lookupapi.WithConfig(a.cfg.Lookup),
				lookupapi.WithLogger(log.With(logger.Component("lookupapi"))),
			)
			if err != nil {
				return err
			}

			httpCfg := a.cfg.HTTP
			if addr != "" {
				httpCfg.Addr = addr
			}
			srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log.With(logger.Component("httpserver"))))
			return srv.Run(cmd.Context(), h)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "override BROWSCAP_HTTP_ADDR")
	return cmd
}
