package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/browscap/pkg/browscap"
	"github.com/dmitrymomot/browscap/pkg/config"
	"github.com/dmitrymomot/browscap/pkg/logger"
)

// app carries state prepared by the root command for subcommands.
type app struct {
	envFiles []string
	logLevel string
	cfg      config.Config
	logOpts  []logger.Option
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		format    string
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "browscap <database-file> [user agent ...]",
		Short: "Resolve user agents against a Browscap database",
		Long: `Resolve user agent strings against a Browscap INI database and print
the browser capabilities of each one.

The database may be a local path, a gzip or zstd compressed file, or an
S3 object (s3://bucket/key). Unset properties print as NULL.`,
		Example: `  browscap lite_php_browscap.ini "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Firefox/125.0"
  browscap --format json s3://assets/browscap.ini.gz "Googlebot/2.1"
  cat agents.txt | browscap --stdin full_php_browscap.ini.zst`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			queries := args[1:]
			if fromStdin {
				lines, err := readLines(cmd)
				if err != nil {
					return err
				}
				queries = append(queries, lines...)
			}

			db, err := openDatabase(cmd.Context(), args[0], a.cfg.Database.S3, a.log)
			if err != nil {
				return err
			}
			defer db.Close()

			results := make([]browscap.Result, 0, len(queries))
			for _, q := range queries {
				res, err := db.Search(q)
				if err != nil {
					return fmt.Errorf("lookup %q: %w", q, err)
				}
				results = append(results, res)
			}
			return writeResults(cmd.OutOrStdout(), format, results)
		},
	}

	cmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "load environment from .env files (default ./.env when present)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override BROWSCAP_LOG_LEVEL (debug, info, warn, error)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "also read user agents from stdin, one per line")

	cmd.AddCommand(newSchemaCmd(a), newServeCmd(a))
	return cmd
}

// setup loads configuration and builds the logger, which also becomes the
// slog default. Logs go to stderr so they never mix with lookup output.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	opts, err := cfg.Log.Options()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logOpts = append(opts, logger.WithOutput(cmd.ErrOrStderr()))
	a.log = logger.New(a.logOpts...)
	logger.SetAsDefault(a.log)
	return nil
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
