package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/browscap/pkg/browscap"
)

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema <database-file>",
		Short: "Print the variant, metadata and property lists of a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase(cmd.Context(), args[0], a.cfg.Database.S3, a.log)
			if err != nil {
				return err
			}
			defer db.Close()

			return writeSchema(cmd.OutOrStdout(), db)
		},
	}
}

func writeSchema(w io.Writer, db *browscap.DB) error {
	meta := db.Metadata()
	s := db.Schema()
	declared := meta.Type
	if !meta.TypeDeclared {
		declared = "(not declared)"
	}

	strs, ints, bools := s.Counts()
	_, err := fmt.Fprintf(w,
		"variant  = %s\ntype     = %s\nversion  = %s\nreleased = %s\nsections = %d\n\nstrings (%d):\n%s\nints (%d):\n%s\nbools (%d):\n%s",
		s.Variant(), declared, meta.Version, meta.Released, db.Len(),
		strs, list(s.StringProperties()),
		ints, list(s.IntProperties()),
		bools, list(s.BoolProperties()),
	)
	return err
}

func list(names []string) string {
	var b strings.Builder
	for _, n := range names {
		b.WriteString("\t")
		b.WriteString(n)
		b.WriteString("\n")
	}
	return b.String()
}
