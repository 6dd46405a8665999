package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/browscap/pkg/browscap"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

const unsetValue = "NULL"

func validateFormat(f string) error {
	switch f {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q: want text, json or yaml", f)
	}
}

// writeResults renders results in the requested format.
func writeResults(w io.Writer, format string, results []browscap.Result) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records(results))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(records(results))
	default:
		for _, res := range results {
			if err := writeText(w, res); err != nil {
				return err
			}
		}
		return nil
	}
}

func records(results []browscap.Result) []browscap.Record {
	out := make([]browscap.Record, len(results))
	for i, res := range results {
		out[i] = res.Record()
	}
	return out
}

// writeText prints the query followed by one tab-indented "name = value"
// line per property and a blank separator line.
func writeText(w io.Writer, res browscap.Result) error {
	lines := []string{res.Query()}
	for _, f := range res.Strings() {
		lines = append(lines, textLine(f.Name, f.Value, f.Set))
	}
	for _, f := range res.Ints() {
		lines = append(lines, textLine(f.Name, strconv.Itoa(f.Value), f.Set))
	}
	for _, f := range res.Bools() {
		lines = append(lines, textLine(f.Name, strconv.FormatBool(f.Value), f.Set))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func textLine(name, value string, set bool) string {
	if !set {
		value = unsetValue
	}
	return "\t" + name + " = " + value
}
