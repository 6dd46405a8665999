package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/browscap/pkg/browscap"
)

const liteINI = `[GJK_Browscap_Version]
Version=6001008
Released="Tue, 12 Mar 2024 09:00:00 +0000"
Type=LITE

[DefaultProperties]
Comment="DefaultProperties"
Browser="DefaultProperties"
Platform="unknown"
isMobileDevice="false"
isTablet="false"

[Firefox*]
Parent="DefaultProperties"
Browser="Firefox"
Version="125.0"
`

func writeDB(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_TextOutput(t *testing.T) {
	path := writeDB(t, "lite.ini", []byte(liteINI))

	out, err := run(t, "", path, "Firefox/125.0", "curl/8.0")
	require.NoError(t, err)

	want := "Firefox/125.0\n" +
		"\tComment = DefaultProperties\n" +
		"\tBrowser = Firefox\n" +
		"\tVersion = 125.0\n" +
		"\tPlatform = unknown\n" +
		"\tDevice_Type = NULL\n" +
		"\tisMobileDevice = false\n" +
		"\tisTablet = false\n" +
		"\n" +
		"curl/8.0\n" +
		"\tComment = NULL\n" +
		"\tBrowser = NULL\n" +
		"\tVersion = NULL\n" +
		"\tPlatform = NULL\n" +
		"\tDevice_Type = NULL\n" +
		"\tisMobileDevice = NULL\n" +
		"\tisTablet = NULL\n" +
		"\n"
	assert.Equal(t, want, out)
}

func TestRoot_NoQueries(t *testing.T) {
	path := writeDB(t, "lite.ini", []byte(liteINI))

	out, err := run(t, "", path)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRoot_SetsDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	path := writeDB(t, "lite.ini", []byte(liteINI))

	_, err := run(t, "", "--log-level", "debug", path)
	require.NoError(t, err)
	assert.NotSame(t, prev, slog.Default())
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestRoot_JSONFromGzipAndStdin(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(liteINI))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	path := writeDB(t, "lite.ini.gz", buf.Bytes())

	out, err := run(t, "Firefox/1\n\nFirefox/2\n", "--format", "json", "--stdin", path)
	require.NoError(t, err)

	var records []browscap.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Firefox/1", records[0].Query)
	assert.Equal(t, "Firefox/2", records[1].Query)
	assert.True(t, records[1].Matched)
	assert.Equal(t, "Firefox*", records[1].Pattern)
}

func TestRoot_YAML(t *testing.T) {
	path := writeDB(t, "lite.ini", []byte(liteINI))

	out, err := run(t, "", "-f", "yaml", path, "Firefox/125.0")
	require.NoError(t, err)

	var records []browscap.Record
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "lite", records[0].Variant)
	assert.Contains(t, out, "name: Browser")
	assert.Contains(t, out, "value: Firefox")
}

func TestRoot_Errors(t *testing.T) {
	t.Run("missing arguments", func(t *testing.T) {
		_, err := run(t, "")
		assert.Error(t, err)
	})

	t.Run("missing database", func(t *testing.T) {
		_, err := run(t, "", filepath.Join(t.TempDir(), "missing.ini"), "Firefox")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "couldn't load browscap data")
	})

	t.Run("unknown format", func(t *testing.T) {
		path := writeDB(t, "lite.ini", []byte(liteINI))
		_, err := run(t, "", "--format", "xml", path, "Firefox")
		assert.ErrorContains(t, err, "unknown output format")
	})

	t.Run("cyclic inheritance", func(t *testing.T) {
		path := writeDB(t, "loop.ini", []byte("[Loop*]\nParent=\"Loop\"\n\n[Loop]\nParent=\"Loop*\"\n"))
		_, err := run(t, "", path, "Loop1")
		assert.ErrorIs(t, err, browscap.ErrCyclicInheritance)
	})
}

func TestSchemaCmd(t *testing.T) {
	path := writeDB(t, "lite.ini", []byte(liteINI))

	out, err := run(t, "", "schema", path)
	require.NoError(t, err)

	assert.Contains(t, out, "variant  = lite\n")
	assert.Contains(t, out, "type     = LITE\n")
	assert.Contains(t, out, "version  = 6001008\n")
	assert.Contains(t, out, "strings (5):\n\tComment\n\tBrowser\n")
	assert.Contains(t, out, "ints (0):\n")
	assert.Contains(t, out, "bools (2):\n\tisMobileDevice\n\tisTablet\n")
}

func TestServeCmd_NoDatabase(t *testing.T) {
	t.Setenv("BROWSCAP_DB_LOCATION", "")
	_, err := run(t, "", "serve")
	assert.ErrorIs(t, err, errNoDatabase)
}
