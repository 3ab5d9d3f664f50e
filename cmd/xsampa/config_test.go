package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/xsampa/batch"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Lexicon)
	assert.Equal(t, "skip", cfg.OnMalformed)
	assert.False(t, cfg.NFC)
	assert.False(t, cfg.SplitFields)
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, tracing.LevelError, level)
	assert.Equal(t, batch.Options{Policy: batch.PolicySkip}, cfg.Options())
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), `
lexicon: "lexicon.tsv"
on_malformed: "abort"
nfc: true
split_fields: true
trace_level: "debug"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "lexicon.tsv", cfg.Lexicon)
	assert.Equal(t, batch.Options{Policy: batch.PolicyAbort, SplitFields: true, NFC: true}, cfg.Options())
	level, _ := cfg.Level()
	assert.Equal(t, tracing.LevelDebug, level)
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "on_malformed: \"abort\"\n")
	t.Setenv("XSAMPA_ON_MALFORMED", "skip")
	t.Setenv("XSAMPA_TRACE_LEVEL", "info")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "skip", cfg.OnMalformed)
	assert.Equal(t, "info", cfg.TraceLevel)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Setenv("XSAMPA_ON_MALFORMED", "retry")
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate")

	t.Setenv("XSAMPA_ON_MALFORMED", "skip")
	t.Setenv("XSAMPA_TRACE_LEVEL", "verbose")
	_, err = LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
