package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/query"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, query.DefaultBaseURL, cfg.Products.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.Products.KeepUnusedDataFor)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
listen: 0.0.0.0:9000
pathPrefix: /demo
products:
  baseURL: http://localhost:4000
  keepUnusedDataFor: 5m
sessions:
  idleTimeout: 10m
  max: 100
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Listen)
	assert.Equal(t, "/demo", cfg.PathPrefix)
	assert.Equal(t, "http://localhost:4000", cfg.Products.BaseURL)
	assert.Equal(t, 5*time.Minute, cfg.Products.KeepUnusedDataFor)
	assert.Equal(t, 10*time.Minute, cfg.Sessions.IdleTimeout)
	assert.Equal(t, 100, cfg.Sessions.Max)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_KeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "listen: localhost:3000\n"))
	require.NoError(t, err)

	assert.Equal(t, query.DefaultBaseURL, cfg.Products.BaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"bad level", "log:\n  level: loud\n", "Log.Level"},
		{"prefix without slash", "pathPrefix: demo\n", "PathPrefix"},
		{"prefix with trailing slash", "pathPrefix: /demo/\n", "PathPrefix"},
		{"bad base URL", "products:\n  baseURL: not a url\n", "Products.BaseURL"},
		{"negative max sessions", "sessions:\n  max: -1\n", "Sessions.Max"},
		{"missing listen", "listen: \"\"\n", "Listen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "listen: [\n"))
	assert.ErrorContains(t, err, "parsing config")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestRootFlagsOverrideConfig(t *testing.T) {
	flags := &rootFlags{
		configPath: writeConfig(t, "log:\n  level: warn\n"),
		logLevel:   "debug",
		logFile:    "/tmp/uikit.log",
	}

	cfg, err := flags.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/uikit.log", cfg.Log.File)
}
