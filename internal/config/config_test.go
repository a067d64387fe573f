package config

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  shutdown_timeout: "5s"

log:
  level: "debug"
  format: "console"

cors:
  allowed_origins: "https://a.example, https://b.example"

analyzer:
  workers: 4
  cache_size: 1024

cache:
  enabled: true
  redis_url: "redis://cache:6379/1"
  ttl: "1h"
`

func TestLoad_ValidYAML(t *testing.T) {
	t.Setenv(PathEnv, writeYAML(t, t.TempDir(), validYAML))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout, "default applies to keys missing from the file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins())
	assert.Equal(t, []string{"GET", "OPTIONS"}, cfg.CORS.Methods())
	assert.Equal(t, 4, cfg.Analyzer.Workers)
	assert.Equal(t, 1024, cfg.Analyzer.CacheSize)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "redis://cache:6379/1", cfg.Cache.URL)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "arabdict:table:", cfg.Cache.Prefix)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	t.Setenv(PathEnv, writeYAML(t, t.TempDir(), validYAML))
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(PathEnv, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 16384, cfg.Analyzer.CacheSize)
}

func TestLoad_ExplicitPathWinsOverEnv(t *testing.T) {
	t.Setenv(PathEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load(writeYAML(t, t.TempDir(), validYAML))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_DefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(PathEnv, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultPath), []byte("server:\n  port: 9191\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_DefaultsFromEnvWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(PathEnv, "")
	t.Setenv("SERVER_PORT", "7171")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7171, cfg.Server.Port)
}

func TestLoad_MissingNamedFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	t.Run("argument", func(t *testing.T) {
		_, err := Load(missing)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
	t.Run("env", func(t *testing.T) {
		t.Setenv(PathEnv, missing)
		_, err := Load("")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestLoad_InvalidFile(t *testing.T) {
	_, err := Load(writeYAML(t, t.TempDir(), "log:\n  level: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Usage(&buf))
	out := buf.String()
	for _, env := range []string{"SERVER_PORT", "LOG_LEVEL", "ANALYZER_CACHE_SIZE", "CACHE_REDIS_URL"} {
		assert.Contains(t, out, env)
	}
	assert.Contains(t, out, PathEnv)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 8080, ShutdownTimeout: time.Second},
			Log:    LogConfig{Level: "info", Format: "json"},
			Cache:  CacheConfig{URL: "redis://localhost:6379/0"},
		}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, false},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, false},
		{"no shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"negative workers", func(c *Config) { c.Analyzer.Workers = -1 }, false},
		{"negative cache size", func(c *Config) { c.Analyzer.CacheSize = -1 }, false},
		{"cache without url", func(c *Config) { c.Cache.Enabled = true; c.Cache.URL = "" }, false},
		{"cache disabled without url", func(c *Config) { c.Cache.URL = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
