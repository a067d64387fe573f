package config

import (
	"fmt"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
)

// Validate checks the loaded configuration. Load calls it.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %s)", c.Server.ShutdownTimeout)
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}
	if c.Analyzer.Workers < 0 {
		return fmt.Errorf("analyzer.workers must be >= 0 (got %d)", c.Analyzer.Workers)
	}
	if c.Analyzer.CacheSize < 0 {
		return fmt.Errorf("analyzer.cache_size must be >= 0 (got %d)", c.Analyzer.CacheSize)
	}
	if c.Cache.Enabled {
		if c.Cache.URL == "" {
			return fmt.Errorf("cache.redis_url is required when the cache is enabled")
		}
		if c.Cache.TTL < 0 {
			return fmt.Errorf("cache.ttl must be >= 0 (got %s)", c.Cache.TTL)
		}
	}
	return nil
}
