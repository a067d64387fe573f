package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root configuration of the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Cache    CacheConfig    `yaml:"cache"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0" env-description:"listen host"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080" env-description:"listen port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s" env-description:"HTTP read timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s" env-description:"HTTP write timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s" env-description:"HTTP keep-alive timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s" env-description:"graceful shutdown deadline"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" env-description:"debug, info, warn or error"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json" env-description:"json or console"`
}

// CORSConfig holds CORS settings. Lists are comma separated.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-description:"comma separated origins"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,OPTIONS" env-description:"comma separated methods"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type" env-description:"comma separated headers"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400" env-description:"preflight cache seconds"`
}

// Origins splits AllowedOrigins.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// AnalyzerConfig tunes the reverse analyzer.
type AnalyzerConfig struct {
	// Workers bounds the goroutines of one analysis. 0 means GOMAXPROCS.
	Workers   int `yaml:"workers"    env:"ANALYZER_WORKERS"    env-default:"0" env-description:"goroutines per analysis, 0 for GOMAXPROCS"`
	CacheSize int `yaml:"cache_size" env:"ANALYZER_CACHE_SIZE" env-default:"16384" env-description:"memoized cells, 0 disables"`
}

// CacheConfig holds the redis conjugation table cache settings.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"    env:"CACHE_ENABLED"    env-default:"false" env-description:"cache tables in redis"`
	URL     string        `yaml:"redis_url"  env:"CACHE_REDIS_URL"  env-default:"redis://localhost:6379/0" env-description:"redis connection URL"`
	TTL     time.Duration `yaml:"ttl"        env:"CACHE_TTL"        env-default:"24h" env-description:"table lifetime, 0 keeps forever"`
	Prefix  string        `yaml:"key_prefix" env:"CACHE_KEY_PREFIX" env-default:"arabdict:table:" env-description:"redis key prefix"`
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
