package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// PathEnv names the variable holding the configuration file path.
	PathEnv = "ARABDICT_CONFIG"
	// DefaultPath is read from the working directory when no path is given.
	DefaultPath = "arabdict.yaml"
)

// Load reads the server configuration. Defaults come from the env-default
// tags, the YAML file overrides them and the environment overrides both.
//
// path names the file. When it is empty PathEnv is consulted, then
// DefaultPath. A named file must exist; DefaultPath may be absent, in which
// case only the environment is read.
func Load(path string) (*Config, error) {
	path, named := resolvePath(path)

	var cfg Config
	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case named || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: %w", err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// resolvePath picks the file to read and reports whether it was named
// explicitly.
func resolvePath(path string) (string, bool) {
	if path != "" {
		return path, true
	}
	if p := os.Getenv(PathEnv); p != "" {
		return p, true
	}
	return DefaultPath, false
}

// Usage writes the environment variables Load reads with their defaults.
func Usage(w io.Writer) error {
	header := "Environment variables (override " + DefaultPath + " or $" + PathEnv + "):"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return fmt.Errorf("config: describe: %w", err)
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
