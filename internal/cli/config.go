package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/allen-marshall/lv2-se-bundle/pkg/errors"
)

// Config holds user preferences read from config.toml.
type Config struct {
	// Format is the graph output format used when -o has no recognised
	// extension or output goes to stdout.
	Format string `toml:"format"`

	// Implied makes inspect list classes implied by the declared ones.
	Implied bool `toml:"implied"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// MaxTriples bounds the statements read from a bundle. Zero means no
	// bound.
	MaxTriples int64 `toml:"max_triples"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Format:   formatDOT,
		Implied:  true,
		LogLevel: "info",
	}
}

// configPath returns the config file path using XDG standard
// (~/.config/lv2model/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads path over the defaults. A missing file yields the
// defaults; unknown keys are rejected so typos do not go unnoticed.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if !validFormats[cfg.Format] {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "config %s: invalid format %q", path, cfg.Format)
	}
	if cfg.MaxTriples < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "config %s: max_triples must not be negative", path)
	}
	return cfg, nil
}
