// Package cli implements the lv2model command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/allen-marshall/lv2-se-bundle/pkg/buildinfo"
	"github.com/allen-marshall/lv2-se-bundle/pkg/cache"
	"github.com/allen-marshall/lv2-se-bundle/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "lv2model"

	kindPlugin = "plugin"
	kindAtom   = "atom"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "lv2model inspects LV2 bundles and the LV2 class vocabulary",
		Long:         `lv2model loads LV2 plugin bundles into a typed model and answers questions about the standard LV2 class hierarchies: which classes a class implies, what its ancestors are, and how the implication graph looks.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.setup(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/lv2model/config.toml)")

	// Register all subcommands
	root.AddCommand(c.impliedCommand())
	root.AddCommand(c.ancestorsCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file and applies its log level. --verbose wins over
// the configured level.
func (c *CLI) setup() error {
	path := c.configPath
	if path == "" {
		if p, err := configPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		cfg, err := loadConfig(path)
		if err != nil {
			return err
		}
		c.Config = cfg
	}

	level, err := log.ParseLevel(c.Config.LogLevel)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "config log_level %q", c.Config.LogLevel)
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)
	if level <= log.DebugLevel {
		installLogHooks(c.Logger)
	}
	return nil
}

// =============================================================================
// Cache
// =============================================================================

func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("cache disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/lv2model/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

func unknownKind(kind string) error {
	return errors.New(errors.ErrCodeInvalidInput, "unknown vocabulary %q (must be %q or %q)", kind, kindPlugin, kindAtom)
}
