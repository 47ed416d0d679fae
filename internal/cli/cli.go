// Package cli implements the statcard command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/statcard/pkg/buildinfo"
	"github.com/matzehuels/statcard/pkg/cache"
	"github.com/matzehuels/statcard/pkg/config"
	"github.com/matzehuels/statcard/pkg/observability"
	"github.com/matzehuels/statcard/pkg/pipeline"
)

const appName = "statcard"

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

	// ConfigPath is the --config flag. Empty means built-in defaults.
	ConfigPath string

	// Out receives command output such as rendered SVG and tables.
	Out io.Writer

	// newGenerator builds the card generator; tests replace it to avoid
	// network access.
	newGenerator func(f *config.File, profiles cache.Cache, logger *log.Logger) (*pipeline.Generator, error)
}

// New creates a new CLI instance logging to w. Command output goes to
// stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		newGenerator: func(f *config.File, profiles cache.Cache, logger *log.Logger) (*pipeline.Generator, error) {
			return f.Generator(profiles, logger)
		},
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
		Short:        "statcard renders LeetCode statistics as animated SVG cards",
		Long:         `statcard fetches a LeetCode user's solved-problem counts and renders them as a themeable, animated SVG card, from the command line or as an HTTP service.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.Logger.GetLevel() <= log.DebugLevel {
				observability.NewLogHooks(c.Logger).Register()
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.ConfigPath, "config", "c", "", "config file (.toml, .yaml or .yml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.fontsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadConfig reads --config over the defaults.
func (c *CLI) loadConfig() (*config.File, error) {
	return config.Load(c.ConfigPath)
}

// newRunner opens the configured card cache and wires a runner around it.
// noCache swaps the cache for a NullCache. The returned close func releases
// the cache connection.
func (c *CLI) newRunner(ctx context.Context, f *config.File, noCache bool) (*pipeline.Runner, func() error, error) {
	cacheCfg := f.Cache
	if noCache {
		cacheCfg.Backend = config.BackendNone
	}
	store, err := cacheCfg.Open(ctx)
	if err != nil {
		return nil, nil, err
	}

	logger := loggerFromContext(ctx)
	var profiles cache.Cache
	if !noCache {
		profiles = store
	}
	f.Cache = cacheCfg
	g, err := c.newGenerator(f, profiles, logger)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	runner := pipeline.NewRunner(g, store, cacheCfg.Keyer(), logger)
	if d := f.Server.RequestTimeout; d > 0 {
		runner.Timeout = d
	}
	return runner, store.Close, nil
}
