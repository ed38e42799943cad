package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ringlayout/pkg/buildinfo"
	"github.com/matzehuels/ringlayout/pkg/cache"
	"github.com/matzehuels/ringlayout/pkg/observability"
	"github.com/matzehuels/ringlayout/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "ringlayout"

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Ringlayout arranges elements evenly around a circle",
		Long: `Ringlayout lays out a set of elements on a ring, keeps the distribution even as
items are pushed, popped, inserted and removed, and renders the result as
SVG, JSON, Graphviz DOT or PNG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.anglesCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheFlags selects the artifact cache backend.
type cacheFlags struct {
	noCache  bool
	cacheURL string
	scope    string
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&f.cacheURL, "cache-url", os.Getenv("RINGLAYOUT_CACHE_URL"), "redis:// URL of a shared artifact cache")
	cmd.Flags().StringVar(&f.scope, "cache-scope", "", "key prefix separating rings that share one cache")
}

// keyer returns the artifact keyer for the flags, scoped when requested.
func (f cacheFlags) keyer() cache.Keyer {
	if f.scope == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(nil, f.scope+":")
}

// newRunner creates a pipeline runner for CLI use. Layout, render and cache
// events are reported to the CLI logger at debug level.
func (c *CLI) newRunner(ctx context.Context, flags cacheFlags) (*pipeline.Runner, error) {
	backend, err := newCache(ctx, flags)
	if err != nil {
		return nil, err
	}
	observability.NewLogHooks(c.Logger).Install()
	return pipeline.NewRunner(backend, flags.keyer(), c.Logger), nil
}

// newCache picks Redis when a URL is given, the XDG file cache otherwise.
// An unresolvable home directory disables caching.
func newCache(ctx context.Context, flags cacheFlags) (cache.Cache, error) {
	if flags.noCache {
		return cache.NewNullCache(), nil
	}
	if flags.cacheURL != "" {
		return cache.NewRedisCache(ctx, flags.cacheURL)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/ringlayout/).
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

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
