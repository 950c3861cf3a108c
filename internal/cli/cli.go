// Package cli implements the repomap command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/repomap/pkg/buildinfo"
	"github.com/matzehuels/repomap/pkg/observability"
	"github.com/matzehuels/repomap/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "repomap"

	// configFileName is the name of the config file inside the config directory.
	configFileName = "config.toml"
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
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Repomap lays out repository trees as packed circles",
		Long: `Repomap reads a repository file tree and sizes every file as a circle whose
area follows its byte count. The circles of a directory are packed into rows
inside a bounding circle, or spread around a ring, at the largest scale that
still fits.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner that logs through the context logger.
// hooks defaults to logging hooks on the same logger.
func newRunner(ctx context.Context, hooks observability.LayoutHooks) *pipeline.Runner {
	logger := loggerFromContext(ctx)
	if hooks == nil {
		hooks = observability.NewLogHooks(logger)
	}
	return pipeline.NewRunner(logger, hooks)
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/repomap/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// configPath returns the default config file location.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadOptions reads options from explicit, or from the default config file
// when explicit is empty. A missing default file yields zero options; a
// missing explicit file is an error.
func loadOptions(explicit string) (pipeline.Options, error) {
	if explicit != "" {
		return pipeline.LoadOptions(explicit)
	}
	path, err := configPath()
	if err != nil {
		return pipeline.Options{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		return pipeline.Options{}, nil
	}
	return pipeline.LoadOptions(path)
}

// overrideOptions copies every flag the user set on cmd from flags to dst,
// so that flags win over the config file while unset flags keep file values.
func overrideOptions(cmd *cobra.Command, dst *pipeline.Options, flags pipeline.Options) {
	set := func(name string) bool { return cmd.Flags().Changed(name) }

	if set("mode") {
		dst.Mode = flags.Mode
	}
	if set("diameter") {
		dst.Diameter = flags.Diameter
	}
	if set("spacing") {
		dst.Spacing = flags.Spacing
	}
	if set("min-size") {
		dst.MinSize = flags.MinSize
	}
	if set("max-size") {
		dst.MaxSize = flags.MaxSize
	}
	if set("precision") {
		dst.Precision = flags.Precision
	}
	if set("max-iterations") {
		dst.MaxIterations = flags.MaxIterations
	}
	if set("path") {
		dst.Path = flags.Path
	}
	if set("largest") {
		dst.Largest = flags.Largest
	}
	if set("format") {
		dst.Formats = flags.Formats
	}
	if set("concurrency") {
		dst.Concurrency = flags.Concurrency
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatJSON}
	}
	return strings.Split(s, ",")
}
