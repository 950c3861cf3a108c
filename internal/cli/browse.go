package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	rmio "github.com/matzehuels/repomap/pkg/io"
	"github.com/matzehuels/repomap/pkg/layout"
	"github.com/matzehuels/repomap/pkg/pipeline"
)

// browseCommand creates the browse command for walking a tree interactively.
func (c *CLI) browseCommand() *cobra.Command {
	var configFile string
	flags := pipeline.Options{}
	flags.SetDefaults()

	cmd := &cobra.Command{
		Use:   "browse [tree.json]",
		Short: "Walk a tree and its directory layouts interactively",
		Long: `Walk a tree and its directory layouts interactively.

Opens a terminal UI at the root (or --path) listing the subdirectories of the
current directory next to the solved layout of its files. Enter descends into a
directory, backspace goes back up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(configFile)
			if err != nil {
				return err
			}
			overrideOptions(cmd, &opts, flags)
			return runBrowse(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/repomap/config.toml)")
	cmd.Flags().StringVar(&flags.Path, "path", "", "directory to start in")
	cmd.Flags().StringVarP(&flags.Mode, "mode", "m", flags.Mode, "arrangement: rows (default), ring")
	cmd.Flags().Float64Var(&flags.Diameter, "diameter", flags.Diameter, "bounding circle diameter")

	return cmd
}

func runBrowse(ctx context.Context, input string, opts pipeline.Options) error {
	root, _, err := rmio.ImportTree(input)
	if err != nil {
		return fmt.Errorf("load tree %s: %w", input, err)
	}

	opts.Logger = loggerFromContext(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	lc := layout.NewContext(root, opts.LayoutConfig())
	if opts.Path != "" {
		if err := lc.Navigate(opts.Path); err != nil {
			return err
		}
	}

	p := tea.NewProgram(NewBrowseModel(lc), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(BrowseModel); ok {
		opts.Logger.Debug("browse finished", "at", fm.Ctx.Current().Path, "layouts", fm.Ctx.Cached())
	}
	return nil
}
