package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	rmio "github.com/matzehuels/repomap/pkg/io"
	"github.com/matzehuels/repomap/pkg/pipeline"
	"github.com/matzehuels/repomap/pkg/tree"
)

// layoutFlags holds the layout command's own flags; the pipeline options
// they override live in a separate [pipeline.Options].
type layoutFlags struct {
	output     string
	configFile string
	format     string
	all        bool
}

// layoutCommand creates the layout command for solving circle layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var lf layoutFlags
	flags := pipeline.Options{}
	flags.SetDefaults()

	cmd := &cobra.Command{
		Use:   "layout [tree.json|-]",
		Short: "Solve the circle layout of a directory",
		Long: `Solve the circle layout of a directory.

The layout command reads a tree document (a nested {name: {size, entries}}
mapping, or a flat list of {path, type, size} records as produced by a git
tree listing) and lays out the files directly inside one directory. Every
file becomes a circle sized by the square root of its byte count, scaled by
the largest factor that still fits the bounding circle.

By default the root directory is laid out. Use --path to pick a directory,
--largest to pick the one with the most bytes in direct files, or --all to lay
out every directory.

Options are read from ` + "`$XDG_CONFIG_HOME/repomap/config.toml`" + ` (or --config)
and overridden by flags. Reads stdin when no file or "-" is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			flags.Formats = parseFormats(lf.format)

			opts, err := loadOptions(lf.configFile)
			if err != nil {
				return err
			}
			overrideOptions(cmd, &opts, flags)
			return c.runLayout(cmd.Context(), input, opts, lf)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&lf.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&lf.configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/repomap/config.toml)")
	cmd.Flags().StringVarP(&lf.format, "format", "f", pipeline.FormatJSON, "output format: json, yaml")

	// Target flags
	cmd.Flags().StringVar(&flags.Path, "path", "", "directory to lay out, relative to the root")
	cmd.Flags().BoolVar(&flags.Largest, "largest", false, "lay out the directory with the most bytes in direct files")
	cmd.Flags().BoolVar(&lf.all, "all", false, "lay out every directory")
	cmd.Flags().IntVar(&flags.Concurrency, "concurrency", flags.Concurrency, "directories solved in parallel with --all")

	// Layout flags
	cmd.Flags().StringVarP(&flags.Mode, "mode", "m", flags.Mode, "arrangement: rows (default), ring")
	cmd.Flags().Float64Var(&flags.Diameter, "diameter", flags.Diameter, "bounding circle diameter")
	cmd.Flags().Float64Var(&flags.Spacing, "spacing", flags.Spacing, "gap between neighbours on the ring (ring mode)")
	cmd.Flags().Float64Var(&flags.MinSize, "min-size", flags.MinSize, "smallest circle size")
	cmd.Flags().Float64Var(&flags.MaxSize, "max-size", flags.MaxSize, "largest circle size")
	cmd.Flags().IntVar(&flags.Precision, "precision", flags.Precision, "refinement levels (result has precision-1 decimals)")
	cmd.Flags().IntVar(&flags.MaxIterations, "max-iterations", flags.MaxIterations, "step cap per refinement level")

	return cmd
}

// runLayout loads the tree, solves the selected layouts and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, lf layoutFlags) error {
	root, shape, err := rmio.ImportTree(input)
	if err != nil {
		return fmt.Errorf("load tree %s: %w", input, err)
	}
	logger := loggerFromContext(ctx)
	logger.Debug("loaded tree", "input", input, "shape", shape, "bytes", root.Size)

	opts.Logger = logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	var out any
	if lf.all {
		results, err := c.layoutAll(ctx, root, opts)
		if err != nil {
			return err
		}
		out = results
	} else {
		res, err := newRunner(ctx, nil).Layout(ctx, root, opts)
		if err != nil {
			return err
		}
		warnInfeasible(logger, res)
		out = res
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if lf.output == "" {
		return pipeline.Encode(os.Stdout, out, opts.Format())
	}
	if err := rmio.Export(lf.output, out, opts.Format()); err != nil {
		return fmt.Errorf("write output %s: %w", lf.output, err)
	}

	printSuccess("Layout complete")
	printFile(lf.output)
	return nil
}

// layoutAll solves every directory behind a spinner that counts finished
// directories.
func (c *CLI) layoutAll(ctx context.Context, root *tree.Node, opts pipeline.Options) ([]*pipeline.Result, error) {
	logger := loggerFromContext(ctx)
	total := len(tree.Containers(root))

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Laying out %d directories...", total))
	spinner.Start()

	prog := newProgress(logger)
	hooks := newProgressHooks(logger, spinner, total)
	results, err := newRunner(ctx, hooks).LayoutAll(ctx, root, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return nil, err
	}
	spinner.Stop()

	for _, res := range results {
		warnInfeasible(logger, res)
	}
	prog.done(fmt.Sprintf("Laid out %d directories", len(results)))
	return results, nil
}

// warnInfeasible reports layouts that did not fit even at minimum sizes.
// It logs rather than prints so that stdout stays a clean document.
func warnInfeasible(logger *log.Logger, res *pipeline.Result) {
	if res.Feasible {
		return
	}
	logger.Warn("directory does not fit at minimum sizes", "path", res.Path, "items", res.Stats.Items)
}
