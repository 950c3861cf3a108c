package cli

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	rmio "github.com/matzehuels/repomap/pkg/io"
	"github.com/matzehuels/repomap/pkg/tree"
)

// inspectCommand creates the inspect command for summarizing a tree document.
func (c *CLI) inspectCommand() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "inspect [tree.json|-]",
		Short: "Summarize a tree document",
		Long: `Summarize a tree document.

Prints the number of files and directories, the total size, the depth of the
tree and the directories holding the most bytes in direct files. The first of
those is the one 'layout --largest' picks.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runInspect(input, top)
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 10, "number of heaviest directories to list")

	return cmd
}

func runInspect(input string, top int) error {
	root, shape, err := rmio.ImportTree(input)
	if err != nil {
		return fmt.Errorf("load tree %s: %w", input, err)
	}

	stats := tree.Summarize(root)
	printSuccess("Loaded %s tree", shape)
	printKeyValue("Files", fmt.Sprintf("%d", stats.Files))
	printKeyValue("Directories", fmt.Sprintf("%d", stats.Directories))
	printKeyValue("Total size", formatBytes(stats.Bytes))
	printKeyValue("Max depth", fmt.Sprintf("%d", stats.MaxDepth))

	if stats.Files == 0 {
		printWarning("tree has no files to lay out")
		return nil
	}

	largest := tree.LargestMass(root)
	printKeyValue("Largest", largest.Path)
	printNewline()

	heaviest := heaviestContainers(root, top)
	printInfo("Heaviest directories by direct file bytes")
	fmt.Println(containerTable(heaviest))
	if hidden := len(tree.Containers(root)) - len(heaviest); hidden > 0 {
		printDetail("%d more directories not shown", hidden)
	}
	printNewline()

	next := "repomap layout --largest"
	if input != "-" {
		next += " " + input
	}
	printNextStep("Lay out the heaviest directory", next)
	return nil
}

// heaviestContainers returns up to n containers ordered by descending mass.
// Containers of equal mass keep their pre-order position.
func heaviestContainers(root *tree.Node, n int) []*tree.Node {
	all := tree.Containers(root)
	slices.SortStableFunc(all, func(a, b *tree.Node) int {
		return cmp.Compare(tree.Mass(b), tree.Mass(a))
	})
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}
