package cli

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/repomap/pkg/pipeline"
)

// configCommand creates the config command and its subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	var configFile string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective options as TOML",
		Long: `Print the effective options as TOML.

Reads the config file (or --config), fills unset values with defaults and
validates the result, so the output is exactly what 'layout' would run with.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(configFile)
			if err != nil {
				return err
			}
			return writeEffectiveOptions(cmd.OutOrStdout(), opts)
		},
	}
	show.Flags().StringVar(&configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/repomap/config.toml)")
	cmd.AddCommand(show)

	return cmd
}

// writeEffectiveOptions validates opts with defaults applied and writes them as TOML.
func writeEffectiveOptions(w io.Writer, opts pipeline.Options) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(opts)
}
