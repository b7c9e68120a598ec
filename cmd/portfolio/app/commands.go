package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bamgstudio/portfolio/cmd/portfolio/cmd/generate"
	"github.com/bamgstudio/portfolio/cmd/portfolio/cmd/list"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(generate.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "portfolio %s (commit %s, built %s)\n", a.version, a.commit, a.date)
			return err
		},
	}
}
