package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cierre-dev/cierre/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "cierre",
		Short:   "Closing-period worksheet engine",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newComputeCommand())
	rootCmd.AddCommand(newCheckCommand())

	return rootCmd
}
