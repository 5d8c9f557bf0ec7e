package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cierre-dev/cierre/internal/config"
)

func newCheckCommand() *cobra.Command {
	env, _ := config.FromEnv()

	var dir, cfgFile string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the fundamental accounting equation for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, _, err := runEngine(dir, cfgFile)
			if err != nil {
				return err
			}

			rep := res.Validation
			if rep.Balanced {
				fmt.Fprintf(cmd.OutOrStdout(), "balanced (difference %s)\n", rep.Difference.StringFixed(2))
				return nil
			}
			return fmt.Errorf("not balanced: assets differ from liabilities+equity by %s", rep.Difference.StringFixed(2))
		},
	}

	cmd.Flags().StringVar(&dir, "dir", env.Dir, "period directory")
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default <dir>/"+env.ConfigFile+")")

	return cmd
}
