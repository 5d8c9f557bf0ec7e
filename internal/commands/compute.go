package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cierre-dev/cierre/internal/config"
	"github.com/cierre-dev/cierre/internal/export"
	"github.com/cierre-dev/cierre/internal/ledger"
	"github.com/cierre-dev/cierre/internal/worksheet"
)

func newComputeCommand() *cobra.Command {
	env, _ := config.FromEnv()

	var dir, cfgFile, out, period string

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Derive the closing worksheet for a period directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, cfg, err := runEngine(dir, cfgFile)
			if err != nil {
				return err
			}

			meta := export.Meta{
				Company:    cfg.Company.Name,
				Period:     period,
				DocumentID: export.NewDocumentID(),
			}
			if out == "" {
				return export.WriteCSV(cmd.OutOrStdout(), res, meta)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()
			if err := export.WriteCSV(f, res, meta); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Worksheet written to %s (document %s)\n", out, meta.DocumentID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", env.Dir, "period directory")
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default <dir>/"+env.ConfigFile+")")
	cmd.Flags().StringVar(&out, "out", "", "output CSV file (default stdout)")
	cmd.Flags().StringVar(&period, "period", "", "period label for the export header")

	return cmd
}

// runEngine loads a period's inputs and config and computes the worksheet.
// A missing config file runs with defaults; the engine itself never fails.
func runEngine(dir, cfgFile string) (*worksheet.Result, *config.Config, error) {
	if cfgFile == "" {
		env, _ := config.FromEnv()
		cfgFile = filepath.Join(dir, env.ConfigFile)
	}

	cfg, err := config.Load(cfgFile)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default("", "")
	} else if err != nil {
		return nil, nil, err
	}

	svc, err := ledger.Load(dir)
	if err != nil {
		return nil, nil, err
	}

	return worksheet.Compute(svc.Accounts(), svc.TrialBalance(), svc.Adjustments(), cfg), cfg, nil
}
