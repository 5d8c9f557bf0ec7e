package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cierre-dev/cierre/internal/config"
	"github.com/cierre-dev/cierre/internal/ledger"
	"github.com/cierre-dev/cierre/internal/model"
)

func newInitCommand() *cobra.Command {
	var name string
	var legalForm string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a period directory with a config and starter CSVs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, absDir, name, legalForm)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "company name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&legalForm, "legal-form", "", "legal form, e.g. \"S.A.\"")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, legalForm string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default(name, legalForm)
	if err := config.Save(filepath.Join(dir, "cierre.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Starter accounts file showing the expected columns.
	starter := []model.Account{
		{Code: "1.1", Name: "Caja y bancos", Type: "Activo"},
		{Code: "2.1", Name: "Cuentas por pagar", Type: "Pasivo"},
		{Code: "3.1", Name: "Capital social", Type: "Patrimonio"},
		{Code: "3.2", Name: "Resultados acumulados", Type: "Patrimonio"},
		{Code: "4.1", Name: "Ventas", Type: "Ingresos"},
		{Code: "5.1", Name: "Costo de ventas", Type: "Costos"},
		{Code: "6.1", Name: "Gastos de administración", Type: "Gastos"},
	}
	accountsFile, err := os.Create(filepath.Join(dir, ledger.AccountsFile))
	if err != nil {
		return fmt.Errorf("creating %s: %w", ledger.AccountsFile, err)
	}
	defer accountsFile.Close()
	if err := ledger.WriteAccounts(accountsFile, starter); err != nil {
		return fmt.Errorf("writing %s: %w", ledger.AccountsFile, err)
	}

	for _, f := range []string{ledger.TrialFile, ledger.AdjustmentsFile} {
		totalsFile, err := os.Create(filepath.Join(dir, f))
		if err != nil {
			return fmt.Errorf("creating %s: %w", f, err)
		}
		err = ledger.WriteTotals(totalsFile, nil)
		totalsFile.Close()
		if err != nil {
			return fmt.Errorf("writing %s: %w", f, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized period at %s\n", dir)
	return nil
}
