// Package worksheet derives the closing-period worksheet: classified
// account rows, the tax/reserve cascade, editable rows with overrides, and
// the fundamental-equation check. Compute is pure and synchronous; callers
// re-run it wholesale after any input change.
package worksheet

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cierre-dev/cierre/internal/balance"
	"github.com/cierre-dev/cierre/internal/cascade"
	"github.com/cierre-dev/cierre/internal/classify"
	"github.com/cierre-dev/cierre/internal/config"
	"github.com/cierre-dev/cierre/internal/formula"
	"github.com/cierre-dev/cierre/internal/model"
)

// Result is one consistent derived worksheet.
type Result struct {
	Accounts   []AccountRow
	Rows       []EditableRow
	Cascade    cascade.Summary
	Totals     Totals
	Validation Report
}

// Fixed cascade cell IDs.
const (
	CellGross      = "UB"
	CellAccum      = "RA"
	CellTax        = "TAX"
	CellNet        = "UN"
	CellReserve    = "RL"
	CellNonTaxable = "NI"
	CellLiquid     = "UL"
)

// Compute runs the full derivation for one immutable input snapshot. It
// never fails: degenerate inputs resolve to defined numeric fallbacks and
// an imbalance is reported, not raised.
func Compute(accounts []model.Account, trial []model.TrialBalanceEntry, adjustments []model.AdjustmentEntry, cfg *config.Config) *Result {
	if cfg == nil {
		cfg = config.Default("", "")
	}
	rules := classify.NewRuleset(
		cfg.Classification.VariableNaturePatterns,
		cfg.Classification.NonTaxablePatterns,
		cfg.Classification.AccumulatedResultsPatterns,
	)

	adjusted := balance.Aggregate(accounts, trial, adjustments)

	rows := make([]AccountRow, 0, len(adjusted))
	nonTaxable := decimal.Zero
	for _, adj := range adjusted {
		cls := rules.Classify(adj.Account, adj.Balance)
		row := Split(adj, cls)
		rows = append(rows, row)
		if cls.NonTaxable && cls.Category == model.CategoryIncome {
			nonTaxable = nonTaxable.Add(adj.Balance.Abs())
		}
	}

	preTotals := make(Totals)
	for _, row := range rows {
		preTotals.addCells(row.Cells)
	}
	// RA: accumulated results net of both closing sides, credit-positive.
	accumulated := preTotals.Of(model.ColClosingCredit).Sub(preTotals.Of(model.ColClosingDebit))

	summary := cascade.Run(cascade.Inputs{
		Income:         preTotals.Of(model.ColIncome),
		Expense:        preTotals.Of(model.ColExpense),
		NonTaxable:     nonTaxable,
		Accumulated:    accumulated,
		TaxFormula:     cfg.TaxFormula,
		TaxRatePercent: decimal.NewFromFloat(cfg.TaxRatePercent),
		LiquidFormula:  cfg.LiquidIncomeFormula,
		ReservePercent: decimal.NewFromFloat(cfg.ReserveLegalPercent),
		ReserveApplies: cfg.OverrideReserveLegal || cfg.RequiresReserve(),
	})

	sheet := formula.NewSheet()
	sheet.SetValue(CellGross, summary.Gross)
	sheet.SetValue(CellAccum, accumulated)
	sheet.SetValue(CellTax, summary.Tax)
	sheet.SetValue(CellNet, summary.Net)
	sheet.SetValue(CellReserve, summary.Reserve)
	sheet.SetValue(CellNonTaxable, summary.NonTaxable)
	sheet.SetValue(CellLiquid, summary.Liquid)
	for _, row := range cfg.AdjustmentRows {
		sheet.SetRaw(row.ID, row.Formula)
	}

	editable := buildEditableRows(cfg, sheet, summary)
	applyOverrides(editable, cfg.ColumnOverrides)

	totals := make(Totals)
	for _, row := range rows {
		totals.addCells(row.Cells)
	}
	for _, row := range editable {
		totals.addCells(row.Cells)
	}

	assets := totals.Of(model.ColAsset)
	liabEquity := totals.Of(model.ColLiabEquity).
		Add(totals.Of(model.ColClosingCredit)).
		Sub(totals.Of(model.ColClosingDebit))

	return &Result{
		Accounts:   rows,
		Rows:       editable,
		Cascade:    summary,
		Totals:     totals,
		Validation: Validate(assets, liabEquity),
	}
}

// buildEditableRows assembles the automatic cascade rows followed by the
// user-added adjustment rows, in configured order.
func buildEditableRows(cfg *config.Config, sheet *formula.Sheet, summary cascade.Summary) []EditableRow {
	fixed := []struct {
		id      string
		label   string
		formula string
		value   decimal.Decimal
		cells   []model.Column
	}{
		{CellGross, "Utilidad bruta", "", summary.Gross, nil},
		// Tax, reserve and liquid result close both statements: they post
		// to the expense side and to liability+equity.
		{CellTax, "Impuesto sobre utilidades", cfg.TaxFormula, summary.Tax, []model.Column{model.ColExpense, model.ColLiabEquity}},
		{CellNet, "Utilidad neta", "", summary.Net, nil},
		{CellReserve, "Reserva legal", "", summary.Reserve, []model.Column{model.ColExpense, model.ColLiabEquity}},
		{CellNonTaxable, "Ingresos no gravables", "", summary.NonTaxable, []model.Column{model.ColIncome}},
		{CellLiquid, "Utilidad líquida", cfg.LiquidIncomeFormula, summary.Liquid, []model.Column{model.ColExpense, model.ColLiabEquity}},
	}

	rows := make([]EditableRow, 0, len(fixed)+len(cfg.AdjustmentRows))
	for _, f := range fixed {
		row := EditableRow{
			ID:      f.id,
			Label:   f.label,
			Formula: f.formula,
			Value:   f.value,
			Cells:   make(map[model.Column]decimal.Decimal, len(f.cells)),
			Display: make(map[model.Column]string),
		}
		for _, col := range f.cells {
			if !f.value.IsZero() {
				row.Cells[col] = f.value
			}
		}
		rows = append(rows, row)
	}

	for _, adj := range cfg.AdjustmentRows {
		value := balance.Round(sheet.Resolve(adj.ID))
		row := EditableRow{
			ID:      adj.ID,
			Label:   adj.Label,
			Formula: adj.Formula,
			Value:   value,
			Cells:   make(map[model.Column]decimal.Decimal, 1),
			Display: make(map[model.Column]string),
		}
		if value.Sign() >= 0 {
			if !value.IsZero() {
				row.Cells[model.ColAdjDebit] = value
			}
		} else {
			row.Cells[model.ColAdjCredit] = value.Abs()
		}
		rows = append(rows, row)
	}
	return rows
}

// applyOverrides replaces computed cells with configured per-column
// overrides. A non-empty override always wins for its cell and leaves the
// row's other columns untouched; non-numeric text computes as zero but is
// preserved verbatim for display.
func applyOverrides(rows []EditableRow, overrides map[string]string) {
	if len(overrides) == 0 {
		return
	}
	for i := range rows {
		for _, col := range model.Columns {
			raw, ok := overrides[model.OverrideKey(rows[i].ID, col)]
			if !ok || strings.TrimSpace(raw) == "" {
				continue
			}
			rows[i].Display[col] = raw
			v, err := decimal.NewFromString(strings.TrimSpace(raw))
			if err != nil {
				v = decimal.Zero
			}
			if v.IsZero() {
				delete(rows[i].Cells, col)
			} else {
				rows[i].Cells[col] = v
			}
		}
	}
}
