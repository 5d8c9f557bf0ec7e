package worksheet

import (
	"github.com/shopspring/decimal"

	"github.com/cierre-dev/cierre/internal/model"
)

// AccountRow is one classified account spread across the worksheet columns.
type AccountRow struct {
	Account        model.Account
	Classification model.Classification
	Balance        decimal.Decimal
	Cells          map[model.Column]decimal.Decimal
}

// EditableRow is a named worksheet row below the accounts: the automatic
// cascade rows (UB, TAX, UN, RL, NI, UL) and the user-added I<k> rows.
type EditableRow struct {
	ID      string
	Label   string
	Formula string
	// Value is the resolved cell value before column placement.
	Value decimal.Decimal
	Cells map[model.Column]decimal.Decimal
	// Display preserves column overrides verbatim, including text that did
	// not parse as a number, so user input is never silently discarded.
	Display map[model.Column]string
}

// Totals sums a column across account rows and editable rows.
type Totals map[model.Column]decimal.Decimal

// Of returns the total for a column (zero when empty).
func (t Totals) Of(col model.Column) decimal.Decimal {
	return t[col]
}

func (t Totals) add(col model.Column, v decimal.Decimal) {
	if v.IsZero() {
		return
	}
	t[col] = t[col].Add(v)
}

func (t Totals) addCells(cells map[model.Column]decimal.Decimal) {
	for col, v := range cells {
		t.add(col, v)
	}
}
