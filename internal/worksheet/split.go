package worksheet

import (
	"github.com/shopspring/decimal"

	"github.com/cierre-dev/cierre/internal/balance"
	"github.com/cierre-dev/cierre/internal/model"
)

// Split routes one adjusted account into its worksheet columns. Statement
// columns carry magnitudes; the balance sign only picks the side.
func Split(adj model.AdjustedAccount, cls model.Classification) AccountRow {
	cells := make(map[model.Column]decimal.Decimal, 8)
	put := func(col model.Column, v decimal.Decimal) {
		if !v.IsZero() {
			cells[col] = v
		}
	}

	put(model.ColTrialDebit, adj.TrialDebit)
	put(model.ColTrialCredit, adj.TrialCredit)
	put(model.ColAdjDebit, adj.AdjDebit)
	put(model.ColAdjCredit, adj.AdjCredit)
	put(model.ColBalanceDebit, balance.DebitSide(adj.Balance))
	put(model.ColBalanceCredit, balance.CreditSide(adj.Balance))

	abs := adj.Balance.Abs()
	switch {
	case cls.Category == model.CategoryMemo:
		if adj.Balance.Sign() >= 0 {
			put(model.ColMemoDebit, abs)
		} else {
			put(model.ColMemoCredit, abs)
		}
	case cls.Accumulated:
		// Closing columns, magnitudes only: several accumulated-results
		// accounts each contribute their own absolute value.
		if adj.Balance.Sign() >= 0 {
			put(model.ColClosingDebit, abs)
		} else {
			put(model.ColClosingCredit, abs)
		}
	case cls.Category == model.CategoryRegulatory:
		put(model.ColLiabEquity, abs)
	case cls.Category == model.CategoryExpense:
		put(model.ColExpense, abs)
	case cls.Category == model.CategoryIncome:
		// Non-taxable income bypasses the income column; the cascade adds
		// it back after tax.
		if !cls.NonTaxable {
			put(model.ColIncome, abs)
		}
	case cls.Category == model.CategoryAsset:
		put(model.ColAsset, abs)
	default: // liability, equity
		put(model.ColLiabEquity, abs)
	}

	return AccountRow{
		Account:        adj.Account,
		Classification: cls,
		Balance:        adj.Balance,
		Cells:          cells,
	}
}
