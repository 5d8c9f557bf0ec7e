// Package balance merges trial-balance and adjustment totals into adjusted
// account balances with the rounding rules the worksheet depends on.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/cierre-dev/cierre/internal/model"
)

// Round rounds an amount to 2 decimal places with banker's rounding
// (round-half-to-even). Repeated additive rounding across a statement must
// not drift, so ties go to the nearest even cent. Idempotent.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// DebitSide returns the debit-column portion of a signed balance:
// the balance itself when positive, zero otherwise.
func DebitSide(balance decimal.Decimal) decimal.Decimal {
	if balance.IsPositive() {
		return balance
	}
	return decimal.Zero
}

// CreditSide returns the credit-column portion of a signed balance:
// its magnitude when negative, zero otherwise.
func CreditSide(balance decimal.Decimal) decimal.Decimal {
	if balance.IsNegative() {
		return balance.Neg()
	}
	return decimal.Zero
}

// Aggregate merges trial-balance and adjustment totals per account. Accounts
// missing on either side are zero-filled; entries for codes not in the
// account list are ignored. The returned slice follows account order.
func Aggregate(accounts []model.Account, trial []model.TrialBalanceEntry, adjustments []model.AdjustmentEntry) []model.AdjustedAccount {
	trialByCode := make(map[string]model.TrialBalanceEntry, len(trial))
	for _, e := range trial {
		trialByCode[e.AccountCode] = e
	}
	adjByCode := make(map[string]model.AdjustmentEntry, len(adjustments))
	for _, e := range adjustments {
		adjByCode[e.AccountCode] = e
	}

	result := make([]model.AdjustedAccount, 0, len(accounts))
	for _, a := range accounts {
		tb := trialByCode[a.Code]
		adj := adjByCode[a.Code]
		bal := Round(tb.Debit.Add(adj.Debit).Sub(tb.Credit).Sub(adj.Credit))
		result = append(result, model.AdjustedAccount{
			Account:     a,
			TrialDebit:  tb.Debit,
			TrialCredit: tb.Credit,
			AdjDebit:    adj.Debit,
			AdjCredit:   adj.Credit,
			Balance:     bal,
		})
	}
	return result
}
