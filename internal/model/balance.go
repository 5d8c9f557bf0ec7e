package model

import "github.com/shopspring/decimal"

// TrialBalanceEntry is an account's pre-adjustment debit/credit totals.
type TrialBalanceEntry struct {
	AccountCode string
	Debit       decimal.Decimal // >= 0
	Credit      decimal.Decimal // >= 0
}

// AdjustmentEntry is an account's adjustment-only debit/credit totals.
// An account may appear here without appearing in the trial balance.
type AdjustmentEntry struct {
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// AdjustedAccount is an account with merged trial-balance and adjustment
// totals. Recomputed from scratch on every engine run, never mutated.
type AdjustedAccount struct {
	Account     Account
	TrialDebit  decimal.Decimal
	TrialCredit decimal.Decimal
	AdjDebit    decimal.Decimal
	AdjCredit   decimal.Decimal
	// Balance = round((TrialDebit+AdjDebit) − (TrialCredit+AdjCredit)),
	// banker's rounding to 2 places. Positive means debit side.
	Balance decimal.Decimal
}
