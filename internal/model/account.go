package model

// Nature is the normal (increasing) side of an account's balance.
type Nature string

const (
	NatureDebtor   Nature = "debtor"
	NatureCreditor Nature = "creditor"
)

// Category routes an account into the worksheet statements.
type Category string

const (
	CategoryAsset      Category = "asset"
	CategoryLiability  Category = "liability"
	CategoryEquity     Category = "equity"
	CategoryIncome     Category = "income"
	CategoryExpense    Category = "expense"
	CategoryRegulatory Category = "regulatory"
	CategoryMemo       Category = "memo"
)

// Account represents a row in accounts.csv. Code and Name are immutable
// inputs; classification is derived on every run, never stored back.
type Account struct {
	Code  string // hierarchical, e.g. "1.1.01"
	Name  string
	Type  string // declared type, free text
	Group string // optional group label
}

// LeadingDigit returns the first decimal digit of the account code,
// or -1 when the code does not start with a digit.
func (a Account) LeadingDigit() int {
	if len(a.Code) == 0 {
		return -1
	}
	c := a.Code[0]
	if c < '0' || c > '9' {
		return -1
	}
	return int(c - '0')
}

// Classification is the derived typing of an account for one engine run.
type Classification struct {
	Nature   Nature
	Category Category
	// Variable marks accounts whose income/expense side follows the sign
	// of their own adjusted balance instead of their declared type.
	Variable bool
	// NonTaxable marks income excluded from the tax base; it is kept out
	// of the income column and added back after tax by the cascade.
	NonTaxable bool
	// Accumulated marks accumulated-results accounts routed to the
	// closing columns instead of the liability/equity column.
	Accumulated bool
}
