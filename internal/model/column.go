package model

// Column identifies one of the fourteen worksheet columns.
type Column string

const (
	ColTrialDebit    Column = "tb_debit"
	ColTrialCredit   Column = "tb_credit"
	ColAdjDebit      Column = "adj_debit"
	ColAdjCredit     Column = "adj_credit"
	ColBalanceDebit  Column = "bal_debit"
	ColBalanceCredit Column = "bal_credit"
	ColExpense       Column = "expense"
	ColIncome        Column = "income"
	ColAsset         Column = "asset"
	ColLiabEquity    Column = "liab_equity"
	ColClosingDebit  Column = "close_debit"
	ColClosingCredit Column = "close_credit"
	ColMemoDebit     Column = "memo_debit"
	ColMemoCredit    Column = "memo_credit"
)

// Columns lists all worksheet columns in display order.
var Columns = []Column{
	ColTrialDebit, ColTrialCredit,
	ColAdjDebit, ColAdjCredit,
	ColBalanceDebit, ColBalanceCredit,
	ColExpense, ColIncome,
	ColAsset, ColLiabEquity,
	ColClosingDebit, ColClosingCredit,
	ColMemoDebit, ColMemoCredit,
}

// OverrideKey builds the column-override map key for a row and column.
// "UL" + liab_equity -> "UL:liab_equity"
func OverrideKey(rowID string, col Column) string {
	return rowID + ":" + string(col)
}
