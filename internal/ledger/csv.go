// Package ledger is the reporting-collaborator boundary: it loads the
// account list and the trial-balance/adjustment totals the engine consumes,
// from one CSV file each.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/cierre-dev/cierre/internal/model"
)

const (
	accountFields = 4
	colCode       = 0
	colName       = 1
	colType       = 2
	colGroup      = 3
)

const (
	totalFields = 3
	colAcctCode = 0
	colDebit    = 1
	colCredit   = 2
)

// ReadAccounts reads accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = accountFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"code", "name", "type", "group"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, accountFields)
	row[colCode] = acct.Code
	row[colName] = acct.Name
	row[colType] = acct.Type
	row[colGroup] = acct.Group
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != accountFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", accountFields, len(record))
	}
	if record[colCode] == "" {
		return model.Account{}, fmt.Errorf("empty account code")
	}
	return model.Account{
		Code:  record[colCode],
		Name:  record[colName],
		Type:  record[colType],
		Group: record[colGroup],
	}, nil
}

// ReadTotals reads a debit/credit totals CSV (trial-balance.csv or
// adjustments.csv have the same shape).
func ReadTotals(r io.Reader) ([]model.TrialBalanceEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = totalFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading totals CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.TrialBalanceEntry
	for i, rec := range records[1:] {
		entry, err := UnmarshalTotal(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WriteTotals writes a debit/credit totals CSV.
func WriteTotals(w io.Writer, entries []model.TrialBalanceEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_code", "debit", "credit"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		if err := cw.Write(MarshalTotal(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTotal converts a totals entry to a CSV row.
func MarshalTotal(e model.TrialBalanceEntry) []string {
	row := make([]string, totalFields)
	row[colAcctCode] = e.AccountCode
	if !e.Debit.IsZero() {
		row[colDebit] = e.Debit.StringFixed(2)
	}
	if !e.Credit.IsZero() {
		row[colCredit] = e.Credit.StringFixed(2)
	}
	return row
}

// UnmarshalTotal converts a CSV row to a totals entry. Empty amount fields
// read as zero; negative amounts are rejected at this boundary.
func UnmarshalTotal(record []string) (model.TrialBalanceEntry, error) {
	if len(record) != totalFields {
		return model.TrialBalanceEntry{}, fmt.Errorf("expected %d fields, got %d", totalFields, len(record))
	}

	var debit, credit decimal.Decimal
	var err error
	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return model.TrialBalanceEntry{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}
	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return model.TrialBalanceEntry{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}
	if debit.IsNegative() || credit.IsNegative() {
		return model.TrialBalanceEntry{}, fmt.Errorf("negative amount for account %q", record[colAcctCode])
	}

	return model.TrialBalanceEntry{
		AccountCode: record[colAcctCode],
		Debit:       debit,
		Credit:      credit,
	}, nil
}
