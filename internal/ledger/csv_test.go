package ledger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cierre-dev/cierre/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAccountsRoundTrip(t *testing.T) {
	accounts := []model.Account{
		{Code: "1.1.01", Name: "Caja", Type: "Activo", Group: "Activo corriente"},
		{Code: "4.1", Name: "Ventas", Type: "Ingresos"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, accounts))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, accounts[0], got[0])
	assert.Equal(t, accounts[1], got[1])
}

func TestReadAccounts_EmptyCode(t *testing.T) {
	in := "code,name,type,group\n,Caja,Activo,\n"
	_, err := ReadAccounts(strings.NewReader(in))
	assert.Error(t, err)
}

func TestTotalsRoundTrip(t *testing.T) {
	entries := []model.TrialBalanceEntry{
		{AccountCode: "1.1.01", Debit: dec("1500.50")},
		{AccountCode: "4.1", Credit: dec("1000")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTotals(&buf, entries))

	got, err := ReadTotals(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Debit.Equal(dec("1500.50")))
	assert.True(t, got[0].Credit.IsZero())
	assert.True(t, got[1].Credit.Equal(dec("1000")))
}

func TestReadTotals_EmptyAmountsAreZero(t *testing.T) {
	in := "account_code,debit,credit\n5.1,,\n"
	got, err := ReadTotals(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Debit.IsZero())
	assert.True(t, got[0].Credit.IsZero())
}

func TestReadTotals_RejectsNegative(t *testing.T) {
	in := "account_code,debit,credit\n5.1,-10.00,\n"
	_, err := ReadTotals(strings.NewReader(in))
	assert.Error(t, err)
}

func TestReadTotals_RejectsBadNumber(t *testing.T) {
	in := "account_code,debit,credit\n5.1,diez,\n"
	_, err := ReadTotals(strings.NewReader(in))
	assert.Error(t, err)
}
