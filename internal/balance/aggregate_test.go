package balance

import (
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

func TestRound_BankersTies(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2.345", "2.34"},
		{"2.355", "2.36"},
		{"2.365", "2.36"},
		{"-2.345", "-2.34"},
		{"-2.355", "-2.36"},
		{"10.004", "10"},
		{"10.006", "10.01"},
	}
	for _, tt := range tests {
		got := Round(dec(tt.in))
		assert.True(t, got.Equal(dec(tt.want)), "Round(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestRound_Idempotent(t *testing.T) {
	for _, s := range []string{"2.345", "99.995", "-0.005", "1234.5678"} {
		once := Round(dec(s))
		assert.True(t, once.Equal(Round(once)), "Round(Round(%s)) != Round(%s)", s, s)
	}
}

func TestSides(t *testing.T) {
	assert.True(t, DebitSide(dec("50")).Equal(dec("50")))
	assert.True(t, DebitSide(dec("-50")).IsZero())
	assert.True(t, CreditSide(dec("-50")).Equal(dec("50")))
	assert.True(t, CreditSide(dec("50")).IsZero())
	assert.True(t, DebitSide(decimal.Zero).IsZero())
	assert.True(t, CreditSide(decimal.Zero).IsZero())
}

func TestAggregate_MergesAndZeroFills(t *testing.T) {
	accounts := []model.Account{
		{Code: "1.1", Name: "Caja"},
		{Code: "2.1", Name: "Proveedores"},
		{Code: "5.1", Name: "Sueldos"},
	}
	trial := []model.TrialBalanceEntry{
		{AccountCode: "1.1", Debit: dec("500"), Credit: dec("100")},
		{AccountCode: "2.1", Credit: dec("300")},
	}
	adjustments := []model.AdjustmentEntry{
		{AccountCode: "2.1", Debit: dec("50")},
		{AccountCode: "5.1", Debit: dec("120.505")}, // only in adjustments
	}

	got := Aggregate(accounts, trial, adjustments)
	require.Len(t, got, 3)

	assert.True(t, got[0].Balance.Equal(dec("400")), "1.1 balance %s", got[0].Balance)
	assert.True(t, got[1].Balance.Equal(dec("-250")), "2.1 balance %s", got[1].Balance)
	// Banker's rounding applies to the merged balance.
	assert.True(t, got[2].Balance.Equal(dec("120.5")), "5.1 balance %s", got[2].Balance)
	assert.True(t, got[2].TrialDebit.IsZero())
}

func TestAggregate_IgnoresUnknownCodes(t *testing.T) {
	accounts := []model.Account{{Code: "1.1", Name: "Caja"}}
	trial := []model.TrialBalanceEntry{{AccountCode: "9.9", Debit: dec("10")}}
	got := Aggregate(accounts, trial, nil)
	require.Len(t, got, 1)
	assert.True(t, got[0].Balance.IsZero())
}
