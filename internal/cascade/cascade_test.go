package cascade

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func eq(t *testing.T, want string, got decimal.Decimal, label string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s = %s, want %s", label, got, want)
}

func TestRun_OrderedChain(t *testing.T) {
	s := Run(Inputs{
		Income:         dec("1000"),
		TaxFormula:     "=UB*0.25",
		ReservePercent: dec("5"),
		ReserveApplies: true,
	})
	eq(t, "1000", s.Gross, "UB")
	eq(t, "250", s.Tax, "TAX")
	eq(t, "750", s.Net, "UN")
	eq(t, "37.5", s.Reserve, "RL")
	eq(t, "712.5", s.Liquid, "UL")
}

func TestRun_DefaultFlatRate(t *testing.T) {
	s := Run(Inputs{Income: dec("800"), Expense: dec("300"), TaxRatePercent: dec("25")})
	eq(t, "500", s.Gross, "UB")
	eq(t, "125", s.Tax, "TAX")
	eq(t, "375", s.Net, "UN")
	eq(t, "0", s.Reserve, "RL")
	eq(t, "375", s.Liquid, "UL")
}

func TestRun_LossHasNoDefaultTax(t *testing.T) {
	s := Run(Inputs{Income: dec("100"), Expense: dec("400"), TaxRatePercent: dec("25"), ReservePercent: dec("5"), ReserveApplies: true})
	eq(t, "-300", s.Gross, "UB")
	eq(t, "0", s.Tax, "TAX")
	eq(t, "-300", s.Net, "UN")
	eq(t, "0", s.Reserve, "no reserve on a loss")
	eq(t, "-300", s.Liquid, "UL")
}

func TestRun_ReserveOnlyWhenApplicable(t *testing.T) {
	in := Inputs{Income: dec("1000"), TaxFormula: "=0", ReservePercent: dec("5")}
	eq(t, "0", Run(in).Reserve, "RL without applicability")

	in.ReserveApplies = true
	eq(t, "50", Run(in).Reserve, "RL when applicable")
}

func TestRun_NonTaxableBypassesTaxBase(t *testing.T) {
	s := Run(Inputs{
		Income:         dec("1000"),
		NonTaxable:     dec("200"),
		TaxFormula:     "=UB*0.25",
		ReservePercent: dec("5"),
		ReserveApplies: true,
	})
	// Tax and reserve see only the 1000; the 200 lands after.
	eq(t, "250", s.Tax, "TAX")
	eq(t, "37.5", s.Reserve, "RL")
	eq(t, "200", s.NonTaxable, "NI")
	eq(t, "912.5", s.Liquid, "UL")
}

func TestRun_LiquidFormulaOverride(t *testing.T) {
	s := Run(Inputs{
		Income:        dec("1000"),
		TaxFormula:    "=UB*0.25",
		LiquidFormula: "=UN-100",
	})
	eq(t, "650", s.Liquid, "UL from override formula")
}

func TestRun_MalformedFormulasDegradeToZero(t *testing.T) {
	s := Run(Inputs{
		Income:         dec("1000"),
		TaxFormula:     "=UB**",
		LiquidFormula:  "=σ",
		ReservePercent: dec("5"),
	})
	eq(t, "0", s.Tax, "malformed tax formula")
	eq(t, "0", s.Liquid, "malformed liquid formula")
	eq(t, "1000", s.Net, "UN unaffected")
}

func TestRun_StepsAreRounded(t *testing.T) {
	// 333.335 * 0.25 = 83.33375 -> 83.33; UN computed from the rounded tax.
	s := Run(Inputs{Income: dec("333.335"), TaxFormula: "=UB*0.25"})
	eq(t, "333.34", s.Gross, "UB rounds half to even")
	eq(t, "83.34", s.Tax, "TAX")
	eq(t, "250", s.Net, "UN")
}

func TestRun_AccumulatedAvailableToTaxFormula(t *testing.T) {
	s := Run(Inputs{Income: dec("500"), Accumulated: dec("100"), TaxFormula: "=(UB+RA)*0.1"})
	eq(t, "60", s.Tax, "TAX over UB+RA")
}
