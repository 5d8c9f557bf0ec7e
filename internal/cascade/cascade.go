// Package cascade computes the closing-period result chain: gross result,
// income tax, legal reserve and liquid result. Every step is rounded with
// banker's rounding before feeding the next, and a malformed configuration
// degrades to zero tax / zero reserve instead of failing the worksheet.
package cascade

import (
	"github.com/shopspring/decimal"

	"github.com/cierre-dev/cierre/internal/balance"
	"github.com/cierre-dev/cierre/internal/formula"
)

// Inputs carries the pre-cascade statement totals and the configured
// tax/reserve parameters for one run.
type Inputs struct {
	Income      decimal.Decimal // income column total, non-taxable excluded
	Expense     decimal.Decimal // expense column total
	NonTaxable  decimal.Decimal // non-taxable income, added back after tax
	Accumulated decimal.Decimal // accumulated-results balance, exposed as RA

	TaxFormula     string          // "" selects the flat-rate default
	TaxRatePercent decimal.Decimal // flat rate for the default tax path
	LiquidFormula  string          // "" selects UN + NI − RL

	ReservePercent decimal.Decimal
	// ReserveApplies is the OR of the config override flag and the
	// company's legal form requiring a reserve.
	ReserveApplies bool
}

// Summary is the resolved cascade, every amount rounded to 2 places.
type Summary struct {
	Gross      decimal.Decimal // UB = income − expense
	Tax        decimal.Decimal // TAX
	Net        decimal.Decimal // UN = UB − TAX
	Reserve    decimal.Decimal // RL
	NonTaxable decimal.Decimal // NI
	Liquid     decimal.Decimal // UL = UN + NI − RL
}

var hundred = decimal.NewFromInt(100)

// Run resolves the cascade in its strict order. It never fails.
func Run(in Inputs) Summary {
	ub := balance.Round(in.Income.Sub(in.Expense))

	tax := balance.Round(taxFor(in, ub))
	un := balance.Round(ub.Sub(tax))

	reserve := decimal.Zero
	if in.ReserveApplies && un.IsPositive() {
		reserve = balance.Round(un.Mul(in.ReservePercent).Div(hundred))
	}

	ni := balance.Round(in.NonTaxable)

	liquid := un.Add(ni).Sub(reserve)
	if in.LiquidFormula != "" {
		liquid = formula.EvalWith(in.LiquidFormula, map[string]decimal.Decimal{
			"UB":  ub,
			"RA":  in.Accumulated,
			"TAX": tax,
			"UN":  un,
			"RL":  reserve,
			"NI":  ni,
		})
	}
	liquid = balance.Round(liquid)

	return Summary{
		Gross:      ub,
		Tax:        tax,
		Net:        un,
		Reserve:    reserve,
		NonTaxable: ni,
		Liquid:     liquid,
	}
}

// taxFor evaluates the configured tax formula with UB and RA in scope, or
// falls back to a flat percentage of a positive gross result.
func taxFor(in Inputs, ub decimal.Decimal) decimal.Decimal {
	if in.TaxFormula != "" {
		return formula.EvalWith(in.TaxFormula, map[string]decimal.Decimal{
			"UB": ub,
			"RA": in.Accumulated,
		})
	}
	if ub.IsPositive() {
		return ub.Mul(in.TaxRatePercent).Div(hundred)
	}
	return decimal.Zero
}
