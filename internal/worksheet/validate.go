package worksheet

import "github.com/shopspring/decimal"

// tolerance is one cent plus floating-point slack. Kept at the historical
// value for compatibility with existing worksheets.
var tolerance = decimal.NewFromFloat(0.011)

// Report is the fundamental-equation check. It is a reported property, not
// an error: the caller surfaces an imbalance, the engine never corrects it.
type Report struct {
	Balanced bool
	// Difference is assets minus the liability+equity side, signed.
	Difference decimal.Decimal
}

// Validate compares the two balance-sheet sides.
func Validate(assets, liabEquity decimal.Decimal) Report {
	diff := assets.Sub(liabEquity)
	return Report{
		Balanced:   diff.Abs().LessThan(tolerance),
		Difference: diff,
	}
}
