package formula

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sheet resolves named worksheet cells. A cell is either a constant
// computed by the engine (UB, TAX, UL, ...) or a raw user value: a plain
// number, or a Marker-prefixed formula over other cells. Resolution is a
// pure function of the sheet contents; callers rebuild the sheet after any
// input change instead of patching it.
type Sheet struct {
	raw    map[string]string
	values map[string]decimal.Decimal
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{
		raw:    make(map[string]string),
		values: make(map[string]decimal.Decimal),
	}
}

// SetValue installs an engine-computed constant.
func (s *Sheet) SetValue(cellID string, v decimal.Decimal) {
	s.values[cellID] = v
}

// SetRaw installs a user-supplied cell value (literal or formula). Raw
// values shadow a constant of the same ID.
func (s *Sheet) SetRaw(cellID, raw string) {
	s.raw[cellID] = raw
}

// Resolve returns the numeric value of a cell. Unknown cells, malformed
// formulas and cycles all resolve to zero; Resolve never fails.
func (s *Sheet) Resolve(cellID string) decimal.Decimal {
	return s.resolve(cellID, make(map[string]bool))
}

func (s *Sheet) resolve(cellID string, visited map[string]bool) decimal.Decimal {
	if visited[cellID] {
		// Cycle guard: formulas need not be recursively consistent, they
		// just must not loop.
		return decimal.Zero
	}
	raw, ok := s.raw[cellID]
	if !ok {
		return s.values[cellID]
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero
	}
	if v, err := decimal.NewFromString(trimmed); err == nil {
		return v
	}

	expr, err := Parse(strings.TrimPrefix(trimmed, Marker))
	if err != nil {
		return decimal.Zero
	}
	// visited tracks the current resolution path only, so a formula may
	// reference the same cell several times as long as no cell depends on
	// itself.
	visited[cellID] = true
	v, err := expr.Eval(func(refID string) decimal.Decimal {
		return s.resolve(refID, visited)
	})
	delete(visited, cellID)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// EvalWith evaluates one raw cell value against a fixed set of named
// constants, degrading to zero on any parse or evaluation failure. The
// cascade uses this for the configured tax and liquid-income formulas.
func EvalWith(raw string, consts map[string]decimal.Decimal) decimal.Decimal {
	s := NewSheet()
	for id, v := range consts {
		s.SetValue(id, v)
	}
	s.SetRaw("_", raw)
	return s.Resolve("_")
}
