package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cierre-dev/cierre/internal/model"
)

// Default name-pattern tables. Spanish closing-period terminology; charts
// in other jurisdictions supply their own tables through the config.
var (
	// DefaultVariablePatterns marks accounts with no fixed normal side:
	// their income/expense reading follows their own balance sign.
	DefaultVariablePatterns = []string{
		"diferencia de cambio",
		"ajuste por inflacion",
		"exposicion a la inflacion",
		"mantenimiento de valor",
		"resultado de la gestion",
		"resultados de gestiones anteriores",
		"resultado extraordinario",
	}

	// DefaultNonTaxablePatterns marks income that bypasses the tax base.
	DefaultNonTaxablePatterns = []string{
		"no gravable",
		"no imponible",
	}

	// DefaultAccumulatedPatterns marks the accumulated-results equity
	// account(s) routed to the closing columns.
	DefaultAccumulatedPatterns = []string{
		"resultados acumulados",
		"resultados a la fecha",
	}
)

var regulatoryKeywords = []string{"regularizadora", "regularizador", "regulatory"}

// keyword maps category terms (already folded) to a Category.
type keyword struct {
	terms    []string
	category model.Category
}

func (k keyword) in(folded string) bool {
	return containsAny(folded, k.terms)
}

// categoryKeywords are tried in order against the declared type and group.
var categoryKeywords = []keyword{
	{[]string{"activo", "asset"}, model.CategoryAsset},
	{[]string{"pasivo", "liabilit"}, model.CategoryLiability},
	{[]string{"patrimonio", "equity", "capital"}, model.CategoryEquity},
	{[]string{"ingreso", "income", "revenue"}, model.CategoryIncome},
	{[]string{"costo", "cost"}, model.CategoryExpense},
	{[]string{"gasto", "egreso", "expense"}, model.CategoryExpense},
	{[]string{"orden", "memo"}, model.CategoryMemo},
}

// exactTypes resolves a declared type that names a category outright.
var exactTypes = map[string]model.Category{
	"asset":      model.CategoryAsset,
	"liability":  model.CategoryLiability,
	"equity":     model.CategoryEquity,
	"income":     model.CategoryIncome,
	"expense":    model.CategoryExpense,
	"regulatory": model.CategoryRegulatory,
	"memo":       model.CategoryMemo,
}

// stripMarks removes combining marks so "inflación" matches "inflacion".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases and accent-strips a string for pattern matching.
func Fold(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

func foldAll(patterns []string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = Fold(p)
	}
	return out
}

// containsAny reports whether the folded haystack contains any folded
// pattern. Empty patterns never match.
func containsAny(folded string, patterns []string) bool {
	if folded == "" {
		return false
	}
	for _, p := range patterns {
		if p != "" && strings.Contains(folded, p) {
			return true
		}
	}
	return false
}
