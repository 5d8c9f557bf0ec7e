// Package classify derives each account's nature and statement category
// from its code, declared type, group and name. Classification never
// fails: unmatched accounts default to a creditor/equity reading so the
// worksheet stays total-preserving.
package classify

import (
	"github.com/shopspring/decimal"

	"github.com/cierre-dev/cierre/internal/model"
)

// Ruleset holds the configurable name-pattern tables plus the fixed
// precedence rules. Patterns are matched accent- and case-insensitively.
type Ruleset struct {
	variable    []string
	nonTaxable  []string
	accumulated []string
}

// NewRuleset builds a Ruleset from configured pattern tables. Empty slices
// fall back to the Spanish defaults in DefaultVariablePatterns et al.
func NewRuleset(variable, nonTaxable, accumulated []string) *Ruleset {
	if len(variable) == 0 {
		variable = DefaultVariablePatterns
	}
	if len(nonTaxable) == 0 {
		nonTaxable = DefaultNonTaxablePatterns
	}
	if len(accumulated) == 0 {
		accumulated = DefaultAccumulatedPatterns
	}
	return &Ruleset{
		variable:    foldAll(variable),
		nonTaxable:  foldAll(nonTaxable),
		accumulated: foldAll(accumulated),
	}
}

// Classify derives the Classification for one account. The adjusted balance
// sign is only consulted for variable-nature, regulatory and memo accounts.
func (r *Ruleset) Classify(account model.Account, balance decimal.Decimal) model.Classification {
	name := Fold(account.Name)
	declared := Fold(account.Type)
	group := Fold(account.Group)

	// Accumulated results bypass the ordinary category rules entirely;
	// the splitter routes them into the closing columns.
	if containsAny(name, r.accumulated) {
		return model.Classification{
			Nature:      natureBySign(balance),
			Category:    model.CategoryEquity,
			Accumulated: true,
		}
	}

	// Variable-nature accounts take their income-statement side from the
	// sign of their own balance. They are never regulatory.
	if containsAny(name, r.variable) {
		cls := model.Classification{Variable: true}
		if balance.Sign() >= 0 {
			cls.Nature = model.NatureDebtor
			cls.Category = model.CategoryExpense
		} else {
			cls.Nature = model.NatureCreditor
			cls.Category = model.CategoryIncome
		}
		cls.NonTaxable = containsAny(name, r.nonTaxable)
		return cls
	}

	category, ok := model.CategoryEquity, false
	for _, rule := range rules {
		if category, ok = rule(account, declared, group); ok {
			break
		}
	}
	if !ok {
		category = model.CategoryEquity
	}

	// A regulatory keyword anywhere forces the account out of the income
	// statement regardless of how the ordinary rules read it.
	if containsAny(declared, regulatoryKeywords) ||
		containsAny(group, regulatoryKeywords) ||
		containsAny(name, regulatoryKeywords) {
		category = model.CategoryRegulatory
	}

	return model.Classification{
		Nature:     natureFor(category, balance),
		Category:   category,
		NonTaxable: category == model.CategoryIncome && containsAny(name, r.nonTaxable),
	}
}

// rule maps an account to a category, reporting whether it matched.
// Rules are tried in order; the first match wins.
type rule func(account model.Account, declared, group string) (model.Category, bool)

var rules = []rule{byCodePrefix, byKeyword, byExactType}

// byCodePrefix applies the chart-of-accounts numbering convention:
// 1=asset, 2=liability, 3=equity, 4=income, 5=cost, 6=expense,
// 7 and up = memorandum (order) accounts.
func byCodePrefix(account model.Account, _, _ string) (model.Category, bool) {
	switch account.LeadingDigit() {
	case 1:
		return model.CategoryAsset, true
	case 2:
		return model.CategoryLiability, true
	case 3:
		return model.CategoryEquity, true
	case 4:
		return model.CategoryIncome, true
	case 5, 6:
		return model.CategoryExpense, true
	case 7, 8, 9:
		return model.CategoryMemo, true
	}
	return "", false
}

// byKeyword scans the declared type, then the group label, for category
// keywords (Spanish and English, accent-folded).
func byKeyword(_ model.Account, declared, group string) (model.Category, bool) {
	for _, field := range []string{declared, group} {
		for _, kw := range categoryKeywords {
			if kw.in(field) {
				return kw.category, true
			}
		}
	}
	return "", false
}

// byExactType is the last resort: the declared type names a category
// outright.
func byExactType(_ model.Account, declared, _ string) (model.Category, bool) {
	if cat, ok := exactTypes[declared]; ok {
		return cat, true
	}
	return "", false
}

func natureFor(category model.Category, balance decimal.Decimal) model.Nature {
	switch category {
	case model.CategoryAsset, model.CategoryExpense:
		return model.NatureDebtor
	case model.CategoryLiability, model.CategoryEquity, model.CategoryIncome:
		return model.NatureCreditor
	default:
		// Regulatory and memo accounts sit on whichever side their
		// balance does.
		return natureBySign(balance)
	}
}

func natureBySign(balance decimal.Decimal) model.Nature {
	if balance.Sign() >= 0 {
		return model.NatureDebtor
	}
	return model.NatureCreditor
}
