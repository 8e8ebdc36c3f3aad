package domain

import (
	"strings"
)

// Category classifies a transaction's purpose. The set is closed: whatever
// free text the AI layer returns, it must collapse to one of these values.
type Category string

const (
	CategoryTransport Category = "transport"
	CategoryFood      Category = "food"
	CategoryFun       Category = "fun"
	CategoryHome      Category = "home"
	CategoryHealth    Category = "health"
	CategoryShopping  Category = "shopping"
	CategoryServices  Category = "services"
	CategoryIncome    Category = "income"
	CategoryOther     Category = "other"
)

// Categories lists every valid category in a fixed order.
var Categories = []Category{
	CategoryTransport,
	CategoryFood,
	CategoryFun,
	CategoryHome,
	CategoryHealth,
	CategoryShopping,
	CategoryServices,
	CategoryIncome,
	CategoryOther,
}

// ParseCategory maps an arbitrary string onto the closed category set.
// Comparison is case-insensitive; anything unrecognized becomes CategoryOther.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return known
		}
	}
	return CategoryOther
}

// ParsedTransaction is the resolution pipeline's output contract.
// It is constructed fresh per inbound message and immutable once validated.
type ParsedTransaction struct {
	Title    string   // short human-readable label, never empty after resolution
	Amount   int64    // whole currency units, strictly positive when valid
	Category Category // member of the closed category set
	IsIncome bool     // keyword cues override both parser and AI signals
	Date     string   // "YYYY-MM-DD"; filled with today's date during resolution
}

// Validate reports whether the transaction satisfies the output contract.
// A zero or negative amount is never persisted.
func (t ParsedTransaction) Validate() error {
	if t.Amount <= 0 {
		return ErrNoAmount
	}
	return nil
}
