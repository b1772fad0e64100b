package dto

import "github.com/shopspring/decimal"

// Tier is a brokerage trail bucket. The order is meaningful: when a text
// block carries unlabeled rate values, the Nth value belongs to the Nth tier.
type Tier int

const (
	TierFirstYear Tier = iota
	TierSecondYear
	TierThirdYear
	TierFourthYear
	TierLongTerm
)

// AllTiers lists every tier in canonical order.
var AllTiers = []Tier{
	TierFirstYear,
	TierSecondYear,
	TierThirdYear,
	TierFourthYear,
	TierLongTerm,
}

var tierNames = map[Tier]string{
	TierFirstYear:  "FIRST YEAR TRAIL",
	TierSecondYear: "SECOND YEAR TRAIL",
	TierThirdYear:  "THIRD YEAR TRAIL",
	TierFourthYear: "FOURTH YEAR TRAIL",
	TierLongTerm:   "LONGTERM YEAR TRAIL",
}

func (t Tier) String() string {
	return tierNames[t]
}

// SchemeRates holds the extracted rate per tier. A tier with no key means
// the rate was not disclosed for that scheme.
type SchemeRates map[Tier]decimal.Decimal

// Empty reports whether no tier has a resolved rate.
func (r SchemeRates) Empty() bool {
	return len(r) == 0
}

// ApplyLongTermDefault copies the fourth-year trail into the long-term slot
// when the long-term trail was not separately disclosed.
func (r SchemeRates) ApplyLongTermDefault() {
	if fourth, ok := r[TierFourthYear]; ok {
		if _, ok := r[TierLongTerm]; !ok {
			r[TierLongTerm] = fourth
		}
	}
}

// SchemeRegistry maps normalized scheme names to their extracted rates.
// It is built during one decode attempt and read-only afterwards.
type SchemeRegistry map[string]SchemeRates

// Put stores rates under a normalized scheme name, discarding all-empty
// records as extraction noise.
func (reg SchemeRegistry) Put(name string, rates SchemeRates) {
	if name == "" || rates.Empty() {
		return
	}
	reg[name] = rates
}

// Keys returns the normalized scheme names currently in the registry.
func (reg SchemeRegistry) Keys() []string {
	keys := make([]string, 0, len(reg))
	for k := range reg {
		keys = append(keys, k)
	}
	return keys
}

// Table is a 2-D grid of cell text, header row first.
type Table [][]string

// Page holds the extractable content of one document page.
type Page struct {
	Lines  []string
	Tables []Table
}

// Document is a successfully opened PDF, reduced to per-page text and tables.
type Document struct {
	Pages []Page
}
