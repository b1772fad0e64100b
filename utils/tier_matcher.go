package utils

import (
	"regexp"
	"strings"

	"github.com/PraharshPatni13/brokerage-filler/dto"
)

// TierRule maps a header/text pattern to the tiers it refers to. A single
// rule may cover several tiers for range headers like "1-3 years trail".
type TierRule struct {
	Pattern *regexp.Regexp
	Tiers   []dto.Tier
}

// DefaultTierRules returns the recognition rules in priority order. The
// first matching rule wins, so the single-year rules come before the
// compound range rules.
func DefaultTierRules() []TierRule {
	firstToThird := []dto.Tier{dto.TierFirstYear, dto.TierSecondYear, dto.TierThirdYear}

	return []TierRule{
		{regexp.MustCompile(`(?i)\b(first|1st)\s*(year|yr)\s*(trail|commission|rate)?\b`), []dto.Tier{dto.TierFirstYear}},
		{regexp.MustCompile(`(?i)\b(second|2nd)\s*(year|yr)\s*(trail|commission|rate)?\b`), []dto.Tier{dto.TierSecondYear}},
		{regexp.MustCompile(`(?i)\b(third|3rd)\s*(year|yr)\s*(trail|commission|rate)?\b`), []dto.Tier{dto.TierThirdYear}},
		{regexp.MustCompile(`(?i)\b(fourth|4th)\s*(year|yr)\s*(trail|commission|rate)?\b`), []dto.Tier{dto.TierFourthYear}},
		{regexp.MustCompile(`(?i)\b(longterm|long\s*term|5\+?|beyond\s*4)\s*(year|yr)?\s*(trail|commission|rate)?\b`), []dto.Tier{dto.TierLongTerm}},
		{regexp.MustCompile(`(?i)\b(1\s*(?:-|to)\s*3|1\s*through\s*3|first\s*3|initial\s*3)\s*(years?|yrs?)\s*(trail|commission|rate)?\b`), firstToThird},
		{regexp.MustCompile(`(?i)\b(trail\s*(1\s*(?:-|to)\s*3|1-3)|years?\s*1-3)\b`), firstToThird},
	}
}

// TierMatcher classifies a column header or text fragment into the canonical
// tiers it refers to.
type TierMatcher struct {
	rules []TierRule
}

func NewTierMatcher(rules []TierRule) *TierMatcher {
	return &TierMatcher{rules: rules}
}

// Match returns the tiers the fragment refers to, or nil. Rules are tried
// in order and only the first match counts.
func (m *TierMatcher) Match(fragment string) []dto.Tier {
	for _, rule := range m.rules {
		if rule.Pattern.MatchString(fragment) {
			return rule.Tiers
		}
	}
	return nil
}

// ContainsTierKeyword reports whether a normalized line carries one of the
// canonical tier labels. Used to tell a data line from a scheme-name line.
func ContainsTierKeyword(line string) bool {
	for _, t := range dto.AllTiers {
		if strings.Contains(line, strings.ToLower(t.String())) {
			return true
		}
	}
	return false
}
