package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PraharshPatni13/brokerage-filler/dto"
)

func TestTierMatcherSingleYears(t *testing.T) {
	m := NewTierMatcher(DefaultTierRules())

	assert.Equal(t, []dto.Tier{dto.TierFirstYear}, m.Match("1st Yr Trail"))
	assert.Equal(t, []dto.Tier{dto.TierFirstYear}, m.Match("First Year Commission"))
	assert.Equal(t, []dto.Tier{dto.TierSecondYear}, m.Match("2nd year trail"))
	assert.Equal(t, []dto.Tier{dto.TierThirdYear}, m.Match("Third Year Rate"))
	assert.Equal(t, []dto.Tier{dto.TierFourthYear}, m.Match("4th Year Trail"))
}

func TestTierMatcherLongTermFamily(t *testing.T) {
	m := NewTierMatcher(DefaultTierRules())

	assert.Equal(t, []dto.Tier{dto.TierLongTerm}, m.Match("Long Term Trail"))
	assert.Equal(t, []dto.Tier{dto.TierLongTerm}, m.Match("longterm"))
	assert.Equal(t, []dto.Tier{dto.TierLongTerm}, m.Match("5+ years"))
	assert.Equal(t, []dto.Tier{dto.TierLongTerm}, m.Match("beyond 4 years"))
}

func TestTierMatcherRanges(t *testing.T) {
	m := NewTierMatcher(DefaultTierRules())
	firstToThird := []dto.Tier{dto.TierFirstYear, dto.TierSecondYear, dto.TierThirdYear}

	assert.Equal(t, firstToThird, m.Match("1 to 3 years trail"))
	assert.Equal(t, firstToThird, m.Match("1-3 Years Trail"))
	assert.Equal(t, firstToThird, m.Match("Trail 1-3"))
	assert.Equal(t, firstToThird, m.Match("first 3 years"))
}

func TestTierMatcherNoMatch(t *testing.T) {
	m := NewTierMatcher(DefaultTierRules())

	assert.Nil(t, m.Match("Scheme Name"))
	assert.Nil(t, m.Match("AMC Code"))
	assert.Nil(t, m.Match(""))
}

func TestTierMatcherFirstRuleWins(t *testing.T) {
	m := NewTierMatcher(DefaultTierRules())

	// A fragment naming two tiers resolves to the highest-priority rule
	// only, never the union.
	assert.Equal(t, []dto.Tier{dto.TierFirstYear}, m.Match("1st year trail and 2nd year trail"))
}

func TestContainsTierKeyword(t *testing.T) {
	assert.True(t, ContainsTierKeyword("first year trail 0.50"))
	assert.True(t, ContainsTierKeyword("longterm year trail"))
	assert.False(t, ContainsTierKeyword("abc fund"))
}
