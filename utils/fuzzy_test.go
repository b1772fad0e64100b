package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreExactMatch(t *testing.T) {
	assert.Equal(t, 100, Score("abc fund", "abc fund"))
}

func TestScoreTypoStaysAboveThreshold(t *testing.T) {
	assert.GreaterOrEqual(t, Score("abc fnd", "abc fund"), 90)
}

func TestScoreDifferentNamesStayBelowThreshold(t *testing.T) {
	assert.Less(t, Score("xyz totally different", "abc fund"), 90)
	assert.Less(t, Score("unknown fund", "abc fund"), 90)
}

func TestScoreEmptyStrings(t *testing.T) {
	assert.Equal(t, 0, Score("", "abc fund"))
	assert.Equal(t, 0, Score("abc fund", ""))
}

func TestScoreContainment(t *testing.T) {
	score := Score("hsbc midcap fund direct", "hsbc midcap fund")
	assert.Greater(t, score, 75)
	assert.Less(t, score, 100)
}

func TestBestMatch(t *testing.T) {
	m := NewFuzzyMatcher()
	candidates := []string{"abc fund", "hsbc midcap fund", "xyz balanced fund"}

	match, score := m.BestMatch("abc fnd", candidates)
	assert.Equal(t, "abc fund", match)
	assert.GreaterOrEqual(t, score, 90)

	match, score = m.BestMatch("completely unrelated", candidates)
	assert.Less(t, score, 90, "no candidate should score high for %q", match)
}

func TestBestMatchNoCandidates(t *testing.T) {
	m := NewFuzzyMatcher()
	match, score := m.BestMatch("abc fund", nil)
	assert.Equal(t, "", match)
	assert.Equal(t, 0, score)
}
