package utils

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FuzzyMatcher scores approximate scheme-name similarity on a 0-100 scale.
// It tolerates the spelling drift between PDF and spreadsheet name lists
// without accepting outright different schemes.
type FuzzyMatcher struct{}

func NewFuzzyMatcher() *FuzzyMatcher {
	return &FuzzyMatcher{}
}

// BestMatch returns the candidate most similar to target and its score.
// Ties keep the earliest candidate.
func (m *FuzzyMatcher) BestMatch(target string, candidates []string) (string, int) {
	best := ""
	bestScore := 0
	for _, c := range candidates {
		if score := Score(target, c); score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best, bestScore
}

// Score calculates a similarity score between two strings (0-100) from
// exact/containment checks, insert-delete edit distance, and the fuzzy
// library's subsequence rank.
func Score(s1, s2 string) int {
	if s1 == s2 {
		return 100
	}
	if s1 == "" || s2 == "" {
		return 0
	}

	// One name contained in the other is common for plan variants; score
	// by length ratio.
	if strings.Contains(s1, s2) {
		return 75 + (25 * len(s2) / len(s1))
	}
	if strings.Contains(s2, s1) {
		return 75 + (25 * len(s1) / len(s2))
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	total := len(r1) + len(r2)
	distanceScore := 100 * (total - indelDistance(r1, r2)) / total

	// Subsequence rank as a secondary signal: RankMatch returns the edit
	// distance when s1 fuzzy-matches inside s2, or -1.
	rankScore := 0
	if rank := fuzzy.RankMatch(s1, s2); rank >= 0 {
		maxLen := len(r1)
		if len(r2) > maxLen {
			maxLen = len(r2)
		}
		if rank < maxLen {
			rankScore = 100 * (maxLen - rank) / maxLen
		}
	}

	if distanceScore > rankScore {
		return distanceScore
	}
	return rankScore
}

// indelDistance is the edit distance when only insertions and deletions are
// allowed (a substitution counts as both).
func indelDistance(r1, r2 []rune) int {
	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)

	for j := 0; j <= len(r2); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			if r1[i-1] == r2[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min(prev[j]+1, curr[j-1]+1)
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}
