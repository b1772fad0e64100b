package utils

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/PraharshPatni13/brokerage-filler/dto"
)

// TextExtractor is the fallback for pages without usable tables. It walks
// raw text lines, treating a line that carries both a scheme name and rate
// values as the start of a record, then scans a short window of following
// lines for labeled or positional rate values.
type TextExtractor struct {
	matcher *TierMatcher
	maxRate decimal.Decimal
}

func NewTextExtractor(matcher *TierMatcher, maxRate decimal.Decimal) *TextExtractor {
	return &TextExtractor{matcher: matcher, maxRate: maxRate}
}

// Extract reads candidate records from the page's text lines into the
// registry. A later record for the same scheme overwrites the earlier one.
func (e *TextExtractor) Extract(lines []string, registry dto.SchemeRegistry) {
	for i, raw := range lines {
		line := Normalize(strings.TrimSpace(raw))
		if line == "" || IsFooterLine(line) {
			continue
		}

		name := Normalize(StripRates(line))
		if len(FindRates(line)) == 0 || name == "" || ContainsTierKeyword(name) {
			continue
		}

		rates := dto.SchemeRates{}
		rateIdx := 0
		end := i + len(dto.AllTiers)
		if end > len(lines) {
			end = len(lines)
		}

		for j := i; j < end; j++ {
			subline := Normalize(strings.TrimSpace(lines[j]))
			matched := e.matcher.Match(subline)

			for _, rate := range FindRates(subline) {
				if rate.GreaterThan(e.maxRate) {
					continue
				}
				if len(matched) > 0 && rateIdx < len(matched) {
					// Labeled line: the value belongs to every tier the
					// label names.
					for _, tier := range matched {
						rates[tier] = rate
					}
					rateIdx += len(matched)
				} else if rateIdx < len(dto.AllTiers) {
					// Unlabeled value: fill the next tier in canonical
					// order.
					rates[dto.AllTiers[rateIdx]] = rate
					rateIdx++
				}
			}
		}

		rates.ApplyLongTermDefault()
		registry.Put(name, rates)
	}
}
