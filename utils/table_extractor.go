package utils

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/PraharshPatni13/brokerage-filler/dto"
)

// TableExtractor parses tabular page regions into scheme rate records.
type TableExtractor struct {
	matcher *TierMatcher
	maxRate decimal.Decimal
}

func NewTableExtractor(matcher *TierMatcher, maxRate decimal.Decimal) *TableExtractor {
	return &TableExtractor{matcher: matcher, maxRate: maxRate}
}

// Extract reads one table into the registry. It returns true when the grid
// had at least a header row and one data row, whether or not any record was
// produced; tables without a recognizable scheme-name column are discarded.
func (e *TableExtractor) Extract(table dto.Table, registry dto.SchemeRegistry) bool {
	if len(table) < 2 {
		return false
	}

	header := make([]string, len(table[0]))
	for i, cell := range table[0] {
		header[i] = Normalize(cell)
	}

	schemeCol := -1
	tierCols := make(map[dto.Tier]int)
	for i, col := range header {
		if strings.Contains(col, "scheme") || strings.Contains(col, "fund") || strings.Contains(col, "name") {
			schemeCol = i
			continue
		}
		for _, tier := range e.matcher.Match(col) {
			tierCols[tier] = i
		}
	}
	if schemeCol < 0 {
		return true
	}

	for _, row := range table[1:] {
		if len(row) <= schemeCol {
			continue
		}
		name := Normalize(row[schemeCol])
		if name == "" || IsFooterLine(name) {
			continue
		}

		rates := dto.SchemeRates{}
		for tier, col := range tierCols {
			if col >= len(row) {
				continue
			}
			found := FindRates(strings.TrimSpace(row[col]))
			if len(found) == 0 {
				continue
			}
			if found[0].GreaterThan(e.maxRate) {
				continue
			}
			rates[tier] = found[0]
		}

		rates.ApplyLongTermDefault()
		registry.Put(name, rates)
	}

	return true
}
