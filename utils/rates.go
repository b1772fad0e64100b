package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ratePattern captures decimal rate values like "0.50", ".75" or "1.35%".
var ratePattern = regexp.MustCompile(`\d*\.\d{1,2}%?`)

// FindRates returns every parseable rate value in the fragment, in order.
// Unparseable matches are skipped.
func FindRates(text string) []decimal.Decimal {
	matches := ratePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	rates := make([]decimal.Decimal, 0, len(matches))
	for _, m := range matches {
		value := strings.TrimSuffix(strings.ReplaceAll(m, ",", "."), "%")
		if strings.HasPrefix(value, ".") {
			value = "0" + value
		}
		rate, err := decimal.NewFromString(value)
		if err != nil {
			continue
		}
		rates = append(rates, rate)
	}
	return rates
}

// StripRates removes all rate substrings from a line, leaving whatever a
// scheme name would be.
func StripRates(text string) string {
	return strings.TrimSpace(ratePattern.ReplaceAllString(text, ""))
}

// footerMarkers flag header repeats and summary rows that must never be
// treated as scheme names.
var footerMarkers = []string{"scheme name", "total", "aggregate"}

// IsFooterLine reports whether a normalized line is a header repeat or a
// summary row.
func IsFooterLine(line string) bool {
	for _, marker := range footerMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
