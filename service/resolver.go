package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/PraharshPatni13/brokerage-filler/config"
	"github.com/PraharshPatni13/brokerage-filler/dto"
	"github.com/PraharshPatni13/brokerage-filler/utils"
)

// SimilarityMatcher scores a name against candidate registry keys.
type SimilarityMatcher interface {
	BestMatch(target string, candidates []string) (match string, score int)
}

// RateResolver answers (scheme name, tier label) lookups against a finished
// registry: exact normalized-name lookup first, fuzzy matching as a gated
// fallback. An unrecognized tier label or a below-threshold match yields no
// rate rather than a guess.
type RateResolver struct {
	registry  dto.SchemeRegistry
	aliases   map[string][]dto.Tier
	matcher   SimilarityMatcher
	threshold int
}

func NewRateResolver(registry dto.SchemeRegistry, cfg *config.Config, matcher SimilarityMatcher) *RateResolver {
	return &RateResolver{
		registry:  registry,
		aliases:   cfg.TierAliases,
		matcher:   matcher,
		threshold: cfg.FuzzyThreshold,
	}
}

// Resolve returns the rate for a raw scheme name and tier label, or false
// when no rate can be resolved.
func (r *RateResolver) Resolve(schemeName, tierLabel string) (decimal.Decimal, bool) {
	scheme := utils.Normalize(schemeName)
	tiers, ok := r.aliases[strings.ToUpper(strings.TrimSpace(tierLabel))]
	if !ok || scheme == "" {
		return decimal.Decimal{}, false
	}

	if rates, ok := r.registry[scheme]; ok {
		return firstRate(rates, tiers)
	}

	keys := r.registry.Keys()
	if len(keys) == 0 {
		return decimal.Decimal{}, false
	}
	match, score := r.matcher.BestMatch(scheme, keys)
	if match == "" || score < r.threshold {
		return decimal.Decimal{}, false
	}
	return firstRate(r.registry[match], tiers)
}

// firstRate scans the resolved tiers in order and returns the first rate
// that was actually extracted.
func firstRate(rates dto.SchemeRates, tiers []dto.Tier) (decimal.Decimal, bool) {
	for _, tier := range tiers {
		if rate, ok := rates[tier]; ok {
			return rate, true
		}
	}
	return decimal.Decimal{}, false
}
