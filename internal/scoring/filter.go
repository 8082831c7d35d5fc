package scoring

import (
	"fmt"
	"strings"

	"chipfolio/internal/model"
)

// Tier buckets the 1-5 rating scales into coarse filter bands.
type Tier string

// Tier values. TierAny (the zero value) disables the predicate.
const (
	TierAny    Tier = ""
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// ParseTier converts user input into a Tier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return TierAny, nil
	case "low":
		return TierLow, nil
	case "medium", "mid":
		return TierMedium, nil
	case "high":
		return TierHigh, nil
	default:
		return TierAny, fmt.Errorf("invalid tier %q (expected low, medium, or high)", s)
	}
}

func (t Tier) matches(rating int) bool {
	switch t {
	case TierLow:
		return rating <= 2
	case TierMedium:
		return rating == 3
	case TierHigh:
		return rating >= 4
	default:
		return true
	}
}

// Filter is the set of predicates applied before scoring. Nil numeric fields
// and zero-value string/tier fields leave that predicate inactive.
type Filter struct {
	MinRTP         *float64
	MaxMinBet      *float64
	Category       string
	NameMatch      string
	AdvantageTier  Tier
	VolatilityTier Tier
}

// Matches reports whether the game passes every active predicate.
func (f Filter) Matches(g model.Game) bool {
	if f.MinRTP != nil && g.RTP < *f.MinRTP {
		return false
	}
	if f.MaxMinBet != nil && g.MinBet > *f.MaxMinBet {
		return false
	}
	if f.Category != "" && !strings.EqualFold(g.Category, f.Category) {
		return false
	}
	if f.NameMatch != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(f.NameMatch)) {
		return false
	}
	if !f.AdvantageTier.matches(g.Advantage) {
		return false
	}
	if !f.VolatilityTier.matches(g.Volatility) {
		return false
	}
	return true
}
