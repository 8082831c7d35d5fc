// Package scoring ranks catalog games for a conservative casual player.
package scoring

import (
	"sort"

	"chipfolio/internal/model"
)

// Fixed scoring weights. These are deliberately constants, not configuration:
// the ranking is a single opinionated formula, not a tunable model.
const (
	WeightRTP       = 0.5
	WeightBonusFreq = 0.2
	WeightAdvantage = 0.2
	WeightCalmness  = 0.1

	// Volatility is inverted against this base so that lower volatility
	// contributes positively to the score.
	volatilityInversionBase = 6
)

// Score computes the ranking score for a single game.
func Score(g model.Game) float64 {
	return g.RTP*WeightRTP +
		g.BonusFreq*WeightBonusFreq +
		float64(g.Advantage)*WeightAdvantage +
		float64(volatilityInversionBase-g.Volatility)*WeightCalmness
}

// Rank returns the games passing all active filter predicates, each augmented
// with its score, sorted descending by score. The sort is stable: ties keep
// the original catalog order.
func Rank(games []model.Game, filter Filter) []model.ScoredGame {
	ranked := make([]model.ScoredGame, 0, len(games))
	for _, g := range games {
		if !filter.Matches(g) {
			continue
		}
		ranked = append(ranked, model.ScoredGame{Game: g, Score: Score(g)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// PlayOrder is the recommended order of play: a plain head slice of the
// ranked list, sized to the trip's planned session count.
func PlayOrder(ranked []model.ScoredGame, n int) []model.ScoredGame {
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
