// Package bankroll computes session budgets and trip analytics from the
// ledger. Everything here is a pure function over in-memory records.
package bankroll

import "math"

// Budget heuristics for a casual player on a bounded trip.
const (
	// baseSessionFraction is the share of the starting bankroll allotted
	// to one session before any adjustment.
	baseSessionFraction = 0.20

	// profitGrowthRate is how much of the trip's net profit is added to
	// the base budget when the trip is ahead.
	profitGrowthRate = 0.3

	// maxSessionBudget caps absolute exposure per session no matter how
	// well the trip is going.
	maxSessionBudget = 500.0
)

// SuggestBudget computes the advisory budget for the next session.
//
// When the trip is net positive the budget grows with profit but never past
// the fixed ceiling. When flat or down it never exceeds an even split of the
// remaining funds over the remaining planned sessions, so a drawdown cannot
// be chased with an oversized bet. The suggestion is advisory only: the
// ledger accepts any recorded amounts regardless.
func SuggestBudget(startingBankroll float64, plannedSessions int, profits []float64) float64 {
	current := startingBankroll
	for _, p := range profits {
		current += p
	}

	remaining := plannedSessions - len(profits)
	if remaining < 1 {
		remaining = 1
	}

	base := startingBankroll * baseSessionFraction

	if current > startingBankroll {
		return math.Min(base+(current-startingBankroll)*profitGrowthRate, maxSessionBudget)
	}
	return math.Min(base, current/float64(remaining))
}
