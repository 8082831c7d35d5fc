package bankroll

import "math"

// The advisory signals look at a short trailing window of session profits.
const (
	signalWindow      = 5
	minSignalSessions = 3
)

// Signal thresholds.
const (
	volatilityDeRisk = 0.7
	volatilityPress  = 1.3
	streakHotFactor  = 1.2
	streakColdFactor = 0.8
	neutralFactor    = 1.0
	hotWinRate       = 0.7
	coldWinRate      = 0.3
	noisyStdevRatio  = 1.5
	steadyStdevRatio = 0.8
)

// VolatilityAdjustment is an advisory multiplier derived from the spread of
// recent results: de-risk when results are noisy and losing, press when they
// are steady and winning. It is displayed alongside the budget suggestion
// and deliberately never folded into it.
func VolatilityAdjustment(profits []float64) float64 {
	if len(profits) < minSignalSessions {
		return neutralFactor
	}

	recent := lastN(profits, signalWindow)
	m := mean(recent)
	sd := stddev(recent, m)

	if sd > math.Abs(m)*noisyStdevRatio && m < 0 {
		return volatilityDeRisk
	}
	if sd < math.Abs(m)*steadyStdevRatio && m > 0 {
		return volatilityPress
	}
	return neutralFactor
}

// WinStreakFactor is an advisory multiplier derived from the recent win rate.
// Like VolatilityAdjustment it is display-only.
func WinStreakFactor(profits []float64) float64 {
	if len(profits) < minSignalSessions {
		return neutralFactor
	}

	recent := lastN(profits, signalWindow)
	wins := 0
	for _, p := range recent {
		if p > 0 {
			wins++
		}
	}

	rate := float64(wins) / float64(len(recent))
	if rate > hotWinRate {
		return streakHotFactor
	}
	if rate < coldWinRate {
		return streakColdFactor
	}
	return neutralFactor
}

func lastN(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the population standard deviation of values around m.
func stddev(values []float64, m float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		diff := v - m
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)))
}
