package bankroll

import "chipfolio/internal/model"

// ComputeStats derives the trip analytics from its session records.
// An empty ledger yields zero values throughout, never a fault.
func ComputeStats(sessions []model.Session) model.TripStats {
	stats := model.TripStats{Sessions: len(sessions)}
	if len(sessions) == 0 {
		return stats
	}

	wins := 0
	for i := range sessions {
		profit := sessions[i].Profit()
		stats.Invested += sessions[i].MoneyIn
		stats.Profit += profit
		if profit > 0 {
			wins++
		}
		// Worst single session, not peak-to-trough.
		if i == 0 || profit < stats.MaxDrawdown {
			stats.MaxDrawdown = profit
		}
	}

	if stats.Invested != 0 {
		stats.ROI = stats.Profit / stats.Invested * 100
	}
	stats.AvgProfit = stats.Profit / float64(len(sessions))
	stats.WinRate = float64(wins) / float64(len(sessions))

	return stats
}

// Profits extracts the per-session profit series in ledger order, the form
// the allocator and advisory signals consume.
func Profits(sessions []model.Session) []float64 {
	profits := make([]float64, len(sessions))
	for i := range sessions {
		profits[i] = sessions[i].Profit()
	}
	return profits
}
