// Package report renders ledger and analytics exports.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"chipfolio/internal/model"
)

// WriteSessionsCSV writes the trip's session ledger as CSV. Sessions are
// written in the order given (insertion order from the ledger). encoding/csv
// handles quoting so free-text notes survive round-tripping.
func WriteSessionsCSV(w io.Writer, sessions []model.Session) error {
	writer := csv.NewWriter(w)

	header := []string{"date", "game", "money_in", "money_out", "profit", "notes"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range sessions {
		s := &sessions[i]
		record := []string{
			s.Date.Format("2006-01-02"),
			s.Game,
			fmt.Sprintf("%.2f", s.MoneyIn),
			fmt.Sprintf("%.2f", s.MoneyOut),
			fmt.Sprintf("%.2f", s.Profit()),
			s.Notes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write session row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteStatsCSV writes the trip's analytics summary as a single CSV row.
func WriteStatsCSV(w io.Writer, trip *model.Trip, stats model.TripStats, bankroll float64) error {
	writer := csv.NewWriter(w)

	header := []string{
		"casino", "starting_bankroll", "planned_sessions", "sessions_played",
		"current_bankroll", "invested", "profit", "roi_pct", "avg_profit",
		"win_rate", "max_drawdown",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := []string{
		trip.Casino,
		fmt.Sprintf("%.2f", trip.StartingBankroll),
		fmt.Sprintf("%d", trip.PlannedSessions),
		fmt.Sprintf("%d", stats.Sessions),
		fmt.Sprintf("%.2f", bankroll),
		fmt.Sprintf("%.2f", stats.Invested),
		fmt.Sprintf("%.2f", stats.Profit),
		fmt.Sprintf("%.2f", stats.ROI),
		fmt.Sprintf("%.2f", stats.AvgProfit),
		fmt.Sprintf("%.2f", stats.WinRate),
		fmt.Sprintf("%.2f", stats.MaxDrawdown),
	}
	if err := writer.Write(record); err != nil {
		return fmt.Errorf("failed to write stats row: %w", err)
	}

	writer.Flush()
	return writer.Error()
}
