package model

import "time"

// Trip is one bounded visit to a casino: its own starting bankroll and a
// planned number of sessions. Immutable once started; a new trip gets a new
// identifier and prior trips' sessions stay in the ledger, filtered by ID.
type Trip struct {
	CreatedAt        time.Time
	Casino           string
	ID               int64
	StartingBankroll float64
	PlannedSessions  int
}

// TripStats are the derived analytics for one trip's sessions.
// Everything here is recomputed from the ledger on demand.
type TripStats struct {
	Sessions    int
	Invested    float64
	Profit      float64
	ROI         float64 // profit / invested * 100, 0 when invested is 0
	AvgProfit   float64
	WinRate     float64 // fraction of sessions with positive profit
	MaxDrawdown float64 // worst single-session profit, not peak-to-trough
}
