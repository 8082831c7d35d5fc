package model

import "time"

// Session is one play instance within a trip: money wagered in, money
// returned out. Appended to the ledger exactly once and never mutated.
type Session struct {
	Date     time.Time
	Ref      string // unique reference assigned at record time
	Game     string
	Notes    string
	ID       int64 // insertion-ordered ledger sequence
	TripID   int64
	MoneyIn  float64
	MoneyOut float64
}

// Profit is always derived from money-out minus money-in. It is deliberately
// not a stored field so it cannot drift from its inputs.
func (s *Session) Profit() float64 {
	return s.MoneyOut - s.MoneyIn
}
