// Package model defines the core domain types shared across the application.
package model

// Rating bounds for the 1-5 heuristic scales.
const (
	MinRating = 1
	MaxRating = 5
)

// Game is a single catalog entry describing a casino game.
// Records are loaded read-only from the external catalog and never mutated;
// derived values (the score) are carried alongside, not written back.
type Game struct {
	Name       string
	Category   string
	RTP        float64 // long-run payout rate, percentage 0-100
	MinBet     float64
	Advantage  int     // advantage-play rating, 1-5
	Volatility int     // payout variance rating, 1-5 (1 = frequent small wins)
	BonusFreq  float64 // bonus/feature frequency, fraction 0-1
	Tip        string
}

// ScoredGame pairs a catalog entry with its computed ranking score.
type ScoredGame struct {
	Game
	Score float64
}
