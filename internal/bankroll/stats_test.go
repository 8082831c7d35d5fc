package bankroll

import (
	"testing"
	"time"

	"chipfolio/internal/model"

	"github.com/stretchr/testify/assert"
)

func session(game string, in, out float64) model.Session {
	return model.Session{
		Date:     time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC),
		Game:     game,
		MoneyIn:  in,
		MoneyOut: out,
	}
}

func TestComputeStats_EmptyLedger(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.Sessions)
	assert.Zero(t, stats.Invested)
	assert.Zero(t, stats.Profit)
	assert.Zero(t, stats.ROI, "ROI is defined as 0 when nothing was invested")
	assert.Zero(t, stats.WinRate)
	assert.Zero(t, stats.MaxDrawdown)
}

func TestComputeStats(t *testing.T) {
	sessions := []model.Session{
		session("Blackjack", 100, 150),   // +50
		session("Slots", 80, 20),         // -60
		session("Video Poker", 120, 120), // 0
		session("Craps", 100, 130),       // +30
	}

	stats := ComputeStats(sessions)

	assert.Equal(t, 4, stats.Sessions)
	assert.InDelta(t, 400, stats.Invested, 1e-9)
	assert.InDelta(t, 20, stats.Profit, 1e-9)
	assert.InDelta(t, 5, stats.ROI, 1e-9) // 20/400*100
	assert.InDelta(t, 5, stats.AvgProfit, 1e-9)
	assert.InDelta(t, 0.5, stats.WinRate, 1e-9) // breakeven is not a win
	assert.InDelta(t, -60, stats.MaxDrawdown, 1e-9)
}

func TestComputeStats_DrawdownIsWorstSingleSession(t *testing.T) {
	// Consecutive small losses sum past -60, but drawdown reports the
	// single worst session only.
	sessions := []model.Session{
		session("Slots", 50, 10),  // -40
		session("Slots", 50, 15),  // -35
		session("Slots", 100, 40), // -60
		session("Slots", 50, 200), // +150
	}

	stats := ComputeStats(sessions)
	assert.InDelta(t, -60, stats.MaxDrawdown, 1e-9)
}

func TestComputeStats_AllWinning(t *testing.T) {
	sessions := []model.Session{
		session("Blackjack", 100, 120), // +20
		session("Blackjack", 100, 105), // +5
	}

	stats := ComputeStats(sessions)
	assert.InDelta(t, 1.0, stats.WinRate, 1e-9)
	// With no losing session, the "worst" session is the smallest win.
	assert.InDelta(t, 5, stats.MaxDrawdown, 1e-9)
}

func TestComputeStats_ZeroInvested(t *testing.T) {
	sessions := []model.Session{
		session("Freeplay", 0, 25),
	}

	stats := ComputeStats(sessions)
	assert.InDelta(t, 25, stats.Profit, 1e-9)
	assert.Zero(t, stats.ROI)
}

func TestProfits(t *testing.T) {
	sessions := []model.Session{
		session("Blackjack", 100, 150),
		session("Slots", 80, 20),
	}

	assert.Equal(t, []float64{50, -60}, Profits(sessions))
	assert.Empty(t, Profits(nil))
}
