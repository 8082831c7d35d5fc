package cli

import (
	"strings"
	"testing"

	"chipfolio/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 0, want: "$0.00"},
		{amount: 12.5, want: "$12.50"},
		{amount: -60, want: "-$60.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.amount))
	}
}

func TestFormatProfit(t *testing.T) {
	assert.Equal(t, "+$50.00", FormatProfit(50))
	assert.Equal(t, "-$60.00", FormatProfit(-60))
	assert.Equal(t, "$0.00", FormatProfit(0))
}

func TestRenderGameTable(t *testing.T) {
	games := []model.ScoredGame{
		{Game: model.Game{Name: "Jacks or Better", Category: "video poker", RTP: 99.5, MinBet: 1.25, Advantage: 4, Volatility: 2}, Score: 51.21},
	}

	out := RenderGameTable(games)
	assert.Contains(t, out, "Jacks or Better")
	assert.Contains(t, out, "video poker")
	assert.Contains(t, out, "51.21")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a ridicu...", truncate("a ridiculously long game name", 11))
	assert.True(t, len(truncate(strings.Repeat("x", 50), 14)) == 14)
}
