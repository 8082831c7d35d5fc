package catalog

import (
	"errors"
	"testing"

	"chipfolio/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "RTP", want: "rtp"},
		{raw: "Expected RTP", want: "expected_rtp"},
		{raw: "Min. Bet ($)", want: "min_bet"},
		{raw: "  Game Name  ", want: "game_name"},
		{raw: "bonus-frequency", want: "bonus_frequency"},
		{raw: "Advantage/Play!!Rating", want: "advantage_play_rating"},
		{raw: "___", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeHeader(tt.raw))
		})
	}
}

func TestResolveColumns(t *testing.T) {
	header := []string{"Game Name", "Type", "Expected RTP", "Minimum Bet", "Volatility", "Bonus Frequency"}

	columns, err := resolveColumns(header)
	require.NoError(t, err)

	assert.Equal(t, 0, columns[fieldName])
	assert.Equal(t, 1, columns[fieldCategory])
	assert.Equal(t, 2, columns[fieldRTP])
	assert.Equal(t, 3, columns[fieldMinBet])
	assert.Equal(t, 4, columns[fieldVolatility])
	assert.Equal(t, 5, columns[fieldBonusFreq])

	_, hasAdvantage := columns[fieldAdvantage]
	assert.False(t, hasAdvantage, "unresolved optional fields stay absent")
}

func TestResolveColumns_SynonymPriority(t *testing.T) {
	// When both a primary spelling and a synonym appear, the first synonym
	// in the accepted list wins.
	header := []string{"payout_rate", "rtp", "min_bet"}

	columns, err := resolveColumns(header)
	require.NoError(t, err)
	assert.Equal(t, 1, columns[fieldRTP])
}

func TestResolveColumns_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		header []string
	}{
		{name: "no rtp", header: []string{"name", "min_bet"}},
		{name: "no min bet", header: []string{"name", "rtp"}},
		{name: "neither", header: []string{"name", "category"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveColumns(tt.header)
			assert.True(t, errors.Is(err, common.ErrMissingColumns))
		})
	}
}
