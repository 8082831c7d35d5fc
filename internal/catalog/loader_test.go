package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"chipfolio/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Game Name,Type,Expected RTP,Minimum Bet,Advantage Rating,Volatility,Bonus Frequency,Tip
Jacks or Better,video poker,99.5,1.25,4,2,0.1,Always bet max coins
Penny Slot,slots,88%,0.25,,5,0.5,
Mystery Row,slots,,1.00,3,3,0.2,dropped for missing rtp
Blackjack,table,99.6,10,5,2,,Use basic strategy
`

func newCatalogServer(t *testing.T, body string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func TestLoader_Load(t *testing.T) {
	server, _ := newCatalogServer(t, sampleCSV)
	loader := NewLoader(server.URL)

	games, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 3, "row without a payout rate must be dropped")

	first := games[0]
	assert.Equal(t, "Jacks or Better", first.Name)
	assert.Equal(t, "video poker", first.Category)
	assert.InDelta(t, 99.5, first.RTP, 1e-9)
	assert.InDelta(t, 1.25, first.MinBet, 1e-9)
	assert.Equal(t, 4, first.Advantage)
	assert.Equal(t, 2, first.Volatility)
	assert.InDelta(t, 0.1, first.BonusFreq, 1e-9)
	assert.Equal(t, "Always bet max coins", first.Tip)

	// Percent suffix on RTP is tolerated; missing advantage defaults to 3.
	slot := games[1]
	assert.InDelta(t, 88, slot.RTP, 1e-9)
	assert.Equal(t, defaultAdvantage, slot.Advantage)

	// Missing bonus frequency defaults to 0.2.
	blackjack := games[2]
	assert.InDelta(t, defaultBonusFreq, blackjack.BonusFreq, 1e-9)
}

func TestLoader_ClampsRatings(t *testing.T) {
	csv := "name,rtp,min_bet,advantage,volatility\nWild Game,95,1,9,0\n"
	server, _ := newCatalogServer(t, csv)
	loader := NewLoader(server.URL)

	games, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, 5, games[0].Advantage, "ratings above the scale clamp to 5")
	assert.Equal(t, 1, games[0].Volatility, "ratings below the scale clamp to 1")
}

func TestLoader_CacheWithinTTL(t *testing.T) {
	server, hits := newCatalogServer(t, sampleCSV)
	loader := NewLoader(server.URL, WithTTL(time.Hour))
	ctx := context.Background()

	_, err := loader.Load(ctx)
	require.NoError(t, err)
	_, err = loader.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), hits.Load(), "second load within TTL must not re-fetch")
}

func TestLoader_Invalidate(t *testing.T) {
	server, hits := newCatalogServer(t, sampleCSV)
	loader := NewLoader(server.URL, WithTTL(time.Hour))
	ctx := context.Background()

	_, err := loader.Load(ctx)
	require.NoError(t, err)

	loader.Invalidate()

	_, err = loader.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestLoader_ExpiredTTLRefetches(t *testing.T) {
	server, hits := newCatalogServer(t, sampleCSV)
	loader := NewLoader(server.URL, WithTTL(time.Nanosecond))
	ctx := context.Background()

	_, err := loader.Load(ctx)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = loader.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), hits.Load())
}

func TestLoader_MissingRequiredColumns(t *testing.T) {
	server, _ := newCatalogServer(t, "Game Name,Type\nBlackjack,table\n")
	loader := NewLoader(server.URL)

	games, err := loader.Load(context.Background())
	assert.True(t, errors.Is(err, common.ErrMissingColumns))
	assert.Empty(t, games)
}

func TestLoader_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	loader := NewLoader(server.URL)
	games, err := loader.Load(context.Background())
	assert.True(t, errors.Is(err, common.ErrCatalogUnavailable))
	assert.Empty(t, games)
}

func TestLoader_Unreachable(t *testing.T) {
	loader := NewLoader("http://127.0.0.1:1/catalog.csv",
		WithHTTPClient(&http.Client{Timeout: 100 * time.Millisecond}))

	games, err := loader.Load(context.Background())
	assert.True(t, errors.Is(err, common.ErrCatalogUnavailable))
	assert.Empty(t, games)
}
