package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"chipfolio/internal/common"
	"chipfolio/internal/model"
	"chipfolio/internal/service"

	"github.com/schollz/progressbar/v3"
)

// Neutral defaults applied at load time for optional fields. Scoring never
// has to deal with missing values.
const (
	defaultAdvantage  = 3
	defaultVolatility = 3
	defaultBonusFreq  = 0.2
)

// DefaultTTL bounds how long a fetched catalog is reused before re-fetching.
const DefaultTTL = time.Hour

// Loader fetches and caches the game catalog. The cache holds at most one
// entry (the whole catalog, keyed implicitly by latest fetch) and expires
// by age only.
type Loader struct {
	fetchedAt time.Time
	client    *http.Client
	progress  io.Writer
	url       string
	cached    []model.Game
	ttl       time.Duration
	mu        sync.Mutex
}

var _ service.CatalogSource = (*Loader)(nil)

// Option configures a Loader.
type Option func(*Loader)

// WithTTL overrides the cache expiry window.
func WithTTL(ttl time.Duration) Option {
	return func(l *Loader) { l.ttl = ttl }
}

// WithHTTPClient overrides the HTTP client used for fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) { l.client = client }
}

// WithProgress renders a row-normalization progress bar to w during fetches.
func WithProgress(w io.Writer) Option {
	return func(l *Loader) { l.progress = w }
}

// NewLoader creates a catalog loader for the given URL.
func NewLoader(url string, opts ...Option) *Loader {
	l := &Loader{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
		ttl:    DefaultTTL,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the catalog, fetching it only when the cached copy has aged
// out. A failed fetch or an unusable header yields an error and an empty
// result, never a panic.
func (l *Loader) Load(ctx context.Context) ([]model.Game, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cached != nil && time.Since(l.fetchedAt) < l.ttl {
		return l.cached, nil
	}

	games, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	l.cached = games
	l.fetchedAt = time.Now()
	return games, nil
}

// Invalidate drops the cached catalog so the next Load fetches fresh data.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cached = nil
	l.fetchedAt = time.Time{}
}

func (l *Loader) fetch(ctx context.Context) ([]model.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrCatalogUnavailable, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrCatalogUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", common.ErrCatalogUnavailable, resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; they are dropped below
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrCatalogUnavailable, err)
	}

	return l.parse(records)
}

func (l *Loader) parse(records [][]string) ([]model.Game, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty response", common.ErrCatalogUnavailable)
	}

	columns, err := resolveColumns(records[0])
	if err != nil {
		return nil, err
	}

	rows := records[1:]
	var bar *progressbar.ProgressBar
	if l.progress != nil {
		bar = progressbar.NewOptions(len(rows),
			progressbar.OptionSetWriter(l.progress),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Normalizing catalog..."),
		)
	}

	games := make([]model.Game, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if bar != nil {
			_ = bar.Add(1)
		}

		game, ok := parseRow(row, columns)
		if !ok {
			dropped++
			continue
		}
		games = append(games, game)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if dropped > 0 {
		slog.Warn("dropped catalog rows missing required fields",
			"dropped", dropped, "kept", len(games))
	}

	return games, nil
}

// parseRow maps one record onto a Game. Rows that cannot resolve the
// required payout rate and minimum bet are dropped rather than defaulted.
func parseRow(row []string, columns map[string]int) (model.Game, bool) {
	rtp, ok := parseFloatField(row, columns, fieldRTP)
	if !ok {
		return model.Game{}, false
	}
	minBet, ok := parseFloatField(row, columns, fieldMinBet)
	if !ok {
		return model.Game{}, false
	}

	game := model.Game{
		Name:       stringField(row, columns, fieldName),
		Category:   stringField(row, columns, fieldCategory),
		RTP:        rtp,
		MinBet:     minBet,
		Advantage:  defaultAdvantage,
		Volatility: defaultVolatility,
		BonusFreq:  defaultBonusFreq,
		Tip:        stringField(row, columns, fieldTip),
	}

	if v, ok := parseIntField(row, columns, fieldAdvantage); ok {
		game.Advantage = clampRating(v)
	}
	if v, ok := parseIntField(row, columns, fieldVolatility); ok {
		game.Volatility = clampRating(v)
	}
	if v, ok := parseFloatField(row, columns, fieldBonusFreq); ok {
		game.BonusFreq = v
	}

	return game, true
}

// clampRating forces a parsed rating onto the 1-5 scale.
func clampRating(v int) int {
	if v < model.MinRating {
		return model.MinRating
	}
	if v > model.MaxRating {
		return model.MaxRating
	}
	return v
}

func stringField(row []string, columns map[string]int, field string) string {
	i, ok := columns[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseFloatField(row []string, columns map[string]int, field string) (float64, bool) {
	raw := strings.TrimSuffix(stringField(row, columns, field), "%")
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseIntField(row []string, columns map[string]int, field string) (int, bool) {
	raw := stringField(row, columns, field)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
