// Package catalog loads the external game catalog from a delimited-text
// source over HTTP and maps its heterogeneous columns onto Game records.
package catalog

import (
	"fmt"
	"strings"

	"chipfolio/internal/common"
)

// Canonical field names after header mapping.
const (
	fieldName       = "name"
	fieldCategory   = "category"
	fieldRTP        = "rtp"
	fieldMinBet     = "min_bet"
	fieldAdvantage  = "advantage"
	fieldVolatility = "volatility"
	fieldBonusFreq  = "bonus_freq"
	fieldTip        = "tip"
)

// fieldSynonyms is the explicit, ordered mapping from canonical fields to the
// header spellings accepted for each. Resolution happens once at ingestion;
// rows are never re-mapped afterwards.
var fieldSynonyms = []struct {
	canonical string
	synonyms  []string
}{
	{fieldName, []string{"name", "game", "game_name", "title"}},
	{fieldCategory, []string{"category", "type", "game_type"}},
	{fieldRTP, []string{"rtp", "expected_rtp", "payout", "payout_rate", "return_to_player"}},
	{fieldMinBet, []string{"min_bet", "minimum_bet", "min_wager"}},
	{fieldAdvantage, []string{"advantage", "advantage_rating", "advantage_play", "ap_rating"}},
	{fieldVolatility, []string{"volatility", "volatility_rating", "variance"}},
	{fieldBonusFreq, []string{"bonus_freq", "bonus_frequency", "feature_freq", "feature_frequency"}},
	{fieldTip, []string{"tip", "tips", "strategy", "notes"}},
}

// Fields that must resolve for the catalog to be usable at all.
var requiredFields = []string{fieldRTP, fieldMinBet}

// normalizeHeader lower-cases a raw column name and collapses every run of
// non-alphanumeric characters to a single underscore.
func normalizeHeader(raw string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// resolveColumns maps a raw header row to canonical field column indexes.
// Unresolved optional fields are simply absent; unresolved required fields
// are a load failure.
func resolveColumns(header []string) (map[string]int, error) {
	normalized := make([]string, len(header))
	for i, raw := range header {
		normalized[i] = normalizeHeader(raw)
	}

	columns := make(map[string]int)
	for _, field := range fieldSynonyms {
		for _, synonym := range field.synonyms {
			found := false
			for i, name := range normalized {
				if name == synonym {
					columns[field.canonical] = i
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}

	var missing []string
	for _, required := range requiredFields {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrMissingColumns, strings.Join(missing, ", "))
	}

	return columns, nil
}
