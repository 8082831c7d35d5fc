package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Profit(t *testing.T) {
	tests := []struct {
		name     string
		moneyIn  float64
		moneyOut float64
		want     float64
	}{
		{name: "winning session", moneyIn: 100, moneyOut: 150, want: 50},
		{name: "losing session", moneyIn: 80, moneyOut: 20, want: -60},
		{name: "breakeven", moneyIn: 100, moneyOut: 100, want: 0},
		{name: "free play", moneyIn: 0, moneyOut: 25, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{MoneyIn: tt.moneyIn, MoneyOut: tt.moneyOut}
			assert.InDelta(t, tt.want, s.Profit(), 1e-9)
		})
	}
}
