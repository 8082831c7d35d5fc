package cli

import (
	"fmt"
	"strings"

	"chipfolio/internal/model"
)

// FormatCurrency renders a dollar amount with sign.
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatProfit renders a profit figure with an explicit plus sign for gains.
func FormatProfit(amount float64) string {
	if amount > 0 {
		return "+" + FormatCurrency(amount)
	}
	return FormatCurrency(amount)
}

// RenderGameTable renders ranked games as an aligned table for the terminal.
func RenderGameTable(games []model.ScoredGame) string {
	var b strings.Builder

	header := fmt.Sprintf("%-4s %-28s %-14s %7s %8s %4s %4s %7s",
		"#", "Game", "Category", "RTP", "Min Bet", "Adv", "Vol", "Score")
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	for i, g := range games {
		row := fmt.Sprintf("%-4d %-28s %-14s %6.1f%% %8s %4d %4d %7.2f",
			i+1, truncate(g.Name, 28), truncate(g.Category, 14),
			g.RTP, FormatCurrency(g.MinBet), g.Advantage, g.Volatility, g.Score)
		b.WriteString(row)
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
