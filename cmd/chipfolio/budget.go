package main

import (
	"fmt"
	"log/slog"

	"chipfolio/internal/bankroll"
	"chipfolio/internal/cli"

	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Suggest a budget for the next session",
		Long: `Suggest how much to bring to the next session, based on the trip's
starting bankroll, how it has gone so far, and how many sessions remain.

The volatility and streak signals are shown for context only; they are not
multiplied into the suggestion.`,
		RunE: runBudget,
	}

	cmd.Flags().Int64("trip", 0, "trip ID (default: latest trip)")

	return cmd
}

func runBudget(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	tripID, _ := cmd.Flags().GetInt64("trip")
	trip, err := resolveTrip(ctx, store, tripID)
	if err != nil {
		return err
	}

	sessions, err := store.SessionsForTrip(ctx, trip.ID)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}
	currentBankroll, err := store.BankrollForTrip(ctx, trip.ID)
	if err != nil {
		return fmt.Errorf("failed to compute bankroll: %w", err)
	}

	profits := bankroll.Profits(sessions)
	suggestion := bankroll.SuggestBudget(trip.StartingBankroll, trip.PlannedSessions, profits)
	volatility := bankroll.VolatilityAdjustment(profits)
	streak := bankroll.WinStreakFactor(profits)

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Next session budget — trip %d", trip.ID)))            //nolint:forbidigo // User-facing output
	fmt.Printf("  Suggested budget: %s\n", cli.FormatCurrency(suggestion))                         //nolint:forbidigo // User-facing output
	fmt.Printf("  Bankroll:         %s of %s starting\n",                                          //nolint:forbidigo // User-facing output
		cli.FormatCurrency(currentBankroll), cli.FormatCurrency(trip.StartingBankroll))
	fmt.Printf("  Sessions played:  %d of %d planned\n", len(sessions), trip.PlannedSessions)      //nolint:forbidigo // User-facing output
	fmt.Println()                                                                                  //nolint:forbidigo // User-facing output
	fmt.Printf("  Volatility signal: %s\n", describeSignal(volatility))                            //nolint:forbidigo // User-facing output
	fmt.Printf("  Streak signal:     %s\n", describeSignal(streak))                                //nolint:forbidigo // User-facing output

	return nil
}

func describeSignal(factor float64) string {
	switch {
	case factor > 1.0:
		return cli.SuccessStyle.Render(fmt.Sprintf("%.1fx — running well, room to press", factor))
	case factor < 1.0:
		return cli.WarningStyle.Render(fmt.Sprintf("%.1fx — running rough, consider easing off", factor))
	default:
		return cli.SubtleStyle.Render("1.0x — neutral")
	}
}
