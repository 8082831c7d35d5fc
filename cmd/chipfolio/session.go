package main

import (
	"fmt"
	"log/slog"
	"time"

	"chipfolio/internal/bankroll"
	"chipfolio/internal/cli"
	"chipfolio/internal/model"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record and review play sessions",
	}

	cmd.AddCommand(sessionAddCmd())
	cmd.AddCommand(sessionListCmd())

	return cmd
}

func sessionAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a session's outcome",
		Long: `Record one session: the game, money put in, and money taken out.

Profit is derived from the two amounts. The recorded amounts are accepted
as-is; the budget suggestion is advisory and never a constraint.`,
		RunE: runSessionAdd,
	}

	cmd.Flags().String("game", "", "game played (required)")
	cmd.Flags().Float64("in", 0, "money in (required)")
	cmd.Flags().Float64("out", 0, "money out (required)")
	cmd.Flags().String("date", "", "session date, YYYY-MM-DD (default: today)")
	cmd.Flags().String("notes", "", "free-text notes")
	cmd.Flags().Int64("trip", 0, "trip ID (default: latest trip)")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runSessionAdd(cmd *cobra.Command, _ []string) error {
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

	date := time.Now()
	if raw, _ := cmd.Flags().GetString("date"); raw != "" {
		date, err = time.Parse(dateLayout, raw)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", raw, err)
		}
	}

	game, _ := cmd.Flags().GetString("game")
	moneyIn, _ := cmd.Flags().GetFloat64("in")
	moneyOut, _ := cmd.Flags().GetFloat64("out")
	notes, _ := cmd.Flags().GetString("notes")

	session, err := store.RecordSession(ctx, &model.Session{
		TripID:   trip.ID,
		Date:     date,
		Game:     game,
		MoneyIn:  moneyIn,
		MoneyOut: moneyOut,
		Notes:    notes,
	})
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}

	currentBankroll, err := store.BankrollForTrip(ctx, trip.ID)
	if err != nil {
		return fmt.Errorf("failed to compute bankroll: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Session recorded: %s %s", session.Game, cli.FormatProfit(session.Profit())))) //nolint:forbidigo // User-facing output
	fmt.Printf("  Trip %d bankroll: %s\n", trip.ID, cli.FormatCurrency(currentBankroll))                                     //nolint:forbidigo // User-facing output

	return nil
}

func sessionListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a trip's sessions",
		RunE:  runSessionList,
	}

	cmd.Flags().Int64("trip", 0, "trip ID (default: latest trip)")

	return cmd
}

func runSessionList(cmd *cobra.Command, _ []string) error {
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
	if len(sessions) == 0 {
		fmt.Println(cli.FormatInfo(fmt.Sprintf("No sessions on trip %d yet", trip.ID))) //nolint:forbidigo // User-facing output
		return nil
	}

	stats := bankroll.ComputeStats(sessions)

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Trip %d — %s", trip.ID, trip.Casino))) //nolint:forbidigo // User-facing output
	for _, session := range sessions {
		fmt.Printf("  %s  %-24s in %9s  out %9s  %s\n", //nolint:forbidigo // User-facing output
			session.Date.Format(dateLayout), session.Game,
			cli.FormatCurrency(session.MoneyIn), cli.FormatCurrency(session.MoneyOut),
			cli.FormatProfit(session.Profit()))
	}
	fmt.Printf("\n  %d sessions, net %s\n", stats.Sessions, cli.FormatProfit(stats.Profit)) //nolint:forbidigo // User-facing output

	return nil
}
