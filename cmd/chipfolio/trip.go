package main

import (
	"fmt"
	"log/slog"

	"chipfolio/internal/bankroll"
	"chipfolio/internal/cli"

	"github.com/spf13/cobra"
)

func tripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Manage casino trips",
	}

	cmd.AddCommand(tripStartCmd())
	cmd.AddCommand(tripListCmd())
	cmd.AddCommand(tripStatsCmd())

	return cmd
}

func tripStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new trip",
		Long: `Start a new trip with its own starting bankroll and planned session count.

Prior trips' sessions stay in the ledger; commands simply default to the
newest trip.`,
		RunE: runTripStart,
	}

	cmd.Flags().String("casino", "", "casino name (required)")
	cmd.Flags().Float64("bankroll", 0, "starting bankroll (required)")
	cmd.Flags().Int("sessions", 0, "planned number of sessions (required)")
	_ = cmd.MarkFlagRequired("casino")
	_ = cmd.MarkFlagRequired("bankroll")
	_ = cmd.MarkFlagRequired("sessions")

	return cmd
}

func runTripStart(cmd *cobra.Command, _ []string) error {
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

	casino, _ := cmd.Flags().GetString("casino")
	startingBankroll, _ := cmd.Flags().GetFloat64("bankroll")
	plannedSessions, _ := cmd.Flags().GetInt("sessions")

	trip, err := store.StartTrip(ctx, casino, startingBankroll, plannedSessions)
	if err != nil {
		return fmt.Errorf("failed to start trip: %w", err)
	}

	firstBudget := bankroll.SuggestBudget(trip.StartingBankroll, trip.PlannedSessions, nil)

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Trip %d started at %s", trip.ID, trip.Casino))) //nolint:forbidigo // User-facing output
	fmt.Printf("  Starting bankroll:    %s\n", cli.FormatCurrency(trip.StartingBankroll))      //nolint:forbidigo // User-facing output
	fmt.Printf("  Planned sessions:     %d\n", trip.PlannedSessions)                           //nolint:forbidigo // User-facing output
	fmt.Printf("  First session budget: %s\n", cli.FormatCurrency(firstBudget))                //nolint:forbidigo // User-facing output

	return nil
}

func tripListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all trips",
		RunE:  runTripList,
	}
}

func runTripList(cmd *cobra.Command, _ []string) error {
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

	trips, err := store.ListTrips(ctx)
	if err != nil {
		return fmt.Errorf("failed to list trips: %w", err)
	}
	if len(trips) == 0 {
		fmt.Println(cli.FormatInfo("No trips yet; start one with 'chipfolio trip start'")) //nolint:forbidigo // User-facing output
		return nil
	}

	fmt.Println(cli.FormatTitle("Trips")) //nolint:forbidigo // User-facing output
	for _, trip := range trips {
		currentBankroll, err := store.BankrollForTrip(ctx, trip.ID)
		if err != nil {
			return fmt.Errorf("failed to compute bankroll for trip %d: %w", trip.ID, err)
		}
		fmt.Printf("  [%d] %-20s started %s  bankroll %s -> %s\n", //nolint:forbidigo // User-facing output
			trip.ID, trip.Casino, trip.CreatedAt.Format("2006-01-02"),
			cli.FormatCurrency(trip.StartingBankroll), cli.FormatCurrency(currentBankroll))
	}

	return nil
}

func tripStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show trip analytics",
		RunE:  runTripStats,
	}

	cmd.Flags().Int64("trip", 0, "trip ID (default: latest trip)")

	return cmd
}

func runTripStats(cmd *cobra.Command, _ []string) error {
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

	stats := bankroll.ComputeStats(sessions)

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Trip %d — %s", trip.ID, trip.Casino)))                     //nolint:forbidigo // User-facing output
	fmt.Printf("  Sessions:        %d of %d planned\n", stats.Sessions, trip.PlannedSessions)           //nolint:forbidigo // User-facing output
	fmt.Printf("  Bankroll:        %s (started at %s)\n",                                               //nolint:forbidigo // User-facing output
		cli.FormatCurrency(currentBankroll), cli.FormatCurrency(trip.StartingBankroll))
	fmt.Printf("  Invested:        %s\n", cli.FormatCurrency(stats.Invested))                           //nolint:forbidigo // User-facing output
	fmt.Printf("  Profit:          %s (ROI %.1f%%)\n", cli.FormatProfit(stats.Profit), stats.ROI)       //nolint:forbidigo // User-facing output
	fmt.Printf("  Avg per session: %s\n", cli.FormatProfit(stats.AvgProfit))                            //nolint:forbidigo // User-facing output
	fmt.Printf("  Win rate:        %.0f%%\n", stats.WinRate*100)                                        //nolint:forbidigo // User-facing output
	fmt.Printf("  Worst session:   %s\n", cli.FormatProfit(stats.MaxDrawdown))                          //nolint:forbidigo // User-facing output

	return nil
}
