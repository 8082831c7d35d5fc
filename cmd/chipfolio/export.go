package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"chipfolio/internal/bankroll"
	"chipfolio/internal/cli"
	"chipfolio/internal/config"
	"chipfolio/internal/report"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger and analytics as CSV",
	}

	cmd.AddCommand(exportSessionsCmd())
	cmd.AddCommand(exportStatsCmd())

	return cmd
}

func exportSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Export a trip's session ledger as CSV",
		RunE:  runExportSessions,
	}

	cmd.Flags().Int64("trip", 0, "trip ID (default: latest trip)")
	cmd.Flags().StringP("output", "o", "-", "output file (default: stdout)")

	return cmd
}

func runExportSessions(cmd *cobra.Command, _ []string) error {
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

	output, _ := cmd.Flags().GetString("output")
	w, closeOutput, err := openOutput(output)
	if err != nil {
		return err
	}
	defer closeOutput()

	if err := report.WriteSessionsCSV(w, sessions); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	if output != "-" {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d sessions to %s", len(sessions), output))) //nolint:forbidigo // User-facing output
	}
	return nil
}

func exportStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Export a trip's analytics summary as CSV",
		RunE:  runExportStats,
	}

	cmd.Flags().Int64("trip", 0, "trip ID (default: latest trip)")
	cmd.Flags().StringP("output", "o", "-", "output file (default: stdout)")

	return cmd
}

func runExportStats(cmd *cobra.Command, _ []string) error {
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

	output, _ := cmd.Flags().GetString("output")
	w, closeOutput, err := openOutput(output)
	if err != nil {
		return err
	}
	defer closeOutput()

	if err := report.WriteStatsCSV(w, trip, stats, currentBankroll); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	if output != "-" {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported trip %d stats to %s", trip.ID, output))) //nolint:forbidigo // User-facing output
	}
	return nil
}

// openOutput resolves "-" to stdout, anything else to a created file.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(config.ExpandPath(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Error("failed to close output file", "error", closeErr)
		}
	}, nil
}
