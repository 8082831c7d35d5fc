package main

import (
	"errors"
	"fmt"
	"log/slog"

	"chipfolio/internal/cli"
	"chipfolio/internal/common"
	"chipfolio/internal/scoring"

	"github.com/spf13/cobra"
)

func gamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Browse and rank the game catalog",
	}

	cmd.AddCommand(gamesListCmd())
	cmd.AddCommand(gamesRecommendCmd())

	return cmd
}

func gamesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog games ranked by score",
		Long: `Fetch the game catalog, apply any filters, and print the games ranked
best-first for a conservative bankroll.

The catalog is cached for a while between fetches; --refresh forces a fetch.`,
		RunE: runGamesList,
	}

	cmd.Flags().Float64("min-rtp", 0, "minimum payout rate (percent)")
	cmd.Flags().Float64("max-bet", 0, "maximum minimum-bet")
	cmd.Flags().String("category", "", "category equality filter")
	cmd.Flags().String("advantage", "", "advantage tier: low, medium, high")
	cmd.Flags().String("volatility", "", "volatility tier: low, medium, high")
	cmd.Flags().String("match", "", "substring match on game name")
	cmd.Flags().Bool("refresh", false, "bypass the catalog cache")

	return cmd
}

func runGamesList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	loader, err := newCatalogLoader()
	if err != nil {
		return err
	}
	if refresh, _ := cmd.Flags().GetBool("refresh"); refresh {
		loader.Invalidate()
	}

	games, err := loader.Load(ctx)
	if err != nil {
		return describeCatalogFailure(err)
	}

	ranked := scoring.Rank(games, filter)
	if len(ranked) == 0 {
		fmt.Println(cli.FormatInfo("No games match the active filters")) //nolint:forbidigo // User-facing output
		return nil
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Games (%d of %d match)", len(ranked), len(games)))) //nolint:forbidigo // User-facing output
	fmt.Print(cli.RenderGameTable(ranked))                                                       //nolint:forbidigo // User-facing output

	return nil
}

func gamesRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a play order for the trip",
		Long: `Rank the catalog and take the top games, one per planned session of the
trip. Purely the head of the ranked list; no re-ranking.`,
		RunE: runGamesRecommend,
	}

	cmd.Flags().Int64("trip", 0, "trip ID (default: latest trip)")

	return cmd
}

func runGamesRecommend(cmd *cobra.Command, _ []string) error {
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

	loader, err := newCatalogLoader()
	if err != nil {
		return err
	}
	games, err := loader.Load(ctx)
	if err != nil {
		return describeCatalogFailure(err)
	}

	ranked := scoring.Rank(games, scoring.Filter{})
	order := scoring.PlayOrder(ranked, trip.PlannedSessions)
	if len(order) == 0 {
		fmt.Println(cli.FormatInfo("The catalog is empty; nothing to recommend")) //nolint:forbidigo // User-facing output
		return nil
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Play order for trip %d (%d sessions)", trip.ID, trip.PlannedSessions))) //nolint:forbidigo // User-facing output
	fmt.Print(cli.RenderGameTable(order))                                                                            //nolint:forbidigo // User-facing output

	return nil
}

// filterFromFlags builds the scoring filter, leaving unset flags inactive.
func filterFromFlags(cmd *cobra.Command) (scoring.Filter, error) {
	var filter scoring.Filter

	if cmd.Flags().Changed("min-rtp") {
		v, _ := cmd.Flags().GetFloat64("min-rtp")
		filter.MinRTP = &v
	}
	if cmd.Flags().Changed("max-bet") {
		v, _ := cmd.Flags().GetFloat64("max-bet")
		filter.MaxMinBet = &v
	}
	filter.Category, _ = cmd.Flags().GetString("category")
	filter.NameMatch, _ = cmd.Flags().GetString("match")

	rawAdvantage, _ := cmd.Flags().GetString("advantage")
	advantageTier, err := scoring.ParseTier(rawAdvantage)
	if err != nil {
		return filter, err
	}
	filter.AdvantageTier = advantageTier

	rawVolatility, _ := cmd.Flags().GetString("volatility")
	volatilityTier, err := scoring.ParseTier(rawVolatility)
	if err != nil {
		return filter, err
	}
	filter.VolatilityTier = volatilityTier

	return filter, nil
}

// describeCatalogFailure turns a load failure into a user-visible message.
// A broken catalog degrades to an empty result, never a crash.
func describeCatalogFailure(err error) error {
	if errors.Is(err, common.ErrMissingColumns) {
		return common.NewUserError("the catalog is missing required columns (payout rate, minimum bet)", err)
	}
	if errors.Is(err, common.ErrCatalogUnavailable) {
		return common.NewUserError("could not fetch the game catalog", err)
	}
	return err
}
