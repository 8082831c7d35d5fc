package storage

import (
	"context"
	"errors"
	"testing"

	"chipfolio/internal/common"
)

func TestStartTrip_AssignsMonotonicIDs(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	first, err := store.StartTrip(ctx, "Bellagio", 500, 10)
	if err != nil {
		t.Fatalf("Failed to start first trip: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("Expected first trip ID 1, got %d", first.ID)
	}

	second, err := store.StartTrip(ctx, "Golden Nugget", 300, 5)
	if err != nil {
		t.Fatalf("Failed to start second trip: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("Expected trip IDs to increase: first=%d second=%d", first.ID, second.ID)
	}
}

func TestStartTrip_Validation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name     string
		casino   string
		bankroll float64
		planned  int
	}{
		{name: "empty casino", casino: "", bankroll: 100, planned: 5},
		{name: "negative bankroll", casino: "Bellagio", bankroll: -1, planned: 5},
		{name: "zero planned sessions", casino: "Bellagio", bankroll: 100, planned: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.StartTrip(ctx, tt.casino, tt.bankroll, tt.planned); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestStartTrip_PreservesPriorTripSessions(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	first, err := store.StartTrip(ctx, "Bellagio", 500, 10)
	if err != nil {
		t.Fatalf("Failed to start trip: %v", err)
	}
	for _, session := range createTestSessions(first.ID, 3) {
		if _, err := store.RecordSession(ctx, &session); err != nil {
			t.Fatalf("Failed to record session: %v", err)
		}
	}

	// Starting a new trip must not clear the old trip's ledger view
	second, err := store.StartTrip(ctx, "Golden Nugget", 300, 5)
	if err != nil {
		t.Fatalf("Failed to start second trip: %v", err)
	}

	oldSessions, err := store.SessionsForTrip(ctx, first.ID)
	if err != nil {
		t.Fatalf("Failed to get sessions for first trip: %v", err)
	}
	if len(oldSessions) != 3 {
		t.Errorf("Expected 3 sessions on first trip, got %d", len(oldSessions))
	}

	newSessions, err := store.SessionsForTrip(ctx, second.ID)
	if err != nil {
		t.Fatalf("Failed to get sessions for second trip: %v", err)
	}
	if len(newSessions) != 0 {
		t.Errorf("Expected 0 sessions on new trip, got %d", len(newSessions))
	}
}

func TestGetTrip_NotFound(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetTrip(context.Background(), 42)
	if !errors.Is(err, common.ErrTripNotFound) {
		t.Errorf("Expected ErrTripNotFound, got %v", err)
	}
}

func TestLatestTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.LatestTrip(ctx); !errors.Is(err, common.ErrNoTrips) {
		t.Errorf("Expected ErrNoTrips on empty store, got %v", err)
	}

	if _, err := store.StartTrip(ctx, "Bellagio", 500, 10); err != nil {
		t.Fatalf("Failed to start trip: %v", err)
	}
	second, err := store.StartTrip(ctx, "Golden Nugget", 300, 5)
	if err != nil {
		t.Fatalf("Failed to start trip: %v", err)
	}

	latest, err := store.LatestTrip(ctx)
	if err != nil {
		t.Fatalf("Failed to get latest trip: %v", err)
	}
	if latest.ID != second.ID {
		t.Errorf("Expected latest trip %d, got %d", second.ID, latest.ID)
	}
	if latest.Casino != "Golden Nugget" {
		t.Errorf("Expected casino Golden Nugget, got %s", latest.Casino)
	}
}

func TestListTrips(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	casinos := []string{"Bellagio", "Golden Nugget", "Foxwoods"}
	for _, casino := range casinos {
		if _, err := store.StartTrip(ctx, casino, 100, 5); err != nil {
			t.Fatalf("Failed to start trip: %v", err)
		}
	}

	trips, err := store.ListTrips(ctx)
	if err != nil {
		t.Fatalf("Failed to list trips: %v", err)
	}
	if len(trips) != len(casinos) {
		t.Fatalf("Expected %d trips, got %d", len(casinos), len(trips))
	}
	for i, trip := range trips {
		if trip.Casino != casinos[i] {
			t.Errorf("Trip %d: expected casino %s, got %s", i, casinos[i], trip.Casino)
		}
	}
}
