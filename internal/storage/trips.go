package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"chipfolio/internal/common"
	"chipfolio/internal/model"
)

// StartTrip creates a new trip and returns it with its assigned identifier.
// Identifiers are monotonically increasing; prior trips' sessions stay in
// the ledger and are only filtered out of views by trip ID.
func (s *SQLiteStorage) StartTrip(ctx context.Context, casino string, startingBankroll float64, plannedSessions int) (*model.Trip, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateTripParams(casino, startingBankroll, plannedSessions); err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO trips (casino, starting_bankroll, planned_sessions)
		VALUES (?, ?, ?)
	`, casino, startingBankroll, plannedSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trip: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get trip ID: %w", err)
	}

	return s.GetTrip(ctx, id)
}

// GetTrip retrieves a trip by its identifier.
func (s *SQLiteStorage) GetTrip(ctx context.Context, id int64) (*model.Trip, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var trip model.Trip
	err := s.db.QueryRowContext(ctx, `
		SELECT id, casino, starting_bankroll, planned_sessions, created_at
		FROM trips WHERE id = ?
	`, id).Scan(&trip.ID, &trip.Casino, &trip.StartingBankroll, &trip.PlannedSessions, &trip.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trip %d: %w", id, common.ErrTripNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &trip, nil
}

// LatestTrip returns the most recently started trip.
func (s *SQLiteStorage) LatestTrip(ctx context.Context) (*model.Trip, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var trip model.Trip
	err := s.db.QueryRowContext(ctx, `
		SELECT id, casino, starting_bankroll, planned_sessions, created_at
		FROM trips ORDER BY id DESC LIMIT 1
	`).Scan(&trip.ID, &trip.Casino, &trip.StartingBankroll, &trip.PlannedSessions, &trip.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNoTrips
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest trip: %w", err)
	}

	return &trip, nil
}

// ListTrips returns all trips, oldest first.
func (s *SQLiteStorage) ListTrips(ctx context.Context) ([]model.Trip, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, casino, starting_bankroll, planned_sessions, created_at
		FROM trips ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var trips []model.Trip
	for rows.Next() {
		var trip model.Trip
		if err := rows.Scan(&trip.ID, &trip.Casino, &trip.StartingBankroll, &trip.PlannedSessions, &trip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	return trips, nil
}
