package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"chipfolio/internal/common"
	"chipfolio/internal/model"

	"github.com/google/uuid"
)

// RecordSession appends a session to the ledger and returns the stored record.
// Only money-in and money-out are persisted; profit is always derived from
// them on read so the two can never diverge. The trip must already exist.
func (s *SQLiteStorage) RecordSession(ctx context.Context, session *model.Session) (*model.Session, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateSession(session); err != nil {
		return nil, err
	}

	if _, err := s.GetTrip(ctx, session.TripID); err != nil {
		return nil, err
	}

	stored := *session
	stored.Ref = uuid.New().String()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (ref, trip_id, date, game, money_in, money_out, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, stored.Ref, stored.TripID, stored.Date, stored.Game, stored.MoneyIn, stored.MoneyOut, stored.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get session ID: %w", err)
	}
	stored.ID = id

	return &stored, nil
}

// SessionsForTrip returns the trip's sessions in insertion order. Callers
// sort by date as needed; ties in date keep insertion order so display and
// tests stay deterministic.
func (s *SQLiteStorage) SessionsForTrip(ctx context.Context, tripID int64) ([]model.Session, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ref, trip_id, date, game, money_in, money_out, notes
		FROM sessions WHERE trip_id = ? ORDER BY id
	`, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []model.Session
	for rows.Next() {
		var session model.Session
		var notes sql.NullString
		if err := rows.Scan(&session.ID, &session.Ref, &session.TripID, &session.Date,
			&session.Game, &session.MoneyIn, &session.MoneyOut, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		session.Notes = notes.String
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

// BankrollForTrip derives the trip's current bankroll from the ledger alone:
// starting bankroll plus the sum of session profits. There is no independently
// mutated running total that could drift.
func (s *SQLiteStorage) BankrollForTrip(ctx context.Context, tripID int64) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var bankroll float64
	err := s.db.QueryRowContext(ctx, `
		SELECT t.starting_bankroll + COALESCE(
			(SELECT SUM(s.money_out - s.money_in) FROM sessions s WHERE s.trip_id = t.id), 0)
		FROM trips t WHERE t.id = ?
	`, tripID).Scan(&bankroll)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("trip %d: %w", tripID, common.ErrTripNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to compute bankroll: %w", err)
	}

	return bankroll, nil
}
