// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"chipfolio/internal/model"
)

// Storage defines the contract for the trip/session ledger.
//
// The ledger is append-only: trips are created once and sessions are
// recorded once, never updated or deleted. Running totals are always
// derived from the stored records.
type Storage interface {
	// Trip operations
	StartTrip(ctx context.Context, casino string, startingBankroll float64, plannedSessions int) (*model.Trip, error)
	GetTrip(ctx context.Context, id int64) (*model.Trip, error)
	LatestTrip(ctx context.Context) (*model.Trip, error)
	ListTrips(ctx context.Context) ([]model.Trip, error)

	// Session operations
	RecordSession(ctx context.Context, session *model.Session) (*model.Session, error)
	SessionsForTrip(ctx context.Context, tripID int64) ([]model.Session, error)
	BankrollForTrip(ctx context.Context, tripID int64) (float64, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// CatalogSource loads the external game catalog.
// Implementations may cache; Load never mutates previously returned slices.
type CatalogSource interface {
	Load(ctx context.Context) ([]model.Game, error)
}
