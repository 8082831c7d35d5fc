// Package storage provides the data persistence layer for the chipfolio application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chipfolio/internal/common"
	"chipfolio/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidTrip    = errors.New("invalid trip")
	ErrInvalidSession = errors.New("invalid session")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTripParams validates the inputs for starting a trip.
func validateTripParams(casino string, startingBankroll float64, plannedSessions int) error {
	if err := validateString(casino, "casino"); err != nil {
		return err
	}
	if startingBankroll < 0 {
		return fmt.Errorf("%w: starting bankroll cannot be negative", ErrInvalidTrip)
	}
	if plannedSessions < 1 {
		return fmt.Errorf("%w: planned sessions must be at least 1", ErrInvalidTrip)
	}
	return nil
}

// validateSession validates a session before it is appended to the ledger.
func validateSession(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("%w: session", ErrNilParameter)
	}
	if session.TripID <= 0 {
		return fmt.Errorf("%w: missing trip ID", ErrInvalidSession)
	}
	if session.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidSession)
	}
	if session.Game == "" {
		return fmt.Errorf("%w: missing game", ErrInvalidSession)
	}
	if session.MoneyIn < 0 || session.MoneyOut < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSession, common.ErrNegativeMoney)
	}
	return nil
}
