package application

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrPillarNotFound      = errors.New("pillar not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrPersistence         = errors.New("persistence failure")
)

// persistErr wraps a store failure so callers can match ErrPersistence while
// keeping the underlying cause in the message.
func persistErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}
