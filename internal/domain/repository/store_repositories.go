package repository

import (
	"context"
	"time"

	"github.com/charterforge/charter-forge/internal/domain/entity"
)

// SessionRepository persists the authenticated user under a single fixed
// key. Save overwrites any prior session; Clear is idempotent.
type SessionRepository interface {
	Save(ctx context.Context, u entity.User) error
	// Get returns ok=false when no session is stored.
	Get(ctx context.Context) (entity.User, bool, error)
	Clear(ctx context.Context) error
}

// ResponseRepository persists one response map per user. Load returns an
// empty map when the user has never answered anything.
type ResponseRepository interface {
	Load(ctx context.Context, userID string) (entity.ResponseMap, error)
	Save(ctx context.Context, userID string, m entity.ResponseMap) error
}

// ProfileRepository is the durable overlay for profile edits; fixture
// profiles remain the fallback for users that never saved one.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (entity.Profile, bool, error)
	Save(ctx context.Context, p entity.Profile) error
}

// NoteRepository stores the coaching-note collection. Append must serialize
// writers so concurrent admin calls cannot drop each other's notes.
type NoteRepository interface {
	All(ctx context.Context) ([]entity.CoachingNote, error)
	Append(ctx context.Context, n entity.CoachingNote) error
}

// ActivityRepository records real write history per user, stamped by the
// pillar service on every response update.
type ActivityRepository interface {
	Get(ctx context.Context, userID string) (entity.Activity, bool, error)
	Touch(ctx context.Context, userID string, at time.Time) error
}
