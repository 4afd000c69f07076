// Package store is the persistence layer: a small key-value contract with
// memory, file and redis drivers, plus the repositories built on top of it.
// Values are JSON-encoded text; the key layout is part of the external
// contract and must stay stable:
//
//	charter_forge_current_user      session user record (password stripped)
//	charter_responses_<userId>      pillar id -> question id -> answer
//	charter_coaching_notes          all coaching notes, one array
//	charter_profile_<userId>        persisted profile overlay
//	charter_activity_<userId>       real write history for admin views
package store

import "context"

// KV is the minimal driver contract. Get reports ok=false for a missing key
// so callers can distinguish "absent" from a driver failure.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

const (
	currentUserKey   = "charter_forge_current_user"
	coachingNotesKey = "charter_coaching_notes"
)

func responsesKey(userID string) string { return "charter_responses_" + userID }
func profileKey(userID string) string   { return "charter_profile_" + userID }
func activityKey(userID string) string  { return "charter_activity_" + userID }
