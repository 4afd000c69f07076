package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charterforge/charter-forge/internal/domain/entity"
	"github.com/charterforge/charter-forge/internal/domain/repository"
)

// ProfileRepository is the durable overlay for profile edits. Fixture
// profiles stay untouched; a saved profile shadows its fixture record.
type ProfileRepository struct {
	kv KV
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(kv KV) *ProfileRepository {
	return &ProfileRepository{kv: kv}
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (entity.Profile, bool, error) {
	b, ok, err := r.kv.Get(ctx, profileKey(userID))
	if err != nil || !ok {
		return entity.Profile{}, false, err
	}
	var p entity.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return entity.Profile{}, false, fmt.Errorf("decode profile for user %s: %w", userID, err)
	}
	return p, true, nil
}

func (r *ProfileRepository) Save(ctx context.Context, p entity.Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile for user %s: %w", p.UserID, err)
	}
	return r.kv.Set(ctx, profileKey(p.UserID), b)
}
