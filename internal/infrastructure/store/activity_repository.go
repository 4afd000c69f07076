package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charterforge/charter-forge/internal/domain/entity"
	"github.com/charterforge/charter-forge/internal/domain/repository"
)

// ActivityRepository records when a user's charter was first and last
// written. Admin listings sort on these instead of inventing timestamps.
type ActivityRepository struct {
	kv KV
}

var _ repository.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(kv KV) *ActivityRepository {
	return &ActivityRepository{kv: kv}
}

func (r *ActivityRepository) Get(ctx context.Context, userID string) (entity.Activity, bool, error) {
	b, ok, err := r.kv.Get(ctx, activityKey(userID))
	if err != nil || !ok {
		return entity.Activity{}, false, err
	}
	var a entity.Activity
	if err := json.Unmarshal(b, &a); err != nil {
		return entity.Activity{}, false, fmt.Errorf("decode activity for user %s: %w", userID, err)
	}
	return a, true, nil
}

// Touch stamps UpdatedAt, setting CreatedAt on the first write only.
func (r *ActivityRepository) Touch(ctx context.Context, userID string, at time.Time) error {
	a, ok, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		a = entity.Activity{UserID: userID, CreatedAt: at}
	}
	a.UpdatedAt = at
	b, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode activity for user %s: %w", userID, err)
	}
	return r.kv.Set(ctx, activityKey(userID), b)
}
