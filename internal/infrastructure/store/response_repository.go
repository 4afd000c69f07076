package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charterforge/charter-forge/internal/domain/entity"
	"github.com/charterforge/charter-forge/internal/domain/repository"
)

// ResponseRepository persists one response map per user as a single value,
// so an update is always one whole-key overwrite.
type ResponseRepository struct {
	kv KV
}

var _ repository.ResponseRepository = (*ResponseRepository)(nil)

func NewResponseRepository(kv KV) *ResponseRepository {
	return &ResponseRepository{kv: kv}
}

// Load returns an empty map for users that never answered anything.
func (r *ResponseRepository) Load(ctx context.Context, userID string) (entity.ResponseMap, error) {
	b, ok, err := r.kv.Get(ctx, responsesKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return entity.ResponseMap{}, nil
	}
	var m entity.ResponseMap
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode responses for user %s: %w", userID, err)
	}
	if m == nil {
		m = entity.ResponseMap{}
	}
	return m, nil
}

func (r *ResponseRepository) Save(ctx context.Context, userID string, m entity.ResponseMap) error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode responses for user %s: %w", userID, err)
	}
	return r.kv.Set(ctx, responsesKey(userID), b)
}
