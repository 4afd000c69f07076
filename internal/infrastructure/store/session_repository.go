package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charterforge/charter-forge/internal/domain/entity"
	"github.com/charterforge/charter-forge/internal/domain/repository"
)

// SessionRepository keeps the current user under the fixed session key.
type SessionRepository struct {
	kv KV
}

var _ repository.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(kv KV) *SessionRepository {
	return &SessionRepository{kv: kv}
}

// Save overwrites any prior session. The caller is responsible for stripping
// the password first.
func (r *SessionRepository) Save(ctx context.Context, u entity.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.kv.Set(ctx, currentUserKey, b)
}

func (r *SessionRepository) Get(ctx context.Context) (entity.User, bool, error) {
	b, ok, err := r.kv.Get(ctx, currentUserKey)
	if err != nil || !ok {
		return entity.User{}, false, err
	}
	var u entity.User
	if err := json.Unmarshal(b, &u); err != nil {
		return entity.User{}, false, fmt.Errorf("decode session: %w", err)
	}
	return u, true, nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, currentUserKey)
}
