package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charterforge/charter-forge/internal/domain/entity"
	"github.com/charterforge/charter-forge/internal/domain/repository"
)

// NoteRepository stores every coaching note in one array under a shared key.
// Appends are serialized behind a mutex so two admin requests in the same
// process cannot interleave their read-modify-write cycles and drop notes.
// Cross-process writers would still race; that needs a versioned store.
type NoteRepository struct {
	kv KV
	mu sync.Mutex
}

var _ repository.NoteRepository = (*NoteRepository)(nil)

func NewNoteRepository(kv KV) *NoteRepository {
	return &NoteRepository{kv: kv}
}

func (r *NoteRepository) All(ctx context.Context) ([]entity.CoachingNote, error) {
	return r.load(ctx)
}

func (r *NoteRepository) Append(ctx context.Context, n entity.CoachingNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notes, err := r.load(ctx)
	if err != nil {
		return err
	}
	notes = append(notes, n)
	b, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode coaching notes: %w", err)
	}
	return r.kv.Set(ctx, coachingNotesKey, b)
}

func (r *NoteRepository) load(ctx context.Context) ([]entity.CoachingNote, error) {
	b, ok, err := r.kv.Get(ctx, coachingNotesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []entity.CoachingNote{}, nil
	}
	var notes []entity.CoachingNote
	if err := json.Unmarshal(b, &notes); err != nil {
		return nil, fmt.Errorf("decode coaching notes: %w", err)
	}
	return notes, nil
}
