package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charterforge/charter-forge/internal/domain/entity"
	"github.com/charterforge/charter-forge/internal/infrastructure/store"
)

func drivers(t *testing.T) map[string]store.KV {
	t.Helper()
	file, err := store.NewFile(t.TempDir())
	require.NoError(t, err)
	return map[string]store.KV{
		"memory": store.NewMemory(),
		"file":   file,
	}
}

func TestKVDrivers(t *testing.T) {
	ctx := context.Background()
	for name, kv := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := kv.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set(ctx, "k", []byte(`{"a":1}`)))
			b, ok, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, `{"a":1}`, string(b))

			require.NoError(t, kv.Set(ctx, "k", []byte(`{"a":2}`)))
			b, _, _ = kv.Get(ctx, "k")
			assert.JSONEq(t, `{"a":2}`, string(b))

			require.NoError(t, kv.Delete(ctx, "k"))
			_, ok, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting a missing key is not an error.
			require.NoError(t, kv.Delete(ctx, "k"))
		})
	}
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := store.NewSessionRepository(store.NewMemory())

	_, ok, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	u := entity.User{ID: "2", Email: "sarah@demo.com", Role: entity.RoleParticipant}
	require.NoError(t, repo.Save(ctx, u))

	got, ok, err := repo.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, u, got)

	// Save overwrites the prior session.
	require.NoError(t, repo.Save(ctx, entity.User{ID: "1", Email: "admin@demo.com", Role: entity.RoleAdmin}))
	got, _, _ = repo.Get(ctx)
	assert.Equal(t, "1", got.ID)

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx)) // idempotent
	_, ok, _ = repo.Get(ctx)
	assert.False(t, ok)
}

func TestResponseRepository(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	repo := store.NewResponseRepository(kv)

	m, err := repo.Load(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, m)

	m.Set(1, 1, "first answer")
	m.Set(2, 4, "another")
	require.NoError(t, repo.Save(ctx, "2", m))

	got, err := repo.Load(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, m, got)

	// Other users are unaffected.
	other, err := repo.Load(ctx, "3")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestResponseRepositoryMalformedValue(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, "charter_responses_2", []byte("{not json")))

	repo := store.NewResponseRepository(kv)
	_, err := repo.Load(ctx, "2")
	assert.Error(t, err)
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	repo := store.NewProfileRepository(store.NewMemory())

	_, ok, err := repo.Get(ctx, "2")
	require.NoError(t, err)
	assert.False(t, ok)

	p := entity.Profile{UserID: "2", FullName: "Sarah Mitchell", BusinessName: "Mitchell & Sons Hardware"}
	require.NoError(t, repo.Save(ctx, p))

	got, ok, err := repo.Get(ctx, "2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p.FullName, got.FullName)
}

func TestNoteRepositoryAppend(t *testing.T) {
	ctx := context.Background()
	repo := store.NewNoteRepository(store.NewMemory())

	notes, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	n1 := entity.CoachingNote{ID: "a", ParticipantID: "2", CoachID: "1", Note: "start with pillar one", CreatedAt: time.Now().UTC()}
	n2 := entity.CoachingNote{ID: "b", ParticipantID: "3", CoachID: "1", Note: "good progress", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Append(ctx, n1))
	require.NoError(t, repo.Append(ctx, n2))

	notes, err = repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].ID)
	assert.Equal(t, "b", notes[1].ID)
}

func TestActivityRepositoryTouch(t *testing.T) {
	ctx := context.Background()
	repo := store.NewActivityRepository(store.NewMemory())

	_, ok, err := repo.Get(ctx, "2")
	require.NoError(t, err)
	assert.False(t, ok)

	first := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	require.NoError(t, repo.Touch(ctx, "2", first))
	a, ok, err := repo.Get(ctx, "2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, a.CreatedAt)
	assert.Equal(t, first, a.UpdatedAt)

	require.NoError(t, repo.Touch(ctx, "2", second))
	a, _, _ = repo.Get(ctx, "2")
	assert.Equal(t, first, a.CreatedAt, "CreatedAt must survive later touches")
	assert.Equal(t, second, a.UpdatedAt)
}
