package application_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/charterforge/charter-forge/internal/application"
	"github.com/charterforge/charter-forge/internal/infrastructure/fixtures"
	"github.com/charterforge/charter-forge/internal/infrastructure/store"
)

// env bundles the services over a fresh in-memory store and the real
// fixture catalog, with latency disabled.
type env struct {
	kv     *store.Memory
	auth   *application.AuthService
	pillar *application.PillarService
	admin  *application.AdminService
	export *application.ExportService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	catalog, err := fixtures.Load()
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	kv := store.NewMemory()
	sessions := store.NewSessionRepository(kv)
	responses := store.NewResponseRepository(kv)
	profiles := store.NewProfileRepository(kv)
	notes := store.NewNoteRepository(kv)
	activity := store.NewActivityRepository(kv)

	pillar := application.NewPillarService(catalog, responses, activity, logger, 0)
	return &env{
		kv:     kv,
		auth:   application.NewAuthService(catalog, sessions, profiles, logger, 0),
		pillar: pillar,
		admin:  application.NewAdminService(catalog, profiles, activity, notes, pillar, logger, 0),
		export: application.NewExportService(logger, 0),
	}
}

// brokenKV fails every operation, for exercising persistence error paths.
type brokenKV struct{}

var errDiskGone = errors.New("disk gone")

func (brokenKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errDiskGone
}
func (brokenKV) Set(ctx context.Context, key string, value []byte) error { return errDiskGone }
func (brokenKV) Delete(ctx context.Context, key string) error            { return errDiskGone }

func brokenSessions() *store.SessionRepository {
	return store.NewSessionRepository(brokenKV{})
}

func brokenResponses() *store.ResponseRepository {
	return store.NewResponseRepository(brokenKV{})
}
