package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charterforge/charter-forge/internal/application"
	"github.com/charterforge/charter-forge/internal/domain/entity"
)

func TestLoginCaseInsensitiveEmail(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	u, err := e.auth.Login(ctx, "ADMIN@DEMO.COM", "admin123")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.Empty(t, u.Password, "login must strip the password")
}

func TestLoginInvalidCredentials(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.auth.Login(ctx, "x@x.com", "wrong")
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)

	// Right email, wrong password: password comparison is exact.
	_, err = e.auth.Login(ctx, "admin@demo.com", "ADMIN123")
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestLoginOverwritesSession(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.auth.Login(ctx, "sarah@demo.com", "demo123")
	require.NoError(t, err)
	_, err = e.auth.Login(ctx, "admin@demo.com", "admin123")
	require.NoError(t, err)

	u, err := e.auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin@demo.com", u.Email)
}

func TestCurrentUserAfterLogout(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.auth.Login(ctx, "sarah@demo.com", "demo123")
	require.NoError(t, err)

	u, err := e.auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Empty(t, u.Password, "stored session must not carry the password")

	require.NoError(t, e.auth.Logout(ctx))
	_, err = e.auth.CurrentUser(ctx)
	assert.ErrorIs(t, err, application.ErrNotAuthenticated)

	// Logging out twice is fine.
	require.NoError(t, e.auth.Logout(ctx))
}

func TestGetProfile(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p, err := e.auth.GetProfile(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Mitchell", p.FullName)

	_, err = e.auth.GetProfile(ctx, "999")
	assert.ErrorIs(t, err, application.ErrProfileNotFound)
}

func TestUpdateProfileIsDurable(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	updated, err := e.auth.UpdateProfile(ctx, "2", entity.Profile{Position: "Chair"})
	require.NoError(t, err)
	assert.Equal(t, "Chair", updated.Position)
	// Untouched fields survive the merge.
	assert.Equal(t, "Sarah Mitchell", updated.FullName)
	assert.False(t, updated.UpdatedAt.IsZero())

	// The edit must be readable back, not fabricated.
	p, err := e.auth.GetProfile(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Chair", p.Position)
	assert.Equal(t, "Mitchell & Sons Hardware", p.BusinessName)
}

func TestUpdateProfileCreatesOnFirstSubmission(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// User 1 (the admin) has no fixture profile; onboarding creates one.
	_, err := e.auth.GetProfile(ctx, "1")
	require.ErrorIs(t, err, application.ErrProfileNotFound)

	created, err := e.auth.UpdateProfile(ctx, "1", entity.Profile{FullName: "Demo Coach", BusinessName: "Forge Advisory"})
	require.NoError(t, err)
	assert.Equal(t, "1", created.UserID)

	p, err := e.auth.GetProfile(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Demo Coach", p.FullName)
}

func TestAuthPersistenceFailure(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	broken := application.NewAuthService(
		e.admin.Fixtures,
		brokenSessions(),
		e.auth.Profiles,
		nil, 0,
	)
	_, err := broken.Login(ctx, "admin@demo.com", "admin123")
	assert.ErrorIs(t, err, application.ErrPersistence)

	_, err = broken.CurrentUser(ctx)
	assert.ErrorIs(t, err, application.ErrPersistence)
}
