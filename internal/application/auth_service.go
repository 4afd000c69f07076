package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/charterforge/charter-forge/internal/domain/entity"
	repo "github.com/charterforge/charter-forge/internal/domain/repository"
)

// AuthService authenticates fixture accounts and owns profile reads/writes.
// Credentials are matched verbatim against the seeded demo list; this is a
// demo login, not real authentication.
type AuthService struct {
	Fixtures repo.FixtureRepository
	Sessions repo.SessionRepository
	Profiles repo.ProfileRepository
	Logger   *logrus.Logger
	Latency  time.Duration
}

func NewAuthService(fixtures repo.FixtureRepository, sessions repo.SessionRepository, profiles repo.ProfileRepository, logger *logrus.Logger, latency time.Duration) *AuthService {
	return &AuthService{Fixtures: fixtures, Sessions: sessions, Profiles: profiles, Logger: logger, Latency: latency}
}

// Login matches a case-insensitive email and exact password, stores the
// password-stripped user as the current session and returns it.
func (s *AuthService) Login(ctx context.Context, email, password string) (entity.User, error) {
	if err := pace(ctx, s.Latency); err != nil {
		return entity.User{}, err
	}
	u, ok := s.Fixtures.UserByEmail(email)
	if !ok || u.Password != password {
		return entity.User{}, ErrInvalidCredentials
	}
	clean := u.Sanitized()
	if err := s.Sessions.Save(ctx, clean); err != nil {
		return entity.User{}, persistErr("save session", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": clean.ID, "role": clean.Role}).Info("user logged in")
	}
	return clean, nil
}

// Logout clears the session key unconditionally; clearing an absent session
// is not an error.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := pace(ctx, s.Latency); err != nil {
		return err
	}
	if err := s.Sessions.Clear(ctx); err != nil {
		return persistErr("clear session", err)
	}
	return nil
}

// CurrentUser restores the stored session, failing with ErrNotAuthenticated
// when none is present.
func (s *AuthService) CurrentUser(ctx context.Context) (entity.User, error) {
	if err := pace(ctx, s.Latency); err != nil {
		return entity.User{}, err
	}
	u, ok, err := s.Sessions.Get(ctx)
	if err != nil {
		return entity.User{}, persistErr("read session", err)
	}
	if !ok {
		return entity.User{}, ErrNotAuthenticated
	}
	return u, nil
}

// GetProfile prefers a saved profile over the fixture record.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (entity.Profile, error) {
	if err := pace(ctx, s.Latency); err != nil {
		return entity.Profile{}, err
	}
	return s.resolveProfile(ctx, userID)
}

// UpdateProfile merges non-empty fields onto the existing profile and
// persists the result. Unlike the demo predecessor, edits are durable; a
// user without any profile yet gets one created (onboarding).
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in entity.Profile) (entity.Profile, error) {
	if err := pace(ctx, s.Latency); err != nil {
		return entity.Profile{}, err
	}
	base, err := s.resolveProfile(ctx, userID)
	if err != nil {
		base = entity.Profile{UserID: userID}
	}
	merged := base.Merge(in)
	merged.UserID = userID
	merged.UpdatedAt = time.Now().UTC()
	if err := s.Profiles.Save(ctx, merged); err != nil {
		return entity.Profile{}, persistErr("save profile", err)
	}
	return merged, nil
}

func (s *AuthService) resolveProfile(ctx context.Context, userID string) (entity.Profile, error) {
	p, ok, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return entity.Profile{}, persistErr("read profile", err)
	}
	if ok {
		return p, nil
	}
	if p, ok := s.Fixtures.ProfileByUserID(userID); ok {
		return p, nil
	}
	return entity.Profile{}, ErrProfileNotFound
}
