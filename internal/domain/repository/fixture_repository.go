package repository

import "github.com/charterforge/charter-forge/internal/domain/entity"

// FixtureRepository exposes the read-only seed catalog: accounts, business
// profiles and the pillar/question definitions.
type FixtureRepository interface {
	UserByEmail(email string) (entity.User, bool)
	UserByID(id string) (entity.User, bool)
	ProfileByUserID(userID string) (entity.Profile, bool)
	Profiles() []entity.Profile
	Pillars() []entity.Pillar
	PillarByID(id int) (entity.Pillar, bool)
	SeedResponses() map[string]entity.ResponseMap
}
