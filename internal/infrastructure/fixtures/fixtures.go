// Package fixtures loads the bundled seed catalog: demo accounts, business
// profiles, the four charter pillars and optional seed responses. The
// catalog is read-only; everything mutable lives in the key-value store.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charterforge/charter-forge/internal/domain/entity"
	"github.com/charterforge/charter-forge/internal/domain/repository"
)

//go:embed data/*.json
var data embed.FS

type usersFile struct {
	Users []entity.User `json:"users"`
}

type profilesFile struct {
	Profiles []entity.Profile `json:"profiles"`
}

type pillarsFile struct {
	Pillars []entity.Pillar `json:"pillars"`
}

type responsesFile struct {
	Responses map[string]entity.ResponseMap `json:"responses"`
}

// Catalog is the in-memory view of the embedded fixture files.
type Catalog struct {
	users     []entity.User
	usersByID map[string]entity.User
	profiles  []entity.Profile
	byUserID  map[string]entity.Profile
	pillars   []entity.Pillar
	byPillar  map[int]entity.Pillar
	seed      map[string]entity.ResponseMap
}

var _ repository.FixtureRepository = (*Catalog)(nil)

// Load parses the embedded fixture files into a Catalog. Pillars are kept in
// ascending id order regardless of file order.
func Load() (*Catalog, error) {
	c := &Catalog{
		usersByID: map[string]entity.User{},
		byUserID:  map[string]entity.Profile{},
		byPillar:  map[int]entity.Pillar{},
		seed:      map[string]entity.ResponseMap{},
	}

	var uf usersFile
	if err := read("data/users.json", &uf); err != nil {
		return nil, err
	}
	c.users = uf.Users
	for _, u := range uf.Users {
		c.usersByID[u.ID] = u
	}

	var pf profilesFile
	if err := read("data/profiles.json", &pf); err != nil {
		return nil, err
	}
	c.profiles = pf.Profiles
	for _, p := range pf.Profiles {
		c.byUserID[p.UserID] = p
	}

	var plf pillarsFile
	if err := read("data/pillars.json", &plf); err != nil {
		return nil, err
	}
	c.pillars = plf.Pillars
	sort.Slice(c.pillars, func(i, j int) bool { return c.pillars[i].ID < c.pillars[j].ID })
	for _, p := range c.pillars {
		c.byPillar[p.ID] = p
	}

	var rf responsesFile
	if err := read("data/responses.json", &rf); err != nil {
		return nil, err
	}
	c.seed = rf.Responses

	return c, nil
}

func read(name string, dest any) error {
	b, err := data.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return nil
}

// UserByEmail matches case-insensitively, mirroring the login contract.
func (c *Catalog) UserByEmail(email string) (entity.User, bool) {
	for _, u := range c.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return entity.User{}, false
}

func (c *Catalog) UserByID(id string) (entity.User, bool) {
	u, ok := c.usersByID[id]
	return u, ok
}

func (c *Catalog) ProfileByUserID(userID string) (entity.Profile, bool) {
	p, ok := c.byUserID[userID]
	return p, ok
}

// Profiles returns participant profiles in fixture order.
func (c *Catalog) Profiles() []entity.Profile {
	out := make([]entity.Profile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

// Pillars returns the pillar definitions in ascending id order.
func (c *Catalog) Pillars() []entity.Pillar {
	out := make([]entity.Pillar, len(c.pillars))
	copy(out, c.pillars)
	return out
}

func (c *Catalog) PillarByID(id int) (entity.Pillar, bool) {
	p, ok := c.byPillar[id]
	return p, ok
}

// SeedResponses returns the demo answers keyed by user id, used by the seed
// binary to pre-populate a store.
func (c *Catalog) SeedResponses() map[string]entity.ResponseMap {
	return c.seed
}
