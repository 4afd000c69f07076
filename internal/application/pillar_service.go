package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/charterforge/charter-forge/internal/domain/completion"
	"github.com/charterforge/charter-forge/internal/domain/entity"
	repo "github.com/charterforge/charter-forge/internal/domain/repository"
)

// PillarStatus is a fixture pillar merged with one user's answers.
type PillarStatus struct {
	entity.Pillar
	Responses   map[int]string `json:"responses"`
	Completion  int            `json:"completion"`
	IsComplete  bool           `json:"isComplete"`
	LastUpdated time.Time      `json:"lastUpdated,omitempty"`
}

// PillarService merges the static pillar catalog with per-user answers and
// persists answer edits.
type PillarService struct {
	Fixtures  repo.FixtureRepository
	Responses repo.ResponseRepository
	Activity  repo.ActivityRepository
	Logger    *logrus.Logger
	Latency   time.Duration
}

func NewPillarService(fixtures repo.FixtureRepository, responses repo.ResponseRepository, activity repo.ActivityRepository, logger *logrus.Logger, latency time.Duration) *PillarService {
	return &PillarService{Fixtures: fixtures, Responses: responses, Activity: activity, Logger: logger, Latency: latency}
}

// UserPillars returns every pillar in fixture order with the user's answers
// merged in. Completion is recomputed from the response map on every call,
// never read from a stored field.
func (s *PillarService) UserPillars(ctx context.Context, userID string) ([]PillarStatus, error) {
	if err := pace(ctx, s.Latency); err != nil {
		return nil, err
	}
	m, err := s.Responses.Load(ctx, userID)
	if err != nil {
		return nil, persistErr("load responses", err)
	}
	act, _, err := s.Activity.Get(ctx, userID)
	if err != nil {
		return nil, persistErr("load activity", err)
	}

	pillars := s.Fixtures.Pillars()
	out := make([]PillarStatus, 0, len(pillars))
	for _, p := range pillars {
		answers := m.Pillar(p.ID)
		out = append(out, PillarStatus{
			Pillar:      p,
			Responses:   answers,
			Completion:  completion.Percent(p, answers),
			IsComplete:  completion.IsComplete(p, answers),
			LastUpdated: act.UpdatedAt,
		})
	}
	return out, nil
}

// UpdateResponse upserts a single answer and writes the whole map back. The
// write is one key overwrite, so there is no partial state to recover; on
// failure the caller must assume nothing was stored. A successful write also
// stamps the user's activity record.
func (s *PillarService) UpdateResponse(ctx context.Context, userID string, pillarID, questionID int, answer string) error {
	if err := pace(ctx, s.Latency); err != nil {
		return err
	}
	p, ok := s.Fixtures.PillarByID(pillarID)
	if !ok {
		return ErrPillarNotFound
	}
	if _, ok := p.Question(questionID); !ok {
		return ErrPillarNotFound
	}

	m, err := s.Responses.Load(ctx, userID)
	if err != nil {
		return persistErr("load responses", err)
	}
	m.Set(pillarID, questionID, answer)
	if err := s.Responses.Save(ctx, userID, m); err != nil {
		return persistErr("save responses", err)
	}
	if err := s.Activity.Touch(ctx, userID, time.Now().UTC()); err != nil {
		return persistErr("touch activity", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"user_id":     userID,
			"pillar_id":   pillarID,
			"question_id": questionID,
		}).Debug("response updated")
	}
	return nil
}

// PillarByID returns the static definition of one pillar.
func (s *PillarService) PillarByID(ctx context.Context, pillarID int) (entity.Pillar, error) {
	if err := pace(ctx, s.Latency); err != nil {
		return entity.Pillar{}, err
	}
	p, ok := s.Fixtures.PillarByID(pillarID)
	if !ok {
		return entity.Pillar{}, ErrPillarNotFound
	}
	return p, nil
}
