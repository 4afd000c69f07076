package application

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/charterforge/charter-forge/internal/domain/completion"
	"github.com/charterforge/charter-forge/internal/domain/entity"
	repo "github.com/charterforge/charter-forge/internal/domain/repository"
)

// ParticipantSummary is one row of the coach's overview list.
type ParticipantSummary struct {
	entity.Profile
	OverallCompletion int       `json:"overallCompletion"`
	PillarCompletions []int     `json:"pillarCompletions"`
	CreatedAt         time.Time `json:"createdAt,omitempty"`
	LastUpdated       time.Time `json:"lastUpdated,omitempty"`
}

// ParticipantDetail is everything the coach sees for one participant.
type ParticipantDetail struct {
	Profile           entity.Profile        `json:"profile"`
	Pillars           []PillarStatus        `json:"pillars"`
	OverallCompletion int                   `json:"overallCompletion"`
	CoachingNotes     []entity.CoachingNote `json:"coachingNotes"`
	CreatedAt         time.Time             `json:"createdAt,omitempty"`
	LastUpdated       time.Time             `json:"lastUpdated,omitempty"`
}

// AdminService aggregates participant progress for the coach role. It reuses
// the pillar service so both roles compute completion through the same
// rules.
type AdminService struct {
	Fixtures repo.FixtureRepository
	Profiles repo.ProfileRepository
	Activity repo.ActivityRepository
	Notes    repo.NoteRepository
	Pillars  *PillarService
	Logger   *logrus.Logger
	Latency  time.Duration
}

func NewAdminService(fixtures repo.FixtureRepository, profiles repo.ProfileRepository, activity repo.ActivityRepository, notes repo.NoteRepository, pillars *PillarService, logger *logrus.Logger, latency time.Duration) *AdminService {
	return &AdminService{Fixtures: fixtures, Profiles: profiles, Activity: activity, Notes: notes, Pillars: pillars, Logger: logger, Latency: latency}
}

// Participants lists every participant with overall completion and real
// write-history timestamps, most recently active first. Participants who
// never wrote anything sort last.
func (s *AdminService) Participants(ctx context.Context) ([]ParticipantSummary, error) {
	if err := pace(ctx, s.Latency); err != nil {
		return nil, err
	}
	out := []ParticipantSummary{}
	for _, fp := range s.Fixtures.Profiles() {
		profile, err := s.resolveProfile(ctx, fp.UserID)
		if err != nil {
			return nil, err
		}
		pillars, err := s.Pillars.UserPillars(ctx, profile.UserID)
		if err != nil {
			return nil, err
		}
		percents := make([]int, 0, len(pillars))
		for _, p := range pillars {
			percents = append(percents, p.Completion)
		}
		act, _, err := s.Activity.Get(ctx, profile.UserID)
		if err != nil {
			return nil, persistErr("load activity", err)
		}
		out = append(out, ParticipantSummary{
			Profile:           profile,
			OverallCompletion: completion.Overall(percents),
			PillarCompletions: percents,
			CreatedAt:         act.CreatedAt,
			LastUpdated:       act.UpdatedAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastUpdated.After(out[j].LastUpdated)
	})
	return out, nil
}

// Participant returns the full detail view for one participant, including
// only that participant's coaching notes.
func (s *AdminService) Participant(ctx context.Context, participantID string) (ParticipantDetail, error) {
	if err := pace(ctx, s.Latency); err != nil {
		return ParticipantDetail{}, err
	}
	if _, ok := s.Fixtures.ProfileByUserID(participantID); !ok {
		return ParticipantDetail{}, ErrParticipantNotFound
	}
	profile, err := s.resolveProfile(ctx, participantID)
	if err != nil {
		return ParticipantDetail{}, err
	}
	pillars, err := s.Pillars.UserPillars(ctx, participantID)
	if err != nil {
		return ParticipantDetail{}, err
	}
	percents := make([]int, 0, len(pillars))
	for _, p := range pillars {
		percents = append(percents, p.Completion)
	}
	all, err := s.Notes.All(ctx)
	if err != nil {
		return ParticipantDetail{}, persistErr("load coaching notes", err)
	}
	notes := []entity.CoachingNote{}
	for _, n := range all {
		if n.ParticipantID == participantID {
			notes = append(notes, n)
		}
	}
	act, _, err := s.Activity.Get(ctx, participantID)
	if err != nil {
		return ParticipantDetail{}, persistErr("load activity", err)
	}
	return ParticipantDetail{
		Profile:           profile,
		Pillars:           pillars,
		OverallCompletion: completion.Overall(percents),
		CoachingNotes:     notes,
		CreatedAt:         act.CreatedAt,
		LastUpdated:       act.UpdatedAt,
	}, nil
}

// AddNote appends a coaching note for a participant. Notes are append-only;
// nothing ever edits or removes an existing note.
func (s *AdminService) AddNote(ctx context.Context, participantID, coachID, text string) (entity.CoachingNote, error) {
	if err := pace(ctx, s.Latency); err != nil {
		return entity.CoachingNote{}, err
	}
	if _, ok := s.Fixtures.ProfileByUserID(participantID); !ok {
		return entity.CoachingNote{}, ErrParticipantNotFound
	}
	note := entity.CoachingNote{
		ID:            uuid.NewString(),
		ParticipantID: participantID,
		CoachID:       coachID,
		Note:          text,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Notes.Append(ctx, note); err != nil {
		return entity.CoachingNote{}, persistErr("append coaching note", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"participant_id": participantID, "coach_id": coachID}).Info("coaching note added")
	}
	return note, nil
}

func (s *AdminService) resolveProfile(ctx context.Context, userID string) (entity.Profile, error) {
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
	return entity.Profile{}, ErrParticipantNotFound
}
