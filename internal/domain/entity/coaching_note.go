package entity

import "time"

// CoachingNote is an append-only remark an admin attaches to a participant.
// Notes are never edited or deleted once written.
type CoachingNote struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participantId"`
	CoachID       string    `json:"coachId"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"createdAt"`
}
