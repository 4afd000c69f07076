package entity

import "time"

// Activity tracks real write history for a participant's charter. CreatedAt
// is stamped on the first response write, UpdatedAt on every write. Admin
// summaries sort by UpdatedAt instead of fabricating timestamps.
type Activity struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
