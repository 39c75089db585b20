// Viewer identity and profile models
package auth

import "time"

// MembershipFree is the lowest tier; anonymous requests are treated as free.
const MembershipFree = 1

// Viewer is the authenticated identity attached to a request.
type Viewer struct {
	ID              int `json:"id"`
	MembershipLevel int `json:"membership_level"`
}

type Profile struct {
	ID              int        `json:"id"`
	UserName        string     `json:"user_name,omitempty"`
	MembershipLevel int        `json:"membership_level"`
	Points          int64      `json:"points"`
	CurrentStreak   int        `json:"current_streak"`
	LastCheckinDate *time.Time `json:"last_checkin_date,omitempty"`
	LastMoodID      *int       `json:"last_mood_id,omitempty"`
	LastMoodSyncAt  *time.Time `json:"last_mood_sync_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
