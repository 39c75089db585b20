package mood

import "time"

// Mood is static reference data: a named affective state shown in the
// check-in picker.
type Mood struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Emoji    string `json:"emoji,omitempty"`
	Color    string `json:"color,omitempty"`
	IsActive bool   `json:"is_active"`
}

// MoodLog is one append-only check-in record; the heat-map history is
// built from these rows.
type MoodLog struct {
	ID       int       `json:"id"`
	ViewerID int       `json:"viewer_id,omitempty"`
	MoodID   int       `json:"mood_id"`
	LoggedAt time.Time `json:"logged_at"`
	Mood     Mood      `json:"mood"`
}

type CheckInRequest struct {
	MoodID int `json:"mood_id" validate:"required,gt=0"`
}

// CheckInResult reports the gamification side effects of a check-in.
type CheckInResult struct {
	MoodID              int      `json:"mood_id"`
	Streak              int      `json:"streak"`
	PointsAwarded       int      `json:"points_awarded"`
	TotalPoints         int64    `json:"total_points"`
	Level               int      `json:"level"`
	UnlockedAchievement []string `json:"unlocked_achievements"`
}
