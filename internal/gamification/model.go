package gamification

import "time"

// Achievement kinds; threshold is compared against the matching counter.
const (
	KindPoints   = "points"
	KindStreak   = "streak"
	KindCheckins = "checkins"
)

type Achievement struct {
	ID        int    `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Threshold int64  `json:"threshold"`
}

type ViewerAchievement struct {
	Achievement Achievement `json:"achievement"`
	UnlockedAt  time.Time   `json:"unlocked_at"`
}

// CheckInAward is what a daily check-in earned the viewer.
type CheckInAward struct {
	Streak        int      `json:"streak"`
	PointsAwarded int      `json:"points_awarded"`
	TotalPoints   int64    `json:"total_points"`
	Level         int      `json:"level"`
	Unlocked      []string `json:"unlocked_achievements"`
}

// CompletionAward is what finishing a card earned the viewer.
type CompletionAward struct {
	CardID        int      `json:"card_id"`
	PointsAwarded int      `json:"points_awarded"`
	TotalPoints   int64    `json:"total_points"`
	Level         int      `json:"level"`
	AlreadyDone   bool     `json:"already_completed"`
	Unlocked      []string `json:"unlocked_achievements"`
}

// Summary is the viewer's full gamification state.
type Summary struct {
	Points       int64               `json:"points"`
	Level        int                 `json:"level"`
	Progress     LevelProgress       `json:"progress"`
	Streak       int                 `json:"streak"`
	Achievements []ViewerAchievement `json:"achievements"`
}
