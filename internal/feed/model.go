package feed

import (
	"encoding/json"
	"time"
)

// Card is a single unit of feed content: verse, devotional, prayer,
// article, quiz, game, meme. The payload shape depends on the card type
// and is passed through untouched.
type Card struct {
	ID                 int             `json:"id"`
	CardType           string          `json:"card_type"`
	Title              string          `json:"title"`
	IsActive           bool            `json:"is_active"`
	MinMembershipLevel int             `json:"min_membership_level"`
	PublishDate        *time.Time      `json:"publish_date,omitempty"`
	IsPinned           bool            `json:"is_pinned"`
	PinStart           *time.Time      `json:"pin_start,omitempty"`
	PinEnd             *time.Time      `json:"pin_end,omitempty"`
	PinPosition        *int            `json:"pin_position,omitempty"`
	RewardPoints       int             `json:"reward_points"`
	Payload            json.RawMessage `json:"payload"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// DailyFeedEntry is one row of the composed-feed cache: positions for a
// given (viewer, day) are contiguous starting at 1.
type DailyFeedEntry struct {
	ViewerID  int       `json:"viewer_id"`
	FeedDate  time.Time `json:"feed_date"`
	Position  int       `json:"position"`
	CardID    int       `json:"card_id"`
	MoodID    int       `json:"mood_id"`
	CreatedAt time.Time `json:"created_at"`
}
