package feed

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInternalServer = errors.New("internal server error")
)

// Repository provides the card, weight and daily-cache queries the feed
// composer needs. All card rows are produced by the CMS; this subsystem
// only reads them.
type Repository interface {
	// GetEligibleCards returns active cards visible to the given
	// membership level whose publish date, if any, has passed.
	GetEligibleCards(ctx context.Context, membershipLevel int, day time.Time) ([]Card, error)

	// GetActivePinnedCards returns pinned cards whose pin window covers
	// the given day, ordered by pin position ascending.
	GetActivePinnedCards(ctx context.Context, day time.Time) ([]Card, error)

	// GetMoodWeights returns card id -> weight for one mood. Cards with
	// no row carry weight zero.
	GetMoodWeights(ctx context.Context, moodID int) (map[int]int, error)

	// GetCachedFeed returns the composed feed cached for (viewer, day,
	// mood) in position order, or ErrNotFound on a miss. A cache row
	// written under a different mood is a miss.
	GetCachedFeed(ctx context.Context, viewerID int, day time.Time, moodID int) ([]Card, error)

	// PutCachedFeed replaces any cached rows for (viewer, day) with the
	// given ordering, atomically.
	PutCachedFeed(ctx context.Context, viewerID int, day time.Time, moodID int, cards []Card) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

const cardColumns = `
	c.id, c.card_type, c.title, c.is_active, c.min_membership_level,
	c.publish_date, c.is_pinned, c.pin_start, c.pin_end, c.pin_position,
	c.reward_points, c.payload, c.created_at, c.updated_at
`

func scanCard(rows *sql.Rows) (Card, error) {
	var c Card
	err := rows.Scan(
		&c.ID,
		&c.CardType,
		&c.Title,
		&c.IsActive,
		&c.MinMembershipLevel,
		&c.PublishDate,
		&c.IsPinned,
		&c.PinStart,
		&c.PinEnd,
		&c.PinPosition,
		&c.RewardPoints,
		&c.Payload,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *repository) GetEligibleCards(ctx context.Context, membershipLevel int, day time.Time) ([]Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		WHERE c.is_active = TRUE
		  AND c.min_membership_level <= $1
		  AND (c.publish_date IS NULL OR c.publish_date <= $2::date)
		ORDER BY c.id
	`

	rows, err := r.db.QueryContext(ctx, query, membershipLevel, day)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, ErrInternalServer
		}
		cards = append(cards, c)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return cards, nil
}

func (r *repository) GetActivePinnedCards(ctx context.Context, day time.Time) ([]Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		WHERE c.is_active = TRUE
		  AND c.is_pinned = TRUE
		  AND c.pin_position IS NOT NULL
		  AND (c.pin_start IS NULL OR c.pin_start <= $1::date)
		  AND (c.pin_end IS NULL OR c.pin_end >= $1::date)
		ORDER BY c.pin_position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, ErrInternalServer
		}
		cards = append(cards, c)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return cards, nil
}

func (r *repository) GetMoodWeights(ctx context.Context, moodID int) (map[int]int, error) {
	query := `
		SELECT card_id, weight
		FROM card_mood_weights
		WHERE mood_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, moodID)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	weights := make(map[int]int)
	for rows.Next() {
		var cardID, weight int
		if err := rows.Scan(&cardID, &weight); err != nil {
			return nil, ErrInternalServer
		}
		weights[cardID] = weight
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return weights, nil
}

func (r *repository) GetCachedFeed(ctx context.Context, viewerID int, day time.Time, moodID int) ([]Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM daily_feed_cache dfc
		JOIN cards c ON c.id = dfc.card_id
		WHERE dfc.viewer_id = $1
		  AND dfc.feed_date = $2::date
		  AND dfc.mood_id = $3
		ORDER BY dfc.position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, viewerID, day, moodID)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, ErrInternalServer
		}
		cards = append(cards, c)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	// Zero rows degrades to a miss, including the window after a crash
	// between delete and insert.
	if len(cards) == 0 {
		return nil, ErrNotFound
	}

	return cards, nil
}

func (r *repository) PutCachedFeed(ctx context.Context, viewerID int, day time.Time, moodID int, cards []Card) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return ErrInternalServer
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM daily_feed_cache WHERE viewer_id = $1 AND feed_date = $2::date
	`, viewerID, day)
	if err != nil {
		return ErrInternalServer
	}

	for i, c := range cards {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO daily_feed_cache (viewer_id, feed_date, position, card_id, mood_id)
			VALUES ($1, $2::date, $3, $4, $5)
		`, viewerID, day, i+1, c.ID, moodID)
		if err != nil {
			return ErrInternalServer
		}
	}

	if err = tx.Commit(); err != nil {
		return ErrInternalServer
	}
	return nil
}
