package mood

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

type Repository interface {
	ListActiveMoods(ctx context.Context) ([]Mood, error)
	GetMood(ctx context.Context, moodID int) (*Mood, error)
	AppendMoodLog(ctx context.Context, viewerID, moodID int, at time.Time) error
	GetMoodHistory(ctx context.Context, viewerID int, since time.Time) ([]MoodLog, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func (r *repository) ListActiveMoods(ctx context.Context) ([]Mood, error) {
	query := `
		SELECT id, name, emoji, color, is_active
		FROM moods
		WHERE is_active = TRUE
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var moods []Mood
	for rows.Next() {
		var m Mood
		if err := rows.Scan(&m.ID, &m.Name, &m.Emoji, &m.Color, &m.IsActive); err != nil {
			return nil, ErrInternalServer
		}
		moods = append(moods, m)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return moods, nil
}

func (r *repository) GetMood(ctx context.Context, moodID int) (*Mood, error) {
	query := `
		SELECT id, name, emoji, color, is_active
		FROM moods
		WHERE id = $1
	`

	var m Mood
	err := r.db.QueryRowContext(ctx, query, moodID).Scan(&m.ID, &m.Name, &m.Emoji, &m.Color, &m.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ErrInternalServer
	}
	return &m, nil
}

func (r *repository) AppendMoodLog(ctx context.Context, viewerID, moodID int, at time.Time) error {
	query := `
		INSERT INTO mood_logs (viewer_id, mood_id, logged_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, viewerID, moodID, at)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) GetMoodHistory(ctx context.Context, viewerID int, since time.Time) ([]MoodLog, error) {
	query := `
		SELECT ml.id, ml.mood_id, ml.logged_at,
		       m.id, m.name, m.emoji, m.color, m.is_active
		FROM mood_logs ml
		JOIN moods m ON m.id = ml.mood_id
		WHERE ml.viewer_id = $1
		  AND ml.logged_at >= $2
		ORDER BY ml.logged_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, viewerID, since)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var logs []MoodLog
	for rows.Next() {
		var l MoodLog
		if err := rows.Scan(
			&l.ID,
			&l.MoodID,
			&l.LoggedAt,
			&l.Mood.ID,
			&l.Mood.Name,
			&l.Mood.Emoji,
			&l.Mood.Color,
			&l.Mood.IsActive,
		); err != nil {
			return nil, ErrInternalServer
		}
		logs = append(logs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return logs, nil
}
