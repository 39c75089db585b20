package gamification

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
	ListAchievements(ctx context.Context) ([]Achievement, error)
	GetViewerAchievements(ctx context.Context, viewerID int) ([]ViewerAchievement, error)
	UnlockAchievement(ctx context.Context, viewerID, achievementID int) (bool, error)
	CountCheckins(ctx context.Context, viewerID int) (int64, error)
	GetCardRewardPoints(ctx context.Context, cardID int) (int, error)
	RecordCardCompletion(ctx context.Context, viewerID, cardID int, day time.Time) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func (r *repository) ListAchievements(ctx context.Context) ([]Achievement, error) {
	query := `
		SELECT id, code, name, kind, threshold
		FROM achievements
		ORDER BY threshold
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var achievements []Achievement
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.Kind, &a.Threshold); err != nil {
			return nil, ErrInternalServer
		}
		achievements = append(achievements, a)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return achievements, nil
}

func (r *repository) GetViewerAchievements(ctx context.Context, viewerID int) ([]ViewerAchievement, error) {
	query := `
		SELECT a.id, a.code, a.name, a.kind, a.threshold, va.unlocked_at
		FROM viewer_achievements va
		JOIN achievements a ON a.id = va.achievement_id
		WHERE va.viewer_id = $1
		ORDER BY va.unlocked_at
	`

	rows, err := r.db.QueryContext(ctx, query, viewerID)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var unlocked []ViewerAchievement
	for rows.Next() {
		var va ViewerAchievement
		if err := rows.Scan(
			&va.Achievement.ID,
			&va.Achievement.Code,
			&va.Achievement.Name,
			&va.Achievement.Kind,
			&va.Achievement.Threshold,
			&va.UnlockedAt,
		); err != nil {
			return nil, ErrInternalServer
		}
		unlocked = append(unlocked, va)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return unlocked, nil
}

// UnlockAchievement records an unlock, returning false when the viewer
// already has it.
func (r *repository) UnlockAchievement(ctx context.Context, viewerID, achievementID int) (bool, error) {
	query := `
		INSERT INTO viewer_achievements (viewer_id, achievement_id)
		VALUES ($1, $2)
		ON CONFLICT (viewer_id, achievement_id) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query, viewerID, achievementID)
	if err != nil {
		return false, ErrInternalServer
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, ErrInternalServer
	}
	return n > 0, nil
}

func (r *repository) CountCheckins(ctx context.Context, viewerID int) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM mood_logs WHERE viewer_id = $1
	`, viewerID).Scan(&n)
	if err != nil {
		return 0, ErrInternalServer
	}
	return n, nil
}

func (r *repository) GetCardRewardPoints(ctx context.Context, cardID int) (int, error) {
	var points int
	err := r.db.QueryRowContext(ctx, `
		SELECT reward_points FROM cards WHERE id = $1 AND is_active = TRUE
	`, cardID).Scan(&points)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, ErrInternalServer
	}
	return points, nil
}

// RecordCardCompletion returns false when the viewer already completed the
// card that day; the reward is only paid once per card per day.
func (r *repository) RecordCardCompletion(ctx context.Context, viewerID, cardID int, day time.Time) (bool, error) {
	query := `
		INSERT INTO card_completions (viewer_id, card_id, completed_on)
		VALUES ($1, $2, $3)
		ON CONFLICT (viewer_id, card_id, completed_on) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query, viewerID, cardID, day)
	if err != nil {
		return false, ErrInternalServer
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, ErrInternalServer
	}
	return n > 0, nil
}
