package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/database"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInternalServer  = errors.New("internal server error")
)

// ProfileRepository covers the profile reads and writes the feed and mood
// subsystems need. Profile creation belongs to the auth provider and is out
// of scope here.
type ProfileRepository interface {
	GetProfile(ctx context.Context, viewerID int) (*Profile, error)
	UpdateMoodSync(ctx context.Context, viewerID, moodID int, at time.Time) error
	UpdateStreak(ctx context.Context, viewerID, streak int, checkinDate time.Time) error
	AddPoints(ctx context.Context, viewerID int, points int) (int64, error)
}

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(dbService database.Service) ProfileRepository {
	return &profileRepository{db: dbService.DB()}
}

func (r *profileRepository) GetProfile(ctx context.Context, viewerID int) (*Profile, error) {
	query := `
		SELECT id, user_name, membership_level, points, current_streak,
		       last_checkin_date, last_mood_id, last_mood_sync_at,
		       created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var p Profile
	err := r.db.QueryRowContext(ctx, query, viewerID).Scan(
		&p.ID,
		&p.UserName,
		&p.MembershipLevel,
		&p.Points,
		&p.CurrentStreak,
		&p.LastCheckinDate,
		&p.LastMoodID,
		&p.LastMoodSyncAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternalServer
	}
	return &p, nil
}

func (r *profileRepository) UpdateMoodSync(ctx context.Context, viewerID, moodID int, at time.Time) error {
	query := `
		UPDATE profiles
		SET last_mood_id = $2, last_mood_sync_at = $3, updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, viewerID, moodID, at)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *profileRepository) UpdateStreak(ctx context.Context, viewerID, streak int, checkinDate time.Time) error {
	query := `
		UPDATE profiles
		SET current_streak = $2, last_checkin_date = $3, updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, viewerID, streak, checkinDate)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *profileRepository) AddPoints(ctx context.Context, viewerID int, points int) (int64, error) {
	query := `
		UPDATE profiles
		SET points = points + $2, updated_at = now()
		WHERE id = $1
		RETURNING points
	`
	var total int64
	err := r.db.QueryRowContext(ctx, query, viewerID, points).Scan(&total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrProfileNotFound
		}
		return 0, ErrInternalServer
	}
	return total, nil
}
