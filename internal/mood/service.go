package mood

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/auth"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/gamification"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/logging"
)

var ErrUnknownMood = errors.New("unknown or inactive mood")

// Rewarder is the gamification entry point a check-in triggers.
type Rewarder interface {
	AwardCheckIn(ctx context.Context, viewerID int, now time.Time) (*gamification.CheckInAward, error)
}

type Service struct {
	repo     Repository
	profiles auth.ProfileRepository
	rewards  Rewarder
	logger   zerolog.Logger
}

func NewService(repo Repository, profiles auth.ProfileRepository, rewards Rewarder) Service {
	return Service{
		repo:     repo,
		profiles: profiles,
		rewards:  rewards,
		logger:   logging.With("mood"),
	}
}

func (s *Service) ListMoods(ctx context.Context) ([]Mood, error) {
	return s.repo.ListActiveMoods(ctx)
}

// SyncMood appends a mood log row and updates the profile's last-sync
// fields. The feed orchestrator calls this on every mood-bearing request,
// before its cache lookup.
func (s *Service) SyncMood(ctx context.Context, viewerID, moodID int, at time.Time) error {
	if err := s.repo.AppendMoodLog(ctx, viewerID, moodID, at); err != nil {
		return err
	}
	return s.profiles.UpdateMoodSync(ctx, viewerID, moodID, at)
}

// CheckIn is the explicit daily mood check-in: it validates the mood,
// records it, and applies streak and point rewards.
func (s *Service) CheckIn(ctx context.Context, viewerID, moodID int, now time.Time) (*CheckInResult, error) {
	m, err := s.repo.GetMood(ctx, moodID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnknownMood
		}
		return nil, err
	}
	if !m.IsActive {
		return nil, ErrUnknownMood
	}

	if err := s.SyncMood(ctx, viewerID, moodID, now); err != nil {
		s.logger.Error().Err(err).
			Int("viewer_id", viewerID).
			Int("mood_id", moodID).
			Msg("failed to record check-in")
		return nil, err
	}

	award, err := s.rewards.AwardCheckIn(ctx, viewerID, now)
	if err != nil {
		return nil, err
	}

	return &CheckInResult{
		MoodID:              moodID,
		Streak:              award.Streak,
		PointsAwarded:       award.PointsAwarded,
		TotalPoints:         award.TotalPoints,
		Level:               award.Level,
		UnlockedAchievement: award.Unlocked,
	}, nil
}

// History returns the viewer's mood log for the heat-map, newest first.
func (s *Service) History(ctx context.Context, viewerID, days int) ([]MoodLog, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	return s.repo.GetMoodHistory(ctx, viewerID, since)
}
