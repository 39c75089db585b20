package gamification

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/auth"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/logging"
)

type Service struct {
	repo     Repository
	profiles auth.ProfileRepository
	logger   zerolog.Logger
}

func NewService(repo Repository, profiles auth.ProfileRepository) Service {
	return Service{
		repo:     repo,
		profiles: profiles,
		logger:   logging.With("gamification"),
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AwardCheckIn maintains the daily streak and pays check-in points. Only
// the first check-in of a day counts; repeats return the current state
// with no award.
func (s *Service) AwardCheckIn(ctx context.Context, viewerID int, now time.Time) (*CheckInAward, error) {
	profile, err := s.profiles.GetProfile(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	if profile.LastCheckinDate != nil && sameDay(*profile.LastCheckinDate, now) {
		return &CheckInAward{
			Streak:      profile.CurrentStreak,
			TotalPoints: profile.Points,
			Level:       LevelFor(profile.Points),
		}, nil
	}

	streak := 1
	if profile.LastCheckinDate != nil && sameDay(profile.LastCheckinDate.AddDate(0, 0, 1), now) {
		streak = profile.CurrentStreak + 1
	}

	if err := s.profiles.UpdateStreak(ctx, viewerID, streak, now); err != nil {
		return nil, err
	}

	total, err := s.profiles.AddPoints(ctx, viewerID, CheckInPoints)
	if err != nil {
		return nil, err
	}

	unlocked, err := s.evaluateAchievements(ctx, viewerID, total, streak)
	if err != nil {
		// Achievements are decoration; the check-in itself succeeded.
		s.logger.Error().Err(err).Int("viewer_id", viewerID).Msg("achievement evaluation failed")
		unlocked = nil
	}

	return &CheckInAward{
		Streak:        streak,
		PointsAwarded: CheckInPoints,
		TotalPoints:   total,
		Level:         LevelFor(total),
		Unlocked:      unlocked,
	}, nil
}

// CompleteCard pays the card's reward points once per viewer/card/day.
func (s *Service) CompleteCard(ctx context.Context, viewerID, cardID int, now time.Time) (*CompletionAward, error) {
	points, err := s.repo.GetCardRewardPoints(ctx, cardID)
	if err != nil {
		return nil, err
	}

	first, err := s.repo.RecordCardCompletion(ctx, viewerID, cardID, now)
	if err != nil {
		return nil, err
	}

	if !first {
		profile, err := s.profiles.GetProfile(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		return &CompletionAward{
			CardID:      cardID,
			TotalPoints: profile.Points,
			Level:       LevelFor(profile.Points),
			AlreadyDone: true,
		}, nil
	}

	total, err := s.profiles.AddPoints(ctx, viewerID, points)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetProfile(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	unlocked, err := s.evaluateAchievements(ctx, viewerID, total, profile.CurrentStreak)
	if err != nil {
		s.logger.Error().Err(err).Int("viewer_id", viewerID).Msg("achievement evaluation failed")
		unlocked = nil
	}

	return &CompletionAward{
		CardID:        cardID,
		PointsAwarded: points,
		TotalPoints:   total,
		Level:         LevelFor(total),
		Unlocked:      unlocked,
	}, nil
}

func (s *Service) Summary(ctx context.Context, viewerID int) (*Summary, error) {
	profile, err := s.profiles.GetProfile(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.repo.GetViewerAchievements(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if achievements == nil {
		achievements = []ViewerAchievement{}
	}

	return &Summary{
		Points:       profile.Points,
		Level:        LevelFor(profile.Points),
		Progress:     ProgressFor(profile.Points),
		Streak:       profile.CurrentStreak,
		Achievements: achievements,
	}, nil
}

// evaluateAchievements unlocks every achievement whose threshold the viewer
// now meets, returning the codes unlocked by this call.
func (s *Service) evaluateAchievements(ctx context.Context, viewerID int, points int64, streak int) ([]string, error) {
	all, err := s.repo.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}

	var checkins int64 = -1
	var unlocked []string
	for _, a := range all {
		var current int64
		switch a.Kind {
		case KindPoints:
			current = points
		case KindStreak:
			current = int64(streak)
		case KindCheckins:
			if checkins < 0 {
				checkins, err = s.repo.CountCheckins(ctx, viewerID)
				if err != nil {
					return unlocked, err
				}
			}
			current = checkins
		default:
			continue
		}

		if current < a.Threshold {
			continue
		}

		fresh, err := s.repo.UnlockAchievement(ctx, viewerID, a.ID)
		if err != nil {
			return unlocked, err
		}
		if fresh {
			unlocked = append(unlocked, a.Code)
		}
	}

	return unlocked, nil
}
