package feed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/auth"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/logging"
)

// MoodSyncer records a viewer's mood selection: an append-only mood log row
// plus the profile's last-sync fields. Implemented by the mood service.
type MoodSyncer interface {
	SyncMood(ctx context.Context, viewerID, moodID int, at time.Time) error
}

// Service composes the daily feed: eligibility filter, mood-weighted
// deterministic ranking, pin overlay, and the per-day cache.
type Service struct {
	repo   Repository
	moods  MoodSyncer
	logger zerolog.Logger
}

func NewService(repo Repository, moods MoodSyncer) Service {
	return Service{
		repo:   repo,
		moods:  moods,
		logger: logging.With("feed"),
	}
}

// ComposeFeed handles one feed request. viewer is nil for anonymous
// requests (lowest membership tier, never cached); moodID is nil when the
// client sent no mood.
func (s *Service) ComposeFeed(ctx context.Context, viewer *auth.Viewer, moodID *int, now time.Time) ([]Card, error) {
	viewerKey := AnonymousViewerKey
	membershipLevel := auth.MembershipFree
	if viewer != nil {
		viewerKey = ViewerKey(viewer.ID)
		membershipLevel = viewer.MembershipLevel
	}

	cacheable := viewer != nil && moodID != nil

	if cacheable {
		// Mood history is recorded before the cache lookup so a hit
		// still lands in the log.
		if err := s.moods.SyncMood(ctx, viewer.ID, *moodID, now); err != nil {
			s.logger.Error().Err(err).
				Int("viewer_id", viewer.ID).
				Int("mood_id", *moodID).
				Msg("failed to record mood selection")
		}

		cached, err := s.repo.GetCachedFeed(ctx, viewer.ID, now, *moodID)
		switch {
		case err == nil:
			return cached, nil
		case errors.Is(err, ErrNotFound):
			// recompute below
		default:
			// The cache is an optimization; a broken read degrades
			// to recomputation.
			s.logger.Error().Err(err).
				Int("viewer_id", viewer.ID).
				Msg("daily feed cache read failed")
		}
	}

	eligible, err := s.repo.GetEligibleCards(ctx, membershipLevel, now)
	if err != nil {
		s.logger.Error().Err(err).
			Str("viewer", viewerKey).
			Int("membership_level", membershipLevel).
			Msg("eligibility query failed")
		return nil, err
	}

	var weights map[int]int
	if moodID != nil {
		weights, err = s.repo.GetMoodWeights(ctx, *moodID)
		if err != nil {
			s.logger.Error().Err(err).
				Int("mood_id", *moodID).
				Msg("mood weight query failed")
			return nil, err
		}
	}

	ranked := Rank(eligible, weights, DailySeed(viewerKey, now))

	pins, err := s.repo.GetActivePinnedCards(ctx, now)
	if err != nil {
		s.logger.Error().Err(err).Msg("pinned card query failed")
		return nil, err
	}

	final := ApplyPins(ranked, pins)

	if cacheable {
		if err := s.repo.PutCachedFeed(ctx, viewer.ID, now, *moodID, final); err != nil {
			s.logger.Error().Err(err).
				Int("viewer_id", viewer.ID).
				Int("cards", len(final)).
				Msg("daily feed cache write failed")
		}
	}

	return final, nil
}
