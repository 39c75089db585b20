package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/auth"
)

type fakeRepo struct {
	eligible    []Card
	eligibleErr error
	pins        []Card
	pinsErr     error
	weights     map[int]int
	weightsErr  error

	cached   []Card
	cacheErr error
	putErr   error

	getCalls int
	putCalls int
	lastPut  []Card
	putMood  int
}

func (f *fakeRepo) GetEligibleCards(ctx context.Context, level int, day time.Time) ([]Card, error) {
	return f.eligible, f.eligibleErr
}

func (f *fakeRepo) GetActivePinnedCards(ctx context.Context, day time.Time) ([]Card, error) {
	return f.pins, f.pinsErr
}

func (f *fakeRepo) GetMoodWeights(ctx context.Context, moodID int) (map[int]int, error) {
	if f.weightsErr != nil {
		return nil, f.weightsErr
	}
	if f.weights == nil {
		return map[int]int{}, nil
	}
	return f.weights, nil
}

func (f *fakeRepo) GetCachedFeed(ctx context.Context, viewerID int, day time.Time, moodID int) ([]Card, error) {
	f.getCalls++
	if f.cacheErr != nil {
		return nil, f.cacheErr
	}
	if f.cached == nil {
		return nil, ErrNotFound
	}
	return f.cached, nil
}

func (f *fakeRepo) PutCachedFeed(ctx context.Context, viewerID int, day time.Time, moodID int, cards []Card) error {
	f.putCalls++
	f.putMood = moodID
	if f.putErr != nil {
		return f.putErr
	}
	f.lastPut = cards
	f.cached = cards
	return nil
}

type fakeSyncer struct {
	calls int
	err   error
}

func (f *fakeSyncer) SyncMood(ctx context.Context, viewerID, moodID int, at time.Time) error {
	f.calls++
	return f.err
}

func intPtr(n int) *int { return &n }

var testDay = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestComposeFeedCacheHitShortCircuits(t *testing.T) {
	repo := &fakeRepo{
		cached:      makeCards(3),
		eligibleErr: errors.New("eligibility must not run on a hit"),
	}
	syncer := &fakeSyncer{}
	svc := NewService(repo, syncer)

	viewer := &auth.Viewer{ID: 7, MembershipLevel: 1}
	out, err := svc.ComposeFeed(context.Background(), viewer, intPtr(2), testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Errorf("got %d cards, want cached 3", len(out))
	}
	if syncer.calls != 1 {
		t.Errorf("mood sync calls = %d, want 1 (recorded even on a hit)", syncer.calls)
	}
}

func TestComposeFeedMissComposesAndCaches(t *testing.T) {
	repo := &fakeRepo{eligible: makeCards(8)}
	syncer := &fakeSyncer{}
	svc := NewService(repo, syncer)

	viewer := &auth.Viewer{ID: 7, MembershipLevel: 1}
	out, err := svc.ComposeFeed(context.Background(), viewer, intPtr(2), testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 8 {
		t.Errorf("got %d cards, want 8", len(out))
	}
	if repo.putCalls != 1 {
		t.Errorf("cache writes = %d, want 1", repo.putCalls)
	}
	if repo.putMood != 2 {
		t.Errorf("cache written under mood %d, want 2", repo.putMood)
	}
	if !sameOrder(idsOf(repo.lastPut), idsOf(out)) {
		t.Error("cached ordering differs from the response")
	}
}

func TestComposeFeedAnonymousNeverCached(t *testing.T) {
	repo := &fakeRepo{eligible: makeCards(4)}
	svc := NewService(repo, &fakeSyncer{})

	out, err := svc.ComposeFeed(context.Background(), nil, intPtr(2), testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 4 {
		t.Errorf("got %d cards, want 4", len(out))
	}
	if repo.getCalls != 0 || repo.putCalls != 0 {
		t.Errorf("anonymous request touched the cache: get=%d put=%d", repo.getCalls, repo.putCalls)
	}
}

func TestComposeFeedMoodlessNeverCached(t *testing.T) {
	repo := &fakeRepo{eligible: makeCards(4)}
	syncer := &fakeSyncer{}
	svc := NewService(repo, syncer)

	viewer := &auth.Viewer{ID: 7, MembershipLevel: 1}
	if _, err := svc.ComposeFeed(context.Background(), viewer, nil, testDay); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.getCalls != 0 || repo.putCalls != 0 {
		t.Errorf("mood-less request touched the cache: get=%d put=%d", repo.getCalls, repo.putCalls)
	}
	if syncer.calls != 0 {
		t.Errorf("mood sync ran without a mood: %d calls", syncer.calls)
	}
}

func TestComposeFeedCacheWriteFailureSwallowed(t *testing.T) {
	repo := &fakeRepo{
		eligible: makeCards(5),
		putErr:   errors.New("disk on fire"),
	}
	svc := NewService(repo, &fakeSyncer{})

	viewer := &auth.Viewer{ID: 7, MembershipLevel: 1}
	out, err := svc.ComposeFeed(context.Background(), viewer, intPtr(1), testDay)
	if err != nil {
		t.Fatalf("cache write failure leaked to caller: %v", err)
	}
	if len(out) != 5 {
		t.Errorf("got %d cards, want 5", len(out))
	}
}

func TestComposeFeedCacheReadFailureRecomputes(t *testing.T) {
	repo := &fakeRepo{
		eligible: makeCards(5),
		cacheErr: ErrInternalServer,
	}
	svc := NewService(repo, &fakeSyncer{})

	viewer := &auth.Viewer{ID: 7, MembershipLevel: 1}
	out, err := svc.ComposeFeed(context.Background(), viewer, intPtr(1), testDay)
	if err != nil {
		t.Fatalf("cache read failure leaked to caller: %v", err)
	}
	if len(out) != 5 {
		t.Errorf("got %d cards, want 5", len(out))
	}
}

func TestComposeFeedEligibilityFailureIsFatal(t *testing.T) {
	repo := &fakeRepo{eligibleErr: ErrInternalServer}
	svc := NewService(repo, &fakeSyncer{})

	_, err := svc.ComposeFeed(context.Background(), nil, nil, testDay)
	if err == nil {
		t.Fatal("expected error when the eligibility query fails")
	}
}

func TestComposeFeedEmptyResultIsNotError(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeSyncer{})

	out, err := svc.ComposeFeed(context.Background(), nil, nil, testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d cards, want 0", len(out))
	}
}

func TestComposeFeedMoodSyncFailureDoesNotBlockFeed(t *testing.T) {
	repo := &fakeRepo{eligible: makeCards(3)}
	syncer := &fakeSyncer{err: errors.New("log table missing")}
	svc := NewService(repo, syncer)

	viewer := &auth.Viewer{ID: 7, MembershipLevel: 1}
	out, err := svc.ComposeFeed(context.Background(), viewer, intPtr(1), testDay)
	if err != nil {
		t.Fatalf("mood sync failure leaked to caller: %v", err)
	}
	if len(out) != 3 {
		t.Errorf("got %d cards, want 3", len(out))
	}
}

func TestComposeFeedAppliesPinsAndTruncates(t *testing.T) {
	repo := &fakeRepo{
		eligible: makeCards(30),
		pins:     []Card{pin(500, 2)},
	}
	svc := NewService(repo, &fakeSyncer{})

	out, err := svc.ComposeFeed(context.Background(), nil, nil, testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != MaxFeedLength {
		t.Errorf("got %d cards, want %d", len(out), MaxFeedLength)
	}
	if out[1].ID != 500 {
		t.Errorf("pinned card at index %d, want index 1", indexOf(out, 500))
	}
}
