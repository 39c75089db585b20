package feed

import (
	"hash/fnv"
	"math/rand"
	"sort"
	"strconv"
	"time"
)

// moodLedCount is how many top-weighted cards lead the feed when a mood
// is supplied.
const moodLedCount = 5

// AnonymousViewerKey seeds the shuffle for requests without a session.
const AnonymousViewerKey = "anonymous"

const dayLayout = "2006-01-02"

// ViewerKey returns the seed key for an authenticated viewer.
func ViewerKey(viewerID int) string {
	return strconv.Itoa(viewerID)
}

// DailySeed derives the shuffle seed from viewer identity and calendar day
// only, so the ordering is stable for a viewer within a day and changes the
// next day.
func DailySeed(viewerKey string, day time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(viewerKey))
	h.Write([]byte{'|'})
	h.Write([]byte(day.Format(dayLayout)))
	return int64(h.Sum64())
}

// Rank orders the candidate cards. The whole list is first permuted with
// the seeded shuffle; with a mood, a stable sort by descending weight then
// pulls the strongest cards to the front, so ties keep their shuffled
// relative order. The first moodLedCount cards are mood-led, the remainder
// stays in shuffled order. Nothing is added or dropped.
func Rank(cards []Card, weights map[int]int, seed int64) []Card {
	ranked := make([]Card, len(cards))
	copy(ranked, cards)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(ranked), func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	})

	if weights == nil {
		return ranked
	}

	if len(ranked) <= moodLedCount {
		// Everything is mood-led; the shuffle operated on an empty
		// remainder.
		sort.SliceStable(ranked, func(i, j int) bool {
			return weights[ranked[i].ID] > weights[ranked[j].ID]
		})
		return ranked
	}

	// Pick the top cards by weight without disturbing the shuffled order
	// of the rest.
	byWeight := make([]Card, len(ranked))
	copy(byWeight, ranked)
	sort.SliceStable(byWeight, func(i, j int) bool {
		return weights[byWeight[i].ID] > weights[byWeight[j].ID]
	})

	moodLed := byWeight[:moodLedCount]
	leading := make(map[int]bool, moodLedCount)
	for _, c := range moodLed {
		leading[c.ID] = true
	}

	out := make([]Card, 0, len(ranked))
	out = append(out, moodLed...)
	for _, c := range ranked {
		if !leading[c.ID] {
			out = append(out, c)
		}
	}
	return out
}
