package feed

// MaxFeedLength caps the composed feed; pins targeting positions beyond it
// are ignored.
const MaxFeedLength = 20

// ApplyPins splices operator-pinned cards into the ranked sequence and
// truncates to MaxFeedLength. Pins must arrive sorted by ascending target
// position (the repository query guarantees this); inserting in that order
// keeps every earlier pin at its configured slot.
//
// A pinned card already present in the ranked sequence is removed from its
// natural slot first so the feed never shows it twice.
func ApplyPins(ranked []Card, pins []Card) []Card {
	pinned := make(map[int]bool, len(pins))
	for _, p := range pins {
		if p.PinPosition != nil && *p.PinPosition >= 1 && *p.PinPosition <= MaxFeedLength {
			pinned[p.ID] = true
		}
	}

	out := make([]Card, 0, len(ranked)+len(pins))
	for _, c := range ranked {
		if !pinned[c.ID] {
			out = append(out, c)
		}
	}

	for _, p := range pins {
		if p.PinPosition == nil {
			continue
		}
		pos := *p.PinPosition
		if pos < 1 || pos > MaxFeedLength {
			continue
		}
		idx := pos - 1
		if idx > len(out) {
			idx = len(out)
		}
		out = append(out, Card{})
		copy(out[idx+1:], out[idx:])
		out[idx] = p
	}

	if len(out) > MaxFeedLength {
		out = out[:MaxFeedLength]
	}
	return out
}
