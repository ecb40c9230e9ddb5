package poker

import "slices"

// Category enumerates three-card hand classes from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	Flush
	Sequence
	PureSequence
	Trail
)

// String returns the human-readable reason shown when a hand wins.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case Flush:
		return "Flush"
	case Sequence:
		return "Sequence (Straight)"
	case PureSequence:
		return "Pure Sequence (Straight Flush)"
	case Trail:
		return "Trail (Three of a Kind)"
	default:
		return "Unknown"
	}
}

// Strength describes how strong a hand is. Strengths order by Category and
// then by Tiebreak; Label is informational only.
type Strength struct {
	Category Category
	Tiebreak uint8 // decisive rank ordinal
	Label    string
}

// Compare returns -1, 0 or +1 as s is weaker than, equal to or stronger than o.
func (s Strength) Compare(o Strength) int {
	switch {
	case s.Category != o.Category:
		if s.Category < o.Category {
			return -1
		}
		return 1
	case s.Tiebreak < o.Tiebreak:
		return -1
	case s.Tiebreak > o.Tiebreak:
		return 1
	default:
		return 0
	}
}

// Beats reports whether s is strictly stronger than o.
func (s Strength) Beats(o Strength) bool {
	return s.Compare(o) > 0
}

// String returns the label and the decisive rank, e.g. "Pair (9)".
func (s Strength) String() string {
	return s.Label + " (" + RankLabel(s.Tiebreak) + ")"
}

// Evaluate classifies a three-card hand. The first matching rule wins:
// trail, pure sequence, sequence, flush, pair, high card. A sequence is any
// hand whose sorted ranks span exactly two, so 4-4-6 counts as one. Ranks are
// not cyclic, so A-2-3 is never a sequence.
func Evaluate(h Hand) Strength {
	ranks := [HandSize]uint8{h[0].Rank(), h[1].Rank(), h[2].Rank()}
	slices.Sort(ranks[:])
	low, mid, high := ranks[0], ranks[1], ranks[2]

	sameSuit := h[0].Suit() == h[1].Suit() && h[1].Suit() == h[2].Suit()
	distinct := low != mid && mid != high
	consecutive := high-low == 2

	var cat Category
	tiebreak := high
	switch {
	case low == high:
		cat = Trail
	case sameSuit && consecutive:
		cat = PureSequence
	case consecutive:
		cat = Sequence
	case sameSuit:
		cat = Flush
	case !distinct:
		// with ranks sorted the paired rank is always in the middle
		cat = Pair
		tiebreak = mid
	default:
		cat = HighCard
	}

	return Strength{Category: cat, Tiebreak: tiebreak, Label: cat.String()}
}
