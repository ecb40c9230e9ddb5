package simulator

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/lox/teenpatti/poker"
)

// View is what a strategy knows when it has to act.
type View struct {
	Hand        poker.Hand
	Strength    poker.Strength
	Balance     int
	Pot         int
	ComputerBet int // the computer's most recent bet
	Raises      int // additional bets already made this round
	MaxRaise    int
}

// Strategy plays the user's side of a simulated round.
type Strategy interface {
	// OpeningBet returns the initial bet.
	OpeningBet(v View) int
	// Raise returns an additional bet, or zero to reveal.
	Raise(v View) int
}

// Strategies lists the names accepted by NewStrategy.
var Strategies = []string{"reveal", "caller", "random", "strength"}

// NewStrategy creates a named strategy. rng is only used by "random".
func NewStrategy(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case "reveal":
		return RevealStrategy{Bet: 10}, nil
	case "caller":
		return CallerStrategy{Bet: 10, MaxRaises: 3}, nil
	case "random":
		return &RandomStrategy{rng: rng, MaxOpen: 100, RaiseChance: 0.5}, nil
	case "strength":
		return StrengthStrategy{Bet: 10, MinCategory: poker.Sequence, MaxRaises: 5}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", name, Strategies)
	}
}

// ValidStrategy reports whether name is a known strategy.
func ValidStrategy(name string) bool {
	return slices.Contains(Strategies, name)
}

// RevealStrategy opens with a fixed bet and reveals at the first chance.
type RevealStrategy struct {
	Bet int
}

func (s RevealStrategy) OpeningBet(v View) int { return min(s.Bet, v.Balance) }
func (RevealStrategy) Raise(View) int          { return 0 }

// CallerStrategy matches each computer bet, up to MaxRaises times a round.
type CallerStrategy struct {
	Bet       int
	MaxRaises int
}

func (s CallerStrategy) OpeningBet(v View) int { return min(s.Bet, v.Balance) }

func (s CallerStrategy) Raise(v View) int {
	if v.Raises >= s.MaxRaises {
		return 0
	}
	return min(v.ComputerBet, v.MaxRaise, v.Balance)
}

// RandomStrategy opens with a random bet and keeps raising by coin flip.
type RandomStrategy struct {
	rng         *rand.Rand
	MaxOpen     int
	RaiseChance float64
}

func (s *RandomStrategy) OpeningBet(v View) int {
	return min(1+s.rng.IntN(s.MaxOpen), v.Balance)
}

func (s *RandomStrategy) Raise(v View) int {
	if s.rng.Float64() >= s.RaiseChance {
		return 0
	}
	return min(1+s.rng.IntN(v.MaxRaise), v.Balance)
}

// StrengthStrategy raises the computer's bet back only while holding at
// least MinCategory, and reveals otherwise.
type StrengthStrategy struct {
	Bet         int
	MinCategory poker.Category
	MaxRaises   int
}

func (s StrengthStrategy) OpeningBet(v View) int { return min(s.Bet, v.Balance) }

func (s StrengthStrategy) Raise(v View) int {
	if v.Strength.Category < s.MinCategory || v.Raises >= s.MaxRaises {
		return 0
	}
	return min(max(v.ComputerBet, s.Bet), v.MaxRaise, v.Balance)
}
