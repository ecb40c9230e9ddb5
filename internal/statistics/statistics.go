// Package statistics accumulates results of simulated games.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult is the outcome of one simulated game, seen from the user's side.
type GameResult struct {
	Seed          int64 // RNG seed for this game (for replay)
	Rounds        int
	Revealed      int
	Aborted       int
	UserWins      int
	ComputerWins  int
	Ties          int // included in ComputerWins unless the pot was split
	SplitPots     int
	Net           int // user's final balance minus the starting balance
	BiggestPot    int
	UserBusted    bool
	ComputerBust  bool
	Reshuffles    int
	HitRoundLimit bool
}

// Statistics tracks results across many games.
type Statistics struct {
	Games   int
	SumNet  float64
	SumNet2 float64   // sum of squares for variance calculation
	Values  []float64 // every game's net result, for median and percentiles

	Rounds       int
	Revealed     int
	Aborted      int
	UserWins     int
	ComputerWins int
	Ties         int
	SplitPots    int

	UserBusts     int
	ComputerBusts int
	RoundLimited  int
	Reshuffles    int

	MaxPot  int
	MaxWin  int
	MaxLoss int
}

// Add incorporates a game result.
func (s *Statistics) Add(r GameResult) {
	net := float64(r.Net)
	s.Games++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	s.Rounds += r.Rounds
	s.Revealed += r.Revealed
	s.Aborted += r.Aborted
	s.UserWins += r.UserWins
	s.ComputerWins += r.ComputerWins
	s.Ties += r.Ties
	s.SplitPots += r.SplitPots
	s.Reshuffles += r.Reshuffles

	if r.UserBusted {
		s.UserBusts++
	}
	if r.ComputerBust {
		s.ComputerBusts++
	}
	if r.HitRoundLimit {
		s.RoundLimited++
	}

	s.MaxPot = max(s.MaxPot, r.BiggestPot)
	s.MaxWin = max(s.MaxWin, r.Net)
	s.MaxLoss = min(s.MaxLoss, r.Net)
}

// Mean returns the average net coins per game.
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumNet / float64(s.Games)
}

// Variance returns the sample variance of net results.
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median net result.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the net result at p (0.0 to 1.0), interpolating
// between neighbouring values.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the share of revealed rounds the user won.
func (s *Statistics) WinRate() float64 {
	if s.Revealed == 0 {
		return 0
	}
	return float64(s.UserWins) / float64(s.Revealed)
}

// RoundsPerGame returns the average game length.
func (s *Statistics) RoundsPerGame() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Rounds) / float64(s.Games)
}

// Validate checks that the counters agree with each other.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)", len(s.Values), s.Games)
	}
	if s.Revealed+s.Aborted != s.Rounds {
		return fmt.Errorf("revealed (%d) + aborted (%d) does not match rounds (%d)", s.Revealed, s.Aborted, s.Rounds)
	}
	if s.UserWins+s.ComputerWins+s.SplitPots != s.Revealed {
		return fmt.Errorf("wins (%d user, %d computer, %d split) do not match revealed rounds (%d)",
			s.UserWins, s.ComputerWins, s.SplitPots, s.Revealed)
	}
	if s.SplitPots > s.Ties {
		return fmt.Errorf("split pots (%d) exceed ties (%d)", s.SplitPots, s.Ties)
	}
	return nil
}
