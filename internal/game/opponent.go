package game

import "fmt"

// ActionKind is what the computer chose to do on its turn.
type ActionKind int

const (
	ActionBet ActionKind = iota
	ActionReveal
)

// String returns "bet" or "reveal".
func (k ActionKind) String() string {
	switch k {
	case ActionBet:
		return "bet"
	case ActionReveal:
		return "reveal"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// ComputerAction is a single decision by the computer opponent.
type ComputerAction struct {
	Kind   ActionKind
	Amount int // coins bet, zero for a reveal
}

// Opponent decides the computer's move. hasBet reports whether the computer
// has already bet this round; balance is its current balance.
type Opponent interface {
	Decide(hasBet bool, balance int) ComputerAction
}

// OpponentFunc adapts a function to the Opponent interface.
type OpponentFunc func(hasBet bool, balance int) ComputerAction

// Decide calls f.
func (f OpponentFunc) Decide(hasBet bool, balance int) ComputerAction {
	return f(hasBet, balance)
}

// Source is the randomness the computer policy needs. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// OpponentOptions tunes RandomOpponent.
type OpponentOptions struct {
	MinBet         int
	MaxBet         int
	BetProbability float64 // chance of betting again once already in
}

// DefaultOpponentOptions returns the classic policy: bets between 1 and 500,
// betting again 70% of the time.
func DefaultOpponentOptions() OpponentOptions {
	return OpponentOptions{MinBet: 1, MaxBet: 500, BetProbability: 0.7}
}

// RandomOpponent always opens with a bet, then keeps betting with a fixed
// probability and otherwise calls for the reveal. It never looks at its cards.
type RandomOpponent struct {
	rng  Source
	opts OpponentOptions
}

// NewRandomOpponent creates the probabilistic computer policy.
func NewRandomOpponent(rng Source, opts OpponentOptions) *RandomOpponent {
	if opts.MaxBet < opts.MinBet {
		opts.MaxBet = opts.MinBet
	}
	return &RandomOpponent{rng: rng, opts: opts}
}

// Decide implements Opponent.
func (o *RandomOpponent) Decide(hasBet bool, balance int) ComputerAction {
	if hasBet && o.rng.Float64() >= o.opts.BetProbability {
		return ComputerAction{Kind: ActionReveal}
	}
	return ComputerAction{Kind: ActionBet, Amount: o.betAmount(balance)}
}

// betAmount draws uniformly from [MinBet, MaxBet] and caps it at balance
func (o *RandomOpponent) betAmount(balance int) int {
	amount := o.opts.MinBet + o.rng.IntN(o.opts.MaxBet-o.opts.MinBet+1)
	return max(min(amount, balance), 0)
}
