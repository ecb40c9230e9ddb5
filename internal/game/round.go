package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/teenpatti/poker"
)

// Phase is a state of the per-round betting machine.
type Phase int

const (
	PhaseDealt Phase = iota
	PhaseUserInitialBet
	PhaseAwaitConsent
	PhaseComputerTurn
	PhaseUserTurn
	PhaseRevealed
	PhaseAborted
)

// String returns the phase name used in logs and histories.
func (p Phase) String() string {
	switch p {
	case PhaseDealt:
		return "dealt"
	case PhaseUserInitialBet:
		return "user-initial-bet"
	case PhaseAwaitConsent:
		return "await-consent"
	case PhaseComputerTurn:
		return "computer-turn"
	case PhaseUserTurn:
		return "user-turn"
	case PhaseRevealed:
		return "revealed"
	case PhaseAborted:
		return "aborted"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Terminal reports whether the round is over.
func (p Phase) Terminal() bool {
	return p == PhaseRevealed || p == PhaseAborted
}

// TiePolicy decides who collects the pot when both hands are equally strong.
type TiePolicy int

const (
	// TieFavorsComputer awards a tied pot to the computer.
	TieFavorsComputer TiePolicy = iota
	// TieSplitsPot divides a tied pot, odd coin to the computer.
	TieSplitsPot
)

// Rules are the per-round limits that do not change during a game.
type Rules struct {
	MaxRaise  int // cap on each additional user bet
	TiePolicy TiePolicy
}

// DefaultRules returns a 500 coin raise cap with ties going to the computer.
func DefaultRules() Rules {
	return Rules{MaxRaise: 500, TiePolicy: TieFavorsComputer}
}

// Bet is one entry in a round's betting sequence.
type Bet struct {
	Party  Party `json:"party"`
	Amount int   `json:"amount"`
}

// Outcome is the result of a revealed round.
type Outcome struct {
	Winner           Party
	Tie              bool // both hands had identical strength
	Split            bool // the pot was divided rather than awarded
	Reason           string
	UserStrength     poker.Strength
	ComputerStrength poker.Strength
	Pot              int // pot size at the reveal
	UserPayout       int
	ComputerPayout   int
	RevealedBy       Party
}

// Round is the betting state machine for one deal. It reads no input and
// writes no output; callers feed it already-read responses.
type Round struct {
	Number       int
	UserHand     poker.Hand
	ComputerHand poker.Hand

	state          *GameState
	opponent       Opponent
	phase          Phase
	computerHasBet bool
	bets           []Bet
	outcome        *Outcome
}

// NewRound deals a round from the shared deck, the user's hand first. If
// fewer than two hands remain it returns ErrDeckExhausted without drawing.
func NewRound(state *GameState, opponent Opponent) (*Round, error) {
	if state.Deck.Remaining() < 2*poker.HandSize {
		return nil, ErrDeckExhausted
	}
	userHand, err := state.Deck.DrawHand()
	if err != nil {
		return nil, fmt.Errorf("deal user hand: %w", err)
	}
	computerHand, err := state.Deck.DrawHand()
	if err != nil {
		return nil, fmt.Errorf("deal computer hand: %w", err)
	}

	state.Rounds++
	return &Round{
		Number:       state.Rounds,
		UserHand:     userHand,
		ComputerHand: computerHand,
		state:        state,
		opponent:     opponent,
		phase:        PhaseDealt,
	}, nil
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Bets returns the bets placed so far this round.
func (r *Round) Bets() []Bet {
	return append([]Bet(nil), r.bets...)
}

// Outcome returns the result once the round is revealed.
func (r *Round) Outcome() (Outcome, bool) {
	if r.outcome == nil {
		return Outcome{}, false
	}
	return *r.outcome, true
}

// Ledger returns the ledger the round bets against.
func (r *Round) Ledger() *Ledger {
	return r.state.Ledger
}

// Rules returns the rules in force for the round.
func (r *Round) Rules() Rules {
	return r.state.Rules
}

// Open moves a dealt round to the initial bet, once the user has seen their cards.
func (r *Round) Open() error {
	if err := r.expect("Open", PhaseDealt); err != nil {
		return err
	}
	r.phase = PhaseUserInitialBet
	return nil
}

// PlaceInitialBet handles the user's opening bet. Anything that is not a
// whole number in [0, balance] aborts the round with the ledger untouched.
func (r *Round) PlaceInitialBet(input string) error {
	if err := r.expect("PlaceInitialBet", PhaseUserInitialBet); err != nil {
		return err
	}
	amount, err := ParseAmount(input)
	if err == nil {
		err = r.state.Ledger.PlaceBet(User, amount)
	}
	if err != nil {
		r.phase = PhaseAborted
		return err
	}
	r.bets = append(r.bets, Bet{Party: User, Amount: amount})
	r.phase = PhaseAwaitConsent
	return nil
}

// Consent records whether the user is ready for the computer to act.
// Declining aborts the round and leaves the pot for the next one.
func (r *Round) Consent(ready bool) error {
	if err := r.expect("Consent", PhaseAwaitConsent); err != nil {
		return err
	}
	if ready {
		r.phase = PhaseComputerTurn
	} else {
		r.phase = PhaseAborted
	}
	return nil
}

// ComputerAct asks the opponent for its move and applies it. A bet hands the
// turn to the user; a reveal settles the round.
func (r *Round) ComputerAct() (ComputerAction, error) {
	if err := r.expect("ComputerAct", PhaseComputerTurn); err != nil {
		return ComputerAction{}, err
	}
	ledger := r.state.Ledger
	action := r.opponent.Decide(r.computerHasBet, ledger.Balance(Computer))

	switch action.Kind {
	case ActionBet:
		action.Amount = max(min(action.Amount, ledger.Balance(Computer)), 0)
		if err := ledger.PlaceBet(Computer, action.Amount); err != nil {
			return ComputerAction{}, fmt.Errorf("computer bet: %w", err)
		}
		r.computerHasBet = true
		r.bets = append(r.bets, Bet{Party: Computer, Amount: action.Amount})
		r.phase = PhaseUserTurn
	case ActionReveal:
		r.reveal(Computer)
	default:
		return ComputerAction{}, fmt.Errorf("unknown computer action %s", action.Kind)
	}
	return action, nil
}

// UserBet handles an additional bet from the user's menu. Invalid amounts
// leave the phase unchanged so the user can try again.
func (r *Round) UserBet(input string) (int, error) {
	if err := r.expect("UserBet", PhaseUserTurn); err != nil {
		return 0, err
	}
	amount, err := ParseAmount(input)
	if err != nil {
		return 0, err
	}
	if amount < 1 || amount > r.state.Rules.MaxRaise {
		return 0, fmt.Errorf("%w: %d is outside 1-%d", ErrInvalidBetAmount, amount, r.state.Rules.MaxRaise)
	}
	if err := r.state.Ledger.PlaceBet(User, amount); err != nil {
		return 0, err
	}
	r.bets = append(r.bets, Bet{Party: User, Amount: amount})
	r.phase = PhaseAwaitConsent
	return amount, nil
}

// Reveal is the user's choice to show both hands and settle the pot.
func (r *Round) Reveal() (Outcome, error) {
	if err := r.expect("Reveal", PhaseUserTurn); err != nil {
		return Outcome{}, err
	}
	return r.reveal(User), nil
}

// reveal evaluates both hands and settles the pot
func (r *Round) reveal(by Party) Outcome {
	ledger := r.state.Ledger
	out := Outcome{
		UserStrength:     poker.Evaluate(r.UserHand),
		ComputerStrength: poker.Evaluate(r.ComputerHand),
		Pot:              ledger.Pot(),
		RevealedBy:       by,
	}

	cmp := out.UserStrength.Compare(out.ComputerStrength)
	out.Tie = cmp == 0
	switch {
	case cmp > 0:
		out.Winner = User
		out.Reason = out.UserStrength.Label
		out.UserPayout = ledger.Settle(User)
	case out.Tie && r.state.Rules.TiePolicy == TieSplitsPot:
		out.Split = true
		out.Winner = Computer
		out.Reason = "Tie: " + out.UserStrength.Label
		out.UserPayout, out.ComputerPayout = ledger.Split()
	default:
		out.Winner = Computer
		out.Reason = out.ComputerStrength.Label
		out.ComputerPayout = ledger.Settle(Computer)
	}

	r.outcome = &out
	r.phase = PhaseRevealed
	return out
}

func (r *Round) expect(op string, want Phase) error {
	if r.phase != want {
		return fmt.Errorf("%w: %s during %s", ErrWrongPhase, op, r.phase)
	}
	return nil
}

// ParseAmount parses a whole number of coins. Negative numbers parse but are
// rejected by the ledger and the raise limits.
func ParseAmount(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, strings.TrimSpace(input))
	}
	return n, nil
}
