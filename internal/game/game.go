package game

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/teenpatti/poker"
)

// DeckPolicy decides what happens when the deck can no longer deal a round.
type DeckPolicy int

const (
	// DeckReshuffle starts a fresh 52-card deck and carries on.
	DeckReshuffle DeckPolicy = iota
	// DeckEndsGame finishes the game.
	DeckEndsGame
)

// GameState is everything that persists between rounds.
type GameState struct {
	Deck   *poker.Deck
	Ledger *Ledger
	Rules  Rules
	Rounds int // rounds dealt so far
}

// NewGameState shuffles a deck with rng and gives both players startingCoins.
func NewGameState(rng poker.Rand, rules Rules, startingCoins int) *GameState {
	return &GameState{
		Deck:   poker.NewDeck(rng),
		Ledger: NewLedger(startingCoins, startingCoins),
		Rules:  rules,
	}
}

// Options configures a Game.
type Options struct {
	StartingCoins int
	Rules         Rules
	DeckPolicy    DeckPolicy
	ThinkDelay    time.Duration
	Seed          int64 // recorded in the history only
}

// DefaultOptions returns the classic 1000 coin game.
func DefaultOptions() Options {
	return Options{StartingCoins: 1000, Rules: DefaultRules(), DeckPolicy: DeckReshuffle}
}

// Deps are the collaborators a Game needs.
type Deps struct {
	Input    Input
	Display  Display
	Opponent Opponent
	Rand     poker.Rand
	Logger   *log.Logger
	Clock    quartz.Clock // nil uses the real clock
}

// Summary describes a finished game.
type Summary struct {
	GameID         string
	StartingCoins  int
	Rounds         int
	Revealed       int
	Aborted        int
	UserWins       int
	ComputerWins   int
	Ties           int
	DeckReshuffles int
	DeckExhausted  bool // the game ended because the deck ran out
	Final          Snapshot
}

// Net returns the user's gain or loss over the game.
func (s Summary) Net() int {
	return s.Final.User - s.StartingCoins
}

// Game repeats rounds while both players have coins and the user wants to
// keep playing. The deck is shuffled once at the start and drawn down across
// rounds.
type Game struct {
	state    *GameState
	opts     Options
	opponent Opponent
	input    Input
	display  Display
	session  *Session
	history  *History
	logger   *log.Logger
	summary  Summary
}

// NewGame sets up a game and shuffles its deck.
func NewGame(opts Options, deps Deps) *Game {
	clock := deps.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	logger := deps.Logger.WithPrefix("game")
	history := NewHistory(clock, opts.Seed)

	return &Game{
		state:    NewGameState(deps.Rand, opts.Rules, opts.StartingCoins),
		opts:     opts,
		opponent: deps.Opponent,
		input:    deps.Input,
		display:  deps.Display,
		session:  NewSession(deps.Input, deps.Display, deps.Logger, clock, opts.ThinkDelay),
		history:  history,
		logger:   logger.With("game", history.GameID),
		summary: Summary{
			GameID:        history.GameID,
			StartingCoins: opts.StartingCoins,
		},
	}
}

// State exposes the game state, mainly for tests.
func (g *Game) State() *GameState {
	return g.state
}

// History returns the record of every round played so far.
func (g *Game) History() *History {
	return g.history
}

// Run plays until a balance reaches zero, the user declines another round
// or leaves. Leaving is not an error; a cancelled ctx is, but the final
// balances are shown either way.
func (g *Game) Run(ctx context.Context) (Summary, error) {
	g.logger.Info("Game started", "coins", g.opts.StartingCoins, "seed", g.opts.Seed)
	g.display.ShowWelcome()

	err := g.loop(ctx)
	if errors.Is(err, ErrUserQuit) {
		g.logger.Info("User left the game")
		err = nil
	}

	g.summary.Final = g.state.Ledger.Snapshot()
	g.history.Finish(g.summary.Final)

	g.logger.Info("Game over", "rounds", g.summary.Rounds, "user", g.summary.Final.User, "computer", g.summary.Final.Computer, "pot", g.summary.Final.Pot, "error", err)
	g.display.ShowGameOver(g.summary)
	return g.summary, err
}

func (g *Game) loop(ctx context.Context) error {
	ledger := g.state.Ledger
	for ledger.BothSolvent() {
		round, err := NewRound(g.state, g.opponent)
		if errors.Is(err, ErrDeckExhausted) {
			if g.opts.DeckPolicy == DeckEndsGame {
				g.logger.Warn("Deck exhausted, ending game", "remaining", g.state.Deck.Remaining())
				g.display.ShowMessage("The deck has run out of cards.")
				g.summary.DeckExhausted = true
				return nil
			}
			g.logger.Info("Deck exhausted, reshuffling", "remaining", g.state.Deck.Remaining())
			g.display.ShowMessage("The deck has run out of cards. Shuffling a fresh deck.")
			g.state.Deck.Initialize()
			g.summary.DeckReshuffles++
			continue
		}
		if err != nil {
			return err
		}

		started := g.history.Now()
		playErr := g.session.Play(ctx, round)
		g.record(round, started)
		if playErr != nil {
			return playErr
		}

		if !ledger.BothSolvent() {
			return nil
		}
		answer, err := g.session.prompt(ctx, PromptNextRound)
		if err != nil {
			return err
		}
		if !IsYes(answer) {
			g.display.ShowMessage("You have exited the game. Goodbye!")
			return nil
		}
	}
	return nil
}

// record updates the summary and history once a round has ended, including
// rounds cut short by the user leaving
func (g *Game) record(r *Round, started time.Time) {
	g.summary.Rounds++
	if out, ok := r.Outcome(); ok {
		g.summary.Revealed++
		switch {
		case out.Tie:
			g.summary.Ties++
			if !out.Split {
				g.summary.ComputerWins++
			}
		case out.Winner == User:
			g.summary.UserWins++
		default:
			g.summary.ComputerWins++
		}
	} else {
		g.summary.Aborted++
	}
	g.history.Record(r, started)
}
