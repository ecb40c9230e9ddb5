// Package simulator plays many automated games of Teen Patti against the
// computer policy and collects statistics on the results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/teenpatti/internal/game"
	"github.com/lox/teenpatti/internal/randutil"
	"github.com/lox/teenpatti/internal/statistics"
	"github.com/lox/teenpatti/poker"
)

// maxRaisesPerRound stops a strategy from raising forever
const maxRaisesPerRound = 100

// Config holds configuration for running simulations
type Config struct {
	Games         int
	Strategy      string
	Seed          int64
	Concurrency   int // zero uses GOMAXPROCS
	MaxRounds     int // per game, zero for no limit
	StartingCoins int
	Rules         game.Rules
	Opponent      game.OpponentOptions
	DeckPolicy    game.DeckPolicy
	Timeout       time.Duration // for the whole run, zero for none
	Logger        *log.Logger
}

// DefaultConfig returns a 1000 game run of the classic rules.
func DefaultConfig() Config {
	return Config{
		Games:         1000,
		Strategy:      "reveal",
		StartingCoins: 1000,
		MaxRounds:     500,
		Rules:         game.DefaultRules(),
		Opponent:      game.DefaultOpponentOptions(),
		DeckPolicy:    game.DeckReshuffle,
	}
}

// Simulator runs independent games concurrently. Each game gets its own
// seed derived from Config.Seed, so results do not depend on scheduling.
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if config.Concurrency <= 0 {
		config.Concurrency = runtime.GOMAXPROCS(0)
	}
	return &Simulator{config: config, logger: logger.WithPrefix("simulator")}
}

// Run plays every game and returns the combined statistics.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if !ValidStrategy(s.config.Strategy) {
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", s.config.Strategy, Strategies)
	}
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	s.logger.Info("Starting simulation",
		"games", s.config.Games,
		"strategy", s.config.Strategy,
		"seed", s.config.Seed,
		"concurrency", s.config.Concurrency)
	start := time.Now()

	results := make([]statistics.GameResult, s.config.Games)
	var completed atomic.Int64
	progressEvery := int64(max(s.config.Games/10, 1))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)
	for i := range s.config.Games {
		g.Go(func() error {
			res, err := s.PlayGame(gctx, randutil.Derive(s.config.Seed, i))
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, res.Seed, err)
			}
			results[i] = res
			if n := completed.Add(1); n%progressEvery == 0 {
				s.logger.Debug("Progress", "completed", n, "of", s.config.Games)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete", "games", stats.Games, "mean", stats.Mean(), "elapsed", time.Since(start))
	return stats, nil
}

// PlayGame plays a single game from seed until a player is broke, the round
// limit is hit or, with DeckEndsGame, the deck runs out.
func (s *Simulator) PlayGame(ctx context.Context, seed int64) (statistics.GameResult, error) {
	res := statistics.GameResult{Seed: seed}
	rng := randutil.New(seed)
	strategy, err := NewStrategy(s.config.Strategy, rng)
	if err != nil {
		return res, err
	}

	state := game.NewGameState(rng, s.config.Rules, s.config.StartingCoins)
	opponent := game.NewRandomOpponent(rng, s.config.Opponent)
	ledger := state.Ledger

	for ledger.BothSolvent() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if s.config.MaxRounds > 0 && res.Rounds >= s.config.MaxRounds {
			res.HitRoundLimit = true
			break
		}

		r, err := game.NewRound(state, opponent)
		if errors.Is(err, game.ErrDeckExhausted) {
			if s.config.DeckPolicy == game.DeckEndsGame {
				break
			}
			state.Deck.Initialize()
			res.Reshuffles++
			continue
		}
		if err != nil {
			return res, err
		}

		res.Rounds++
		if err := playRound(r, strategy); err != nil {
			return res, fmt.Errorf("round %d: %w", r.Number, err)
		}
		tally(&res, r)
	}

	res.Net = ledger.Balance(game.User) - s.config.StartingCoins
	res.UserBusted = ledger.Balance(game.User) == 0
	res.ComputerBust = ledger.Balance(game.Computer) == 0
	return res, nil
}

// playRound always consents to the computer's turn and lets the strategy
// choose between raising and revealing
func playRound(r *game.Round, strategy Strategy) error {
	ledger := r.Ledger()
	if err := r.Open(); err != nil {
		return err
	}

	view := View{
		Hand:     r.UserHand,
		Strength: poker.Evaluate(r.UserHand),
		Balance:  ledger.Balance(game.User),
		MaxRaise: r.Rules().MaxRaise,
	}
	if err := r.PlaceInitialBet(strconv.Itoa(strategy.OpeningBet(view))); err != nil {
		if errors.Is(err, game.ErrInvalidBetAmount) {
			return nil
		}
		return err
	}

	for raises := 0; ; {
		if err := r.Consent(true); err != nil {
			return err
		}
		action, err := r.ComputerAct()
		if err != nil {
			return err
		}
		if r.Phase() == game.PhaseRevealed {
			return nil
		}

		view.Balance = ledger.Balance(game.User)
		view.Pot = ledger.Pot()
		view.ComputerBet = action.Amount
		view.Raises = raises
		if amount := strategy.Raise(view); amount > 0 && raises < maxRaisesPerRound {
			if _, err := r.UserBet(strconv.Itoa(amount)); err == nil {
				raises++
				continue
			}
		}
		_, err = r.Reveal()
		return err
	}
}

func tally(res *statistics.GameResult, r *game.Round) {
	out, ok := r.Outcome()
	if !ok {
		res.Aborted++
		return
	}
	res.Revealed++
	res.BiggestPot = max(res.BiggestPot, out.Pot)
	switch {
	case out.Split:
		res.Ties++
		res.SplitPots++
	case out.Tie:
		res.Ties++
		res.ComputerWins++
	case out.Winner == game.User:
		res.UserWins++
	default:
		res.ComputerWins++
	}
}

// PrintSummary writes a summary of simulation results to w
func PrintSummary(w io.Writer, stats *statistics.Statistics, strategy string) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== FINAL RESULTS: %s strategy vs computer ===\n", strategy)
	fmt.Fprintf(w, "Games played: %d (%d rounds, %.1f per game)\n", stats.Games, stats.Rounds, stats.RoundsPerGame())

	fmt.Fprintf(w, "\n=== NET COINS PER GAME ===\n")
	fmt.Fprintf(w, "Mean: %.2f\n", stats.Mean())
	fmt.Fprintf(w, "Median: %.2f\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.2f\n", stats.StdDev())
	fmt.Fprintf(w, "Std Error: %.2f\n", stats.StdError())
	fmt.Fprintf(w, "95%% CI: [%.2f, %.2f]\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.0f, P25=%.0f, P75=%.0f, P95=%.0f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	fmt.Fprintf(w, "Best game: %+d, worst game: %+d\n", stats.MaxWin, stats.MaxLoss)

	fmt.Fprintf(w, "\n=== ROUNDS ===\n")
	fmt.Fprintf(w, "Revealed: %d, abandoned: %d\n", stats.Revealed, stats.Aborted)
	fmt.Fprintf(w, "User wins: %d (%.1f%%), computer wins: %d, ties: %d (%d split)\n",
		stats.UserWins, stats.WinRate()*100, stats.ComputerWins, stats.Ties, stats.SplitPots)
	fmt.Fprintf(w, "Biggest pot: %d coins\n", stats.MaxPot)

	fmt.Fprintf(w, "\n=== GAME ENDINGS ===\n")
	fmt.Fprintf(w, "User broke: %d, computer broke: %d, round limit: %d\n",
		stats.UserBusts, stats.ComputerBusts, stats.RoundLimited)
	if stats.Reshuffles > 0 {
		fmt.Fprintf(w, "Deck reshuffles: %d\n", stats.Reshuffles)
	}
}
