package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lox/teenpatti/cmd/teenpatti/shared"
	"github.com/lox/teenpatti/internal/config"
	"github.com/lox/teenpatti/internal/display"
	"github.com/lox/teenpatti/internal/game"
	"github.com/lox/teenpatti/internal/randutil"
	"github.com/lox/teenpatti/internal/tui"
)

// PlayCmd runs an interactive game
type PlayCmd struct {
	Config     string         `short:"c" type:"path" default:"${config}" help:"HCL config file, defaults are used when it does not exist"`
	Seed       int64          `help:"Deterministic RNG seed (0 for random)"`
	Coins      int            `help:"Starting coins for each player (overrides config)"`
	TiePolicy  string         `enum:",computer,split" default:"" help:"Who takes a tied pot: computer or split (overrides config)"`
	ThinkDelay *time.Duration `help:"Pause before each computer move (overrides config)"`
	Plain      bool           `help:"Read answers line by line instead of the interactive prompt"`
	NoColor    bool           `help:"Disable colour output"`
	History    string         `type:"path" help:"Write a JSON hand history to this file when the game ends"`
	LogFile    string         `type:"path" help:"Debug log file (overrides config)"`
	LogLevel   string         `enum:",debug,info,warn,error" default:"" help:"Log level (overrides config)"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.override(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", c.Config, err)
	}
	thinkDelay, err := cfg.ThinkDelay()
	if err != nil {
		return err
	}

	logFile, err := shared.OpenLogFile(*cfg.Logging.File)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()
	logger, err := shared.SetupLogger(logFile, cfg.Logging.Level, "TEENPATTI")
	if err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed)
	rng := randutil.New(seed)
	logger.Info("Starting interactive game", "seed", seed, "coins", cfg.Game.StartingCoins, "tie_policy", cfg.Game.TiePolicy)

	r, deckPolicy := rules(cfg)
	out := display.NewTerminal(os.Stdout, display.Options{NoColor: c.NoColor})

	var input game.Input
	if c.Plain || !isTerminal(os.Stdin) {
		input = tui.NewLineReader(os.Stdin, os.Stdout)
	} else {
		input = tui.NewPrompter(os.Stdin, os.Stdout, logger)
	}

	g := game.NewGame(game.Options{
		StartingCoins: cfg.Game.StartingCoins,
		Rules:         r,
		DeckPolicy:    deckPolicy,
		ThinkDelay:    thinkDelay,
		Seed:          seed,
	}, game.Deps{
		Input:    input,
		Display:  out,
		Opponent: game.NewRandomOpponent(rng, opponentOptions(cfg)),
		Rand:     rng,
		Logger:   logger,
	})

	ctx, cancel := shared.SetupSignalHandlerWithLogger(logger)
	defer cancel()

	_, runErr := g.Run(ctx)
	if errors.Is(runErr, context.Canceled) {
		out.ShowMessage("You have exited the game. Goodbye!")
		runErr = nil
	}

	if c.History != "" {
		if err := g.History().WriteFile(c.History); err != nil {
			logger.Error("Failed to write hand history", "path", c.History, "error", err)
			return errors.Join(runErr, err)
		}
		logger.Info("Hand history written", "path", c.History, "rounds", len(g.History().Rounds))
		out.ShowMessage(fmt.Sprintf("Hand history written to %s", c.History))
	}
	return runErr
}

// override applies command line flags on top of the config file
func (c *PlayCmd) override(cfg *config.Config) {
	if c.Coins != 0 {
		cfg.Game.StartingCoins = c.Coins
	}
	if c.TiePolicy != "" {
		cfg.Game.TiePolicy = c.TiePolicy
	}
	if c.ThinkDelay != nil {
		cfg.Computer.ThinkDelay = c.ThinkDelay.String()
	}
	if c.LogFile != "" {
		cfg.Logging.File = &c.LogFile
	}
	if c.LogLevel != "" {
		cfg.Logging.Level = c.LogLevel
	}
}

// isTerminal reports whether f is a character device such as a TTY
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
