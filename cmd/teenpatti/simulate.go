package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/teenpatti/cmd/teenpatti/shared"
	"github.com/lox/teenpatti/internal/config"
	"github.com/lox/teenpatti/internal/randutil"
	"github.com/lox/teenpatti/internal/simulator"
)

// SimulateCmd plays many automated games and reports statistics
type SimulateCmd struct {
	Config      string        `short:"c" type:"path" default:"${config}" help:"HCL config file, defaults are used when it does not exist"`
	Games       int           `short:"n" default:"1000" help:"Number of games to simulate"`
	Strategy    string        `short:"s" default:"reveal" enum:"${strategies}" help:"User strategy: ${strategies}"`
	Seed        int64         `help:"RNG seed (0 for random)"`
	Concurrency int           `short:"j" default:"0" help:"Games to run in parallel (0 for GOMAXPROCS)"`
	MaxRounds   int           `default:"500" help:"Round limit per game (0 for none)"`
	Timeout     time.Duration `default:"0s" help:"Stop the whole run after this long (0 for none)"`
	Debug       bool          `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", c.Config, err)
	}

	level := "warn"
	if c.Debug {
		level = "debug"
	}
	logger, err := shared.SetupLogger(os.Stderr, level, "SIM")
	if err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed)
	logger.Info("Using seed", "seed", seed)

	r, deckPolicy := rules(cfg)
	sim := simulator.New(simulator.Config{
		Games:         c.Games,
		Strategy:      c.Strategy,
		Seed:          seed,
		Concurrency:   c.Concurrency,
		MaxRounds:     c.MaxRounds,
		StartingCoins: cfg.Game.StartingCoins,
		Rules:         r,
		Opponent:      opponentOptions(cfg),
		DeckPolicy:    deckPolicy,
		Timeout:       c.Timeout,
		Logger:        logger,
	})

	ctx, cancel := shared.SetupSignalHandlerWithLogger(logger)
	defer cancel()

	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	simulator.PrintSummary(os.Stdout, stats, c.Strategy)
	fmt.Printf("\nSeed: %d\n", seed)
	return nil
}
