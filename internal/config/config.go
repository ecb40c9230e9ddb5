// Package config loads game settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Tie policies
const (
	TieComputer = "computer"
	TieSplit    = "split"
)

// Deck exhaustion policies
const (
	DeckReshuffle = "reshuffle"
	DeckEnd       = "end"
)

// DefaultFile is read when no --config flag is given.
const DefaultFile = "teenpatti.hcl"

// Config is the complete game configuration. Blocks are optional in the file;
// Load fills anything missing from DefaultConfig.
type Config struct {
	Game     *GameSettings     `hcl:"game,block"`
	Computer *ComputerSettings `hcl:"computer,block"`
	Logging  *LoggingSettings  `hcl:"logging,block"`
}

// GameSettings controls the ledger and round rules.
type GameSettings struct {
	StartingCoins int    `hcl:"starting_coins,optional"`
	MaxRaise      int    `hcl:"max_raise,optional"`
	TiePolicy     string `hcl:"tie_policy,optional"`
	DeckExhausted string `hcl:"deck_exhausted,optional"`
}

// ComputerSettings controls the computer opponent's betting policy.
type ComputerSettings struct {
	MinBet         *int     `hcl:"min_bet,optional"`
	MaxBet         int      `hcl:"max_bet,optional"`
	BetProbability *float64 `hcl:"bet_probability,optional"`
	ThinkDelay     string   `hcl:"think_delay,optional"`
}

// LoggingSettings controls the debug log. An explicit empty file disables it.
type LoggingSettings struct {
	Level string  `hcl:"level,optional"`
	File  *string `hcl:"file,optional"`
}

// DefaultConfig returns the settings of the classic game: 1000 coins each,
// raises capped at 500 and a computer that keeps betting 70% of the time.
func DefaultConfig() *Config {
	p := 0.7
	minBet := 1
	logFile := "teenpatti.log"
	return &Config{
		Game: &GameSettings{
			StartingCoins: 1000,
			MaxRaise:      500,
			TiePolicy:     TieComputer,
			DeckExhausted: DeckReshuffle,
		},
		Computer: &ComputerSettings{
			MinBet:         &minBet,
			MaxBet:         500,
			BetProbability: &p,
			ThinkDelay:     "600ms",
		},
		Logging: &LoggingSettings{
			Level: "info",
			File:  &logFile,
		},
	}
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for anything left unset.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.Game == nil {
		c.Game = def.Game
	}
	if c.Game.StartingCoins == 0 {
		c.Game.StartingCoins = def.Game.StartingCoins
	}
	if c.Game.MaxRaise == 0 {
		c.Game.MaxRaise = def.Game.MaxRaise
	}
	if c.Game.TiePolicy == "" {
		c.Game.TiePolicy = def.Game.TiePolicy
	}
	if c.Game.DeckExhausted == "" {
		c.Game.DeckExhausted = def.Game.DeckExhausted
	}

	if c.Computer == nil {
		c.Computer = def.Computer
	}
	if c.Computer.MinBet == nil {
		c.Computer.MinBet = def.Computer.MinBet
	}
	if c.Computer.MaxBet == 0 {
		c.Computer.MaxBet = def.Computer.MaxBet
	}
	if c.Computer.BetProbability == nil {
		c.Computer.BetProbability = def.Computer.BetProbability
	}
	if c.Computer.ThinkDelay == "" {
		c.Computer.ThinkDelay = def.Computer.ThinkDelay
	}

	if c.Logging == nil {
		c.Logging = def.Logging
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.File == nil {
		c.Logging.File = def.Logging.File
	}
}

// Validate checks that the settings describe a playable game.
func (c *Config) Validate() error {
	if c.Game.StartingCoins <= 0 {
		return fmt.Errorf("game: starting_coins must be positive, got %d", c.Game.StartingCoins)
	}
	if c.Game.MaxRaise <= 0 {
		return fmt.Errorf("game: max_raise must be positive, got %d", c.Game.MaxRaise)
	}
	switch c.Game.TiePolicy {
	case TieComputer, TieSplit:
	default:
		return fmt.Errorf("game: invalid tie_policy %q (want %q or %q)", c.Game.TiePolicy, TieComputer, TieSplit)
	}
	switch c.Game.DeckExhausted {
	case DeckReshuffle, DeckEnd:
	default:
		return fmt.Errorf("game: invalid deck_exhausted %q (want %q or %q)", c.Game.DeckExhausted, DeckReshuffle, DeckEnd)
	}

	if *c.Computer.MinBet < 0 {
		return fmt.Errorf("computer: min_bet must not be negative, got %d", *c.Computer.MinBet)
	}
	if c.Computer.MaxBet < *c.Computer.MinBet {
		return fmt.Errorf("computer: max_bet %d is below min_bet %d", c.Computer.MaxBet, *c.Computer.MinBet)
	}
	if p := *c.Computer.BetProbability; p < 0 || p > 1 {
		return fmt.Errorf("computer: bet_probability must be within [0, 1], got %v", p)
	}
	if _, err := c.ThinkDelay(); err != nil {
		return err
	}
	return nil
}

// ThinkDelay returns the pause before each computer action.
func (c *Config) ThinkDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Computer.ThinkDelay)
	if err != nil {
		return 0, fmt.Errorf("computer: invalid think_delay %q: %w", c.Computer.ThinkDelay, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("computer: think_delay must not be negative, got %s", d)
	}
	return d, nil
}
