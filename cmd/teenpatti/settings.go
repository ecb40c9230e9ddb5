package main

import (
	"github.com/lox/teenpatti/internal/config"
	"github.com/lox/teenpatti/internal/game"
)

// rules converts the game block into round rules and a deck policy.
func rules(cfg *config.Config) (game.Rules, game.DeckPolicy) {
	r := game.Rules{MaxRaise: cfg.Game.MaxRaise, TiePolicy: game.TieFavorsComputer}
	if cfg.Game.TiePolicy == config.TieSplit {
		r.TiePolicy = game.TieSplitsPot
	}
	policy := game.DeckReshuffle
	if cfg.Game.DeckExhausted == config.DeckEnd {
		policy = game.DeckEndsGame
	}
	return r, policy
}

// opponentOptions converts the computer block into policy options.
func opponentOptions(cfg *config.Config) game.OpponentOptions {
	return game.OpponentOptions{
		MinBet:         *cfg.Computer.MinBet,
		MaxBet:         cfg.Computer.MaxBet,
		BetProbability: *cfg.Computer.BetProbability,
	}
}
