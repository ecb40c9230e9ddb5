// Package game implements the round lifecycle of a two-player three-card
// game: the ledger of balances and pot, the computer's betting policy, the
// per-round betting state machine and the game loop that repeats rounds.
//
// # Rounds
//
// Round is a finite state machine with no I/O of its own. Each transition
// takes input that has already been read and either advances the phase or
// returns an error:
//
//	r, err := game.NewRound(state, opponent)
//	r.Open()
//	r.PlaceInitialBet("100")
//	r.Consent(true)
//	action, _ := r.ComputerAct()
//	if r.Phase() == game.PhaseUserTurn {
//	    outcome, _ := r.Reveal()
//	}
//
// Session drives a Round through the Input and Display collaborators, and
// Game repeats sessions while both players still have coins.
//
// # Deterministic Testing
//
// The deck and the computer opponent both take an injected random source,
// so a fixed seed replays the same game:
//
//	rng := randutil.New(42)
//	state := game.NewGameState(rng, game.DefaultRules(), 1000)
//	opponent := game.NewRandomOpponent(rng, game.DefaultOpponentOptions())
//
// # Carry-over
//
// An aborted round never settles. Chips already in the pot stay there and go
// to whoever wins the next revealed round.
package game
