package game

import (
	"errors"
	"fmt"

	"github.com/lox/teenpatti/poker"
)

var (
	// ErrInvalidBetAmount covers every rejected bet: not a number, negative,
	// above the raise cap or above the bettor's balance.
	ErrInvalidBetAmount = errors.New("invalid bet amount")

	// ErrNotANumber is returned when bet input is not a whole number.
	ErrNotANumber = fmt.Errorf("%w: not a whole number", ErrInvalidBetAmount)

	// ErrInsufficientBalance is returned when a bet exceeds the balance.
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrInvalidBetAmount)

	// ErrDeckExhausted is returned when too few cards remain to deal a round.
	ErrDeckExhausted = fmt.Errorf("not enough cards to deal a round: %w", poker.ErrEmptyDeck)

	// ErrWrongPhase is returned when a transition is attempted from a phase
	// that does not allow it.
	ErrWrongPhase = errors.New("action not allowed in current phase")

	// ErrUserQuit is returned when the input collaborator reports that the
	// user has gone away.
	ErrUserQuit = errors.New("user quit")
)
