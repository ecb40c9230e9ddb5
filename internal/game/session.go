package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Prompts shown to the user.
const (
	PromptInitialBet = "Enter your bet amount: "
	PromptConsent    = "Are you ready for the computer's bet? (yes/no): "
	PromptChoice     = "Enter your choice (1/2): "
	PromptNextRound  = "Are you ready for the next round? (yes/no): "
)

// Session plays rounds interactively, reading answers from an Input and
// reporting through a Display.
type Session struct {
	input      Input
	display    Display
	logger     *log.Logger
	clock      quartz.Clock
	thinkDelay time.Duration
}

// NewSession creates a session. thinkDelay pauses before each computer move
// so that the user can follow the action; zero disables it.
func NewSession(input Input, display Display, logger *log.Logger, clock quartz.Clock, thinkDelay time.Duration) *Session {
	return &Session{
		input:      input,
		display:    display,
		logger:     logger.WithPrefix("session"),
		clock:      clock,
		thinkDelay: thinkDelay,
	}
}

// Play drives r until it is revealed or aborted. An aborted round is not an
// error; errors are reserved for the input going away or ctx ending.
func (s *Session) Play(ctx context.Context, r *Round) error {
	s.display.ShowRoundStart(r.Number, r.Ledger().Snapshot())
	if err := r.Open(); err != nil {
		return err
	}
	s.display.ShowHand("Your cards", r.UserHand)

	line, err := s.prompt(ctx, PromptInitialBet)
	if err != nil {
		return err
	}
	if err := r.PlaceInitialBet(line); err != nil {
		s.logger.Debug("Initial bet rejected", "round", r.Number, "input", line, "error", err)
		switch {
		case errors.Is(err, ErrNotANumber):
			s.display.ShowError("Invalid input. Exiting round.")
		case errors.Is(err, ErrInsufficientBalance):
			s.display.ShowError("You don't have enough coins to place this bet.")
		default:
			s.display.ShowError("Invalid bet amount. Exiting round.")
		}
		return nil
	}
	s.logger.Info("User opened", "round", r.Number, "bet", r.bets[0].Amount, "pot", r.Ledger().Pot())

	for {
		answer, err := s.prompt(ctx, PromptConsent)
		if err != nil {
			return err
		}
		ready := IsYes(answer)
		if err := r.Consent(ready); err != nil {
			return err
		}
		if !ready {
			s.logger.Info("Round abandoned", "round", r.Number, "pot", r.Ledger().Pot())
			s.display.ShowMessage("Exiting round. Goodbye!")
			return nil
		}

		if err := s.think(ctx); err != nil {
			return err
		}
		action, err := r.ComputerAct()
		if err != nil {
			return err
		}
		s.logger.Info("Computer acted", "round", r.Number, "action", action.Kind, "amount", action.Amount, "pot", r.Ledger().Pot())
		s.display.ShowComputerAction(action)
		if r.Phase() == PhaseRevealed {
			s.showReveal(r)
			return nil
		}

		if err := s.userTurn(ctx, r); err != nil {
			return err
		}
		if r.Phase() == PhaseRevealed {
			s.showReveal(r)
			return nil
		}
	}
}

// userTurn loops on the 1/2 menu until the user bets or reveals
func (s *Session) userTurn(ctx context.Context, r *Round) error {
	maxRaise := r.Rules().MaxRaise
	for r.Phase() == PhaseUserTurn {
		s.display.ShowOptions(maxRaise)
		choice, err := s.prompt(ctx, PromptChoice)
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			line, err := s.prompt(ctx, fmt.Sprintf("Enter additional bet amount (up to %d): ", maxRaise))
			if err != nil {
				return err
			}
			amount, err := r.UserBet(line)
			switch {
			case errors.Is(err, ErrNotANumber):
				s.display.ShowError("Invalid input.")
			case err != nil:
				s.logger.Debug("Additional bet rejected", "round", r.Number, "input", line, "error", err)
				s.display.ShowError("Invalid bet amount.")
			default:
				s.logger.Info("User raised", "round", r.Number, "amount", amount, "pot", r.Ledger().Pot())
				s.display.ShowMessage(fmt.Sprintf("You added %d coins to the pot.", amount))
			}
		case "2":
			if _, err := r.Reveal(); err != nil {
				return err
			}
		default:
			s.display.ShowError("Invalid choice. Try again.")
		}
	}
	return nil
}

func (s *Session) showReveal(r *Round) {
	out, _ := r.Outcome()
	s.logger.Info("Round revealed",
		"round", r.Number,
		"winner", out.Winner,
		"tie", out.Tie,
		"reason", out.Reason,
		"user_hand", r.UserHand.String(),
		"computer_hand", r.ComputerHand.String(),
		"pot", out.Pot)

	s.display.ShowMessage("Revealing cards and determining the winner...")
	s.display.ShowHand("User's cards", r.UserHand)
	s.display.ShowHand("Computer's cards", r.ComputerHand)
	s.display.ShowOutcome(out)
	s.display.ShowBalances("Updated Balances", r.Ledger().Snapshot())
}

// think waits out the computer's think delay on the session clock
func (s *Session) think(ctx context.Context) error {
	if s.thinkDelay <= 0 {
		return nil
	}
	timer := s.clock.NewTimer(s.thinkDelay, "session", "think")
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) prompt(ctx context.Context, message string) (string, error) {
	line, err := s.input.Prompt(ctx, message)
	if errors.Is(err, io.EOF) {
		return "", ErrUserQuit
	}
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return line, nil
}

// IsYes reports whether answer is an affirmative "yes", ignoring case and
// surrounding space. Anything else counts as no.
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}
