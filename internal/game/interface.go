package game

import (
	"context"

	"github.com/lox/teenpatti/poker"
)

// Input obtains a line of text from the user. Implementations return io.EOF
// once the user has gone away.
type Input interface {
	Prompt(ctx context.Context, message string) (string, error)
}

// Display renders game events for the user.
type Display interface {
	ShowWelcome()
	ShowRoundStart(round int, balances Snapshot)
	ShowHand(title string, hand poker.Hand)
	ShowComputerAction(action ComputerAction)
	ShowOptions(maxRaise int)
	ShowOutcome(outcome Outcome)
	ShowBalances(title string, balances Snapshot)
	ShowMessage(msg string)
	ShowError(msg string)
	ShowGameOver(summary Summary)
}
