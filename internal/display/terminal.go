// Package display renders the game to a terminal with lipgloss.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/teenpatti/internal/game"
	"github.com/lox/teenpatti/poker"
)

// Terminal writes game events to an io.Writer. It implements game.Display.
type Terminal struct {
	out    io.Writer
	styles Styles
}

var _ game.Display = (*Terminal)(nil)

// Options tunes terminal output.
type Options struct {
	NoColor bool // force plain ASCII output, e.g. when piping to a file
}

// NewTerminal creates a display writing to out. Colour support is detected
// from out unless opts.NoColor is set.
func NewTerminal(out io.Writer, opts Options) *Terminal {
	r := lipgloss.NewRenderer(out)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Terminal{out: out, styles: NewStyles(r)}
}

// Styles returns the styles the terminal renders with.
func (t *Terminal) Styles() Styles {
	return t.styles
}

func (t *Terminal) println(lines ...string) {
	for _, l := range lines {
		_, _ = fmt.Fprintln(t.out, l)
	}
}

func (t *Terminal) ShowWelcome() {
	t.println(t.styles.Header.Render("--- Welcome to Teen Patti ---"), "")
}

func (t *Terminal) ShowRoundStart(round int, b game.Snapshot) {
	t.println("", t.styles.Title.Render(fmt.Sprintf("--- New Round (%d) ---", round)))
	coins := fmt.Sprintf("You: %d coins | Computer: %d coins", b.User, b.Computer)
	if b.Pot > 0 {
		coins += fmt.Sprintf(" | Pot carried over: %d", b.Pot)
	}
	t.println(t.styles.Info.Render(coins))
}

func (t *Terminal) ShowHand(title string, hand poker.Hand) {
	t.println(t.styles.Title.Render(title+":"), t.styles.RenderHand(hand))
}

func (t *Terminal) ShowComputerAction(a game.ComputerAction) {
	switch a.Kind {
	case game.ActionReveal:
		t.println(t.styles.Warning.Render("Computer chose to reveal the winner!"))
	default:
		t.println(t.styles.Warning.Render(fmt.Sprintf("Computer bet: (%d coins).", a.Amount)))
	}
}

func (t *Terminal) ShowOptions(maxRaise int) {
	t.println(
		t.styles.Actions.Render("Options:"),
		fmt.Sprintf("  1. Place another bet (up to %d)", maxRaise),
		"  2. Reveal winner",
	)
}

func (t *Terminal) ShowOutcome(o game.Outcome) {
	if o.Split {
		t.println(
			t.styles.Success.Render("It's a tie! The pot is split."),
			fmt.Sprintf("Reason: %s (%d each, odd coin to the computer)", o.Reason, o.UserPayout),
		)
		return
	}

	winner := t.styles.Success
	if o.Winner == game.Computer {
		winner = t.styles.Error
	}
	t.println(
		winner.Render(fmt.Sprintf("The winner is %s!", o.Winner)),
		"Reason: "+o.Reason,
	)
	if o.Tie {
		t.println(t.styles.Info.Render("Both hands are equal; ties go to the computer."))
	}
	t.println(t.styles.Info.Render(fmt.Sprintf("You: %s | Computer: %s", o.UserStrength, o.ComputerStrength)))
}

func (t *Terminal) ShowBalances(title string, b game.Snapshot) {
	t.println(
		t.styles.Title.Render(title+":"),
		t.styles.Balance.Render(fmt.Sprintf("=> User Coins: %d", b.User)),
		t.styles.Balance.Render(fmt.Sprintf("=> Computer Coins: %d", b.Computer)),
		t.styles.Balance.Render(fmt.Sprintf("=> Pot: %d", b.Pot)),
	)
}

func (t *Terminal) ShowMessage(msg string) {
	t.println(msg)
}

func (t *Terminal) ShowError(msg string) {
	t.println(t.styles.Error.Render(msg))
}

// ShowGameOver prints the final balances and a short record of the game.
func (t *Terminal) ShowGameOver(s game.Summary) {
	var b strings.Builder
	fmt.Fprintf(&b, "Rounds played: %d (%d revealed, %d abandoned)\n", s.Rounds, s.Revealed, s.Aborted)
	fmt.Fprintf(&b, "You won %d, the computer won %d", s.UserWins, s.ComputerWins)
	if s.Ties > 0 {
		fmt.Fprintf(&b, ", %d tied", s.Ties)
	}
	b.WriteString("\n")
	if s.DeckReshuffles > 0 {
		fmt.Fprintf(&b, "Deck reshuffled %d times\n", s.DeckReshuffles)
	}
	fmt.Fprintf(&b, "Net: %+d coins", s.Net())

	t.println("", t.styles.Header.Render("Game Over!"))
	t.ShowBalances("Final Balances", s.Final)
	t.println(t.styles.Info.Render(b.String()))

	switch {
	case s.Final.Computer == 0:
		t.println(t.styles.Success.Render("The computer is out of coins. You win!"))
	case s.Final.User == 0:
		t.println(t.styles.Error.Render("You are out of coins."))
	}
}
