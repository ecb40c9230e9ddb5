package game

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/teenpatti/poker"
)

// noSwapRand makes Fisher-Yates leave the deck in construction order, so the
// first draws are As Ks Qs then Js Ts 9s.
type noSwapRand struct{}

func (noSwapRand) IntN(n int) int { return n - 1 }

// scriptedSource replays fixed values for the computer policy.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// betsThenReveals bets amounts in order, then reveals once they run out.
func betsThenReveals(amounts ...int) Opponent {
	return OpponentFunc(func(hasBet bool, balance int) ComputerAction {
		if len(amounts) == 0 {
			return ComputerAction{Kind: ActionReveal}
		}
		a := amounts[0]
		amounts = amounts[1:]
		return ComputerAction{Kind: ActionBet, Amount: a}
	})
}

// scriptedInput answers prompts in order and reports io.EOF once exhausted.
type scriptedInput struct {
	answers []string
	prompts []string
}

func newScriptedInput(answers ...string) *scriptedInput {
	return &scriptedInput{answers: answers}
}

func (s *scriptedInput) Prompt(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.prompts = append(s.prompts, message)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

// recordingDisplay captures everything shown as plain lines.
type recordingDisplay struct {
	lines    []string
	outcomes []Outcome
	summary  *Summary
}

func (d *recordingDisplay) ShowWelcome() { d.add("welcome") }

func (d *recordingDisplay) ShowRoundStart(round int, b Snapshot) {
	d.add(fmt.Sprintf("round %d user=%d computer=%d pot=%d", round, b.User, b.Computer, b.Pot))
}

func (d *recordingDisplay) ShowHand(title string, hand poker.Hand) {
	d.add(title + ": " + hand.String())
}

func (d *recordingDisplay) ShowComputerAction(a ComputerAction) {
	d.add(fmt.Sprintf("computer %s %d", a.Kind, a.Amount))
}

func (d *recordingDisplay) ShowOptions(maxRaise int) { d.add(fmt.Sprintf("options %d", maxRaise)) }

func (d *recordingDisplay) ShowOutcome(o Outcome) {
	d.outcomes = append(d.outcomes, o)
	d.add("winner " + o.Winner.String() + ": " + o.Reason)
}

func (d *recordingDisplay) ShowBalances(title string, b Snapshot) {
	d.add(fmt.Sprintf("%s user=%d computer=%d pot=%d", title, b.User, b.Computer, b.Pot))
}

func (d *recordingDisplay) ShowMessage(msg string) { d.add(msg) }
func (d *recordingDisplay) ShowError(msg string)   { d.add("error: " + msg) }

func (d *recordingDisplay) ShowGameOver(s Summary) {
	d.summary = &s
	d.add("game over")
}

func (d *recordingDisplay) add(line string) { d.lines = append(d.lines, line) }

func (d *recordingDisplay) contains(substr string) bool {
	for _, l := range d.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newTestState(coins int) *GameState {
	return NewGameState(noSwapRand{}, DefaultRules(), coins)
}

// openRound deals a round on state and opens it for the initial bet.
func openRound(t *testing.T, state *GameState, opp Opponent) *Round {
	t.Helper()
	r, err := NewRound(state, opp)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	if err := r.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	return r
}

func newTestSession(input Input, display Display) *Session {
	return NewSession(input, display, quietLogger(), quartz.NewReal(), 0)
}
