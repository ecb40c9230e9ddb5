package game

import (
	"time"

	"github.com/coder/quartz"

	"github.com/lox/teenpatti/internal/fileutil"
	"github.com/lox/teenpatti/internal/gameid"
)

// RoundRecord is the history entry for one round.
type RoundRecord struct {
	ID           string         `json:"id"`
	Number       int            `json:"number"`
	StartedAt    time.Time      `json:"started_at"`
	EndedAt      time.Time      `json:"ended_at"`
	UserHand     string         `json:"user_hand"`
	ComputerHand string         `json:"computer_hand"`
	Bets         []Bet          `json:"bets"`
	Result       string         `json:"result"`
	Outcome      *OutcomeRecord `json:"outcome,omitempty"`
	Balances     Snapshot       `json:"balances"`
}

// OutcomeRecord is the serialisable form of an Outcome.
type OutcomeRecord struct {
	Winner           Party  `json:"winner"`
	Tie              bool   `json:"tie,omitempty"`
	Split            bool   `json:"split,omitempty"`
	Reason           string `json:"reason"`
	UserStrength     string `json:"user_strength"`
	ComputerStrength string `json:"computer_strength"`
	Pot              int    `json:"pot"`
	RevealedBy       Party  `json:"revealed_by"`
}

// History collects round records for a game and can write them out as JSON.
type History struct {
	GameID     string        `json:"game_id"`
	Seed       int64         `json:"seed,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at,omitzero"`
	Rounds     []RoundRecord `json:"rounds"`
	Final      *Snapshot     `json:"final,omitempty"`

	clock quartz.Clock
}

// NewHistory starts an empty history stamped with a fresh game ID.
func NewHistory(clock quartz.Clock, seed int64) *History {
	return &History{
		GameID:    gameid.Generate(),
		Seed:      seed,
		StartedAt: clock.Now("history", "start"),
		Rounds:    []RoundRecord{},
		clock:     clock,
	}
}

// Now returns the current time on the history's clock.
func (h *History) Now() time.Time {
	return h.clock.Now("history", "now")
}

// Record appends an entry for a finished round.
func (h *History) Record(r *Round, started time.Time) {
	rec := RoundRecord{
		ID:           gameid.Generate(),
		Number:       r.Number,
		StartedAt:    started,
		EndedAt:      h.clock.Now("history", "record"),
		UserHand:     r.UserHand.String(),
		ComputerHand: r.ComputerHand.String(),
		Bets:         r.Bets(),
		Result:       r.Phase().String(),
		Balances:     r.Ledger().Snapshot(),
	}
	if !r.Phase().Terminal() {
		rec.Result = PhaseAborted.String()
	}
	if out, ok := r.Outcome(); ok {
		rec.Outcome = &OutcomeRecord{
			Winner:           out.Winner,
			Tie:              out.Tie,
			Split:            out.Split,
			Reason:           out.Reason,
			UserStrength:     out.UserStrength.String(),
			ComputerStrength: out.ComputerStrength.String(),
			Pot:              out.Pot,
			RevealedBy:       out.RevealedBy,
		}
	}
	h.Rounds = append(h.Rounds, rec)
}

// Finish stamps the end of the game with the final balances.
func (h *History) Finish(final Snapshot) {
	h.FinishedAt = h.clock.Now("history", "finish")
	h.Final = &final
}

// WriteFile writes the history to path as indented JSON, atomically.
func (h *History) WriteFile(path string) error {
	return fileutil.WriteJSONAtomic(path, h)
}
