package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/teenpatti/poker"
)

func TestNewRoundDealsUserFirst(t *testing.T) {
	t.Parallel()
	state := newTestState(1000)

	r, err := NewRound(state, betsThenReveals())
	require.NoError(t, err)

	assert.Equal(t, "As Ks Qs", r.UserHand.String())
	assert.Equal(t, "Js Ts 9s", r.ComputerHand.String())
	assert.Equal(t, poker.DeckSize-6, state.Deck.Remaining())
	assert.Equal(t, 1, r.Number)
	assert.Equal(t, PhaseDealt, r.Phase())
	assert.Empty(t, r.Bets())
}

func TestNewRoundDeckExhausted(t *testing.T) {
	t.Parallel()
	state := newTestState(1000)
	for state.Deck.Remaining() > 5 {
		_, err := state.Deck.Draw()
		require.NoError(t, err)
	}

	_, err := NewRound(state, betsThenReveals())
	require.ErrorIs(t, err, ErrDeckExhausted)
	assert.ErrorIs(t, err, poker.ErrEmptyDeck)
	assert.Equal(t, 5, state.Deck.Remaining(), "no cards drawn from a short deck")
	assert.Zero(t, state.Rounds)
}

func TestRoundsDrawDownTheSameDeck(t *testing.T) {
	t.Parallel()
	state := newTestState(1000)

	seen := make(map[poker.Card]bool)
	for i := range 8 {
		r, err := NewRound(state, betsThenReveals())
		require.NoError(t, err)
		assert.Equal(t, i+1, r.Number)
		for _, c := range append(r.UserHand.Cards(), r.ComputerHand.Cards()...) {
			assert.False(t, seen[c], "card %s dealt twice", c)
			seen[c] = true
		}
	}
	assert.Equal(t, 4, state.Deck.Remaining())
	_, err := NewRound(state, betsThenReveals())
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestEndToEndUserReveal(t *testing.T) {
	t.Parallel()
	state := newTestState(1000)
	src := &scriptedSource{ints: []int{249}}
	r := openRound(t, state, NewRandomOpponent(src, DefaultOpponentOptions()))

	require.NoError(t, r.PlaceInitialBet("100"))
	assert.Equal(t, Snapshot{User: 900, Computer: 1000, Pot: 100}, state.Ledger.Snapshot())
	assert.Equal(t, PhaseAwaitConsent, r.Phase())

	require.NoError(t, r.Consent(true))
	action, err := r.ComputerAct()
	require.NoError(t, err)
	assert.Equal(t, ComputerAction{Kind: ActionBet, Amount: 250}, action)
	assert.GreaterOrEqual(t, action.Amount, 1)
	assert.LessOrEqual(t, action.Amount, 500)
	assert.Equal(t, 350, state.Ledger.Pot())
	assert.Equal(t, PhaseUserTurn, r.Phase())

	out, err := r.Reveal()
	require.NoError(t, err)
	assert.Equal(t, User, out.Winner)
	assert.Equal(t, User, out.RevealedBy)
	assert.Equal(t, "Pure Sequence (Straight Flush)", out.Reason)
	assert.Equal(t, 350, out.Pot)
	assert.Equal(t, 350, out.UserPayout)
	assert.Equal(t, Snapshot{User: 1250, Computer: 750, Pot: 0}, state.Ledger.Snapshot())
	assert.Equal(t, PhaseRevealed, r.Phase())

	got, ok := r.Outcome()
	require.True(t, ok)
	assert.Equal(t, out, got)
	assert.Equal(t, []Bet{{User, 100}, {Computer, 250}}, r.Bets())
}

func TestComputerRevealSettles(t *testing.T) {
	t.Parallel()
	state := newTestState(1000)
	r := openRound(t, state, betsThenReveals(40))
	// computer holds the stronger hand this time
	r.UserHand, r.ComputerHand = r.ComputerHand, r.UserHand

	require.NoError(t, r.PlaceInitialBet("10"))
	require.NoError(t, r.Consent(true))
	_, err := r.ComputerAct()
	require.NoError(t, err)

	amount, err := r.UserBet("20")
	require.NoError(t, err)
	assert.Equal(t, 20, amount)
	assert.Equal(t, PhaseAwaitConsent, r.Phase())

	require.NoError(t, r.Consent(true))
	action, err := r.ComputerAct()
	require.NoError(t, err)
	assert.Equal(t, ActionReveal, action.Kind)
	assert.Equal(t, PhaseRevealed, r.Phase())

	out, ok := r.Outcome()
	require.True(t, ok)
	assert.Equal(t, Computer, out.Winner)
	assert.Equal(t, Computer, out.RevealedBy)
	assert.Equal(t, 70, out.Pot)
	assert.Equal(t, Snapshot{User: 970, Computer: 1030, Pot: 0}, state.Ledger.Snapshot())
}

func TestInitialBetInvalidAborts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"not a number", "abc", ErrNotANumber},
		{"empty", "", ErrNotANumber},
		{"decimal", "12.5", ErrNotANumber},
		{"over balance", "1001", ErrInsufficientBalance},
		{"negative", "-1", ErrInvalidBetAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			state := newTestState(1000)
			r := openRound(t, state, betsThenReveals())

			err := r.PlaceInitialBet(tc.input)
			require.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrInvalidBetAmount)
			assert.Equal(t, PhaseAborted, r.Phase())
			assert.Equal(t, Snapshot{User: 1000, Computer: 1000}, state.Ledger.Snapshot())
			assert.Empty(t, r.Bets())
		})
	}
}

func TestInitialBetAcceptsZeroAndWholeBalance(t *testing.T) {
	t.Parallel()
	state := newTestState(1000)
	r := openRound(t, state, betsThenReveals())
	require.NoError(t, r.PlaceInitialBet(" 0 "))
	assert.Equal(t, PhaseAwaitConsent, r.Phase())

	state = newTestState(1000)
	r = openRound(t, state, betsThenReveals())
	require.NoError(t, r.PlaceInitialBet("1000"))
	assert.Zero(t, state.Ledger.Balance(User))
}

func TestDeclineConsentCarriesPot(t *testing.T) {
	t.Parallel()
	state := newTestState(1000)
	r := openRound(t, state, betsThenReveals())

	require.NoError(t, r.PlaceInitialBet("100"))
	require.NoError(t, r.Consent(false))
	assert.Equal(t, PhaseAborted, r.Phase())
	assert.Equal(t, 100, state.Ledger.Pot(), "pot stays for the next round")

	_, ok := r.Outcome()
	assert.False(t, ok)

	next := openRound(t, state, betsThenReveals())
	require.NoError(t, next.PlaceInitialBet("50"))
	require.NoError(t, next.Consent(true))
	_, err := next.ComputerAct()
	require.NoError(t, err)
	out, err := next.Reveal()
	require.NoError(t, err)
	assert.Equal(t, 150, out.Pot)
}

func TestUserBetInvalidKeepsTurn(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"not a number", "lots", ErrNotANumber},
		{"zero", "0", ErrInvalidBetAmount},
		{"negative", "-3", ErrInvalidBetAmount},
		{"above cap", "501", ErrInvalidBetAmount},
		{"above balance", "450", ErrInsufficientBalance},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			state := newTestState(1000)
			r := openRound(t, state, betsThenReveals(10))
			require.NoError(t, r.PlaceInitialBet("600"))
			require.NoError(t, r.Consent(true))
			_, err := r.ComputerAct()
			require.NoError(t, err)
			before := state.Ledger.Snapshot()

			_, err = r.UserBet(tc.input)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, PhaseUserTurn, r.Phase())
			assert.Equal(t, before, state.Ledger.Snapshot())
		})
	}
}

func TestUserBetAtCap(t *testing.T) {
	t.Parallel()
	state := newTestState(1000)
	r := openRound(t, state, betsThenReveals(10))
	require.NoError(t, r.PlaceInitialBet("100"))
	require.NoError(t, r.Consent(true))
	_, err := r.ComputerAct()
	require.NoError(t, err)

	amount, err := r.UserBet("500")
	require.NoError(t, err)
	assert.Equal(t, 500, amount)
	assert.Equal(t, 400, state.Ledger.Balance(User))
}

func TestComputerBetClampedToBalance(t *testing.T) {
	t.Parallel()
	state := newTestState(1000)
	r := openRound(t, state, betsThenReveals(5000))
	require.NoError(t, r.PlaceInitialBet("1"))
	require.NoError(t, r.Consent(true))

	action, err := r.ComputerAct()
	require.NoError(t, err)
	assert.Equal(t, 1000, action.Amount)
	assert.Zero(t, state.Ledger.Balance(Computer))
}

func TestTiePolicies(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		policy       TiePolicy
		wantWinner   Party
		wantSplit    bool
		wantBalances Snapshot
	}{
		{"computer takes ties", TieFavorsComputer, Computer, false, Snapshot{User: 990, Computer: 1010}},
		{"split with odd coin to computer", TieSplitsPot, Computer, true, Snapshot{User: 1000, Computer: 1000}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			state := NewGameState(noSwapRand{}, Rules{MaxRaise: 500, TiePolicy: tc.policy}, 1000)
			r := openRound(t, state, betsThenReveals(11))
			r.UserHand = poker.MustParseHand("2h 5d 9c")
			r.ComputerHand = poker.MustParseHand("2c 5s 9d")

			require.NoError(t, r.PlaceInitialBet("10"))
			require.NoError(t, r.Consent(true))
			_, err := r.ComputerAct()
			require.NoError(t, err)
			out, err := r.Reveal()
			require.NoError(t, err)

			assert.True(t, out.Tie)
			assert.Equal(t, tc.wantSplit, out.Split)
			assert.Equal(t, tc.wantWinner, out.Winner)
			assert.Equal(t, 21, out.Pot)
			assert.Equal(t, tc.wantBalances, state.Ledger.Snapshot())
			assert.Equal(t, out.Pot, out.UserPayout+out.ComputerPayout)
		})
	}
}

func TestTieReasonNamesHand(t *testing.T) {
	t.Parallel()
	state := NewGameState(noSwapRand{}, Rules{MaxRaise: 500, TiePolicy: TieSplitsPot}, 1000)
	r := openRound(t, state, betsThenReveals(1))
	r.UserHand = poker.MustParseHand("4h 4d Kc")
	r.ComputerHand = poker.MustParseHand("4s 4c 9d")

	require.NoError(t, r.PlaceInitialBet("1"))
	require.NoError(t, r.Consent(true))
	_, err := r.ComputerAct()
	require.NoError(t, err)
	out, err := r.Reveal()
	require.NoError(t, err)
	assert.Equal(t, "Tie: Pair", out.Reason)
}

func TestWrongPhaseTransitions(t *testing.T) {
	t.Parallel()
	state := newTestState(1000)
	r, err := NewRound(state, betsThenReveals())
	require.NoError(t, err)

	assert.ErrorIs(t, r.PlaceInitialBet("10"), ErrWrongPhase)
	assert.ErrorIs(t, r.Consent(true), ErrWrongPhase)
	_, err = r.ComputerAct()
	assert.ErrorIs(t, err, ErrWrongPhase)
	_, err = r.UserBet("10")
	assert.ErrorIs(t, err, ErrWrongPhase)
	_, err = r.Reveal()
	assert.ErrorIs(t, err, ErrWrongPhase)
	assert.Equal(t, PhaseDealt, r.Phase())

	require.NoError(t, r.Open())
	assert.ErrorIs(t, r.Open(), ErrWrongPhase)
	require.NoError(t, r.PlaceInitialBet("10"))
	_, err = r.Reveal()
	assert.ErrorIs(t, err, ErrWrongPhase, "user cannot reveal before the computer has bet")
}

func TestRevealedRoundRejectsEverything(t *testing.T) {
	t.Parallel()
	state := newTestState(1000)
	r := openRound(t, state, betsThenReveals(5))
	require.NoError(t, r.PlaceInitialBet("5"))
	require.NoError(t, r.Consent(true))
	_, err := r.ComputerAct()
	require.NoError(t, err)
	_, err = r.Reveal()
	require.NoError(t, err)

	assert.True(t, r.Phase().Terminal())
	_, err = r.Reveal()
	assert.ErrorIs(t, err, ErrWrongPhase)
	assert.ErrorIs(t, r.Consent(true), ErrWrongPhase)
}

func TestParseAmount(t *testing.T) {
	t.Parallel()
	n, err := ParseAmount("  42\n")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = ParseAmount("-7")
	require.NoError(t, err)
	assert.Equal(t, -7, n)

	_, err = ParseAmount("4 2")
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestPhaseString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "user-turn", PhaseUserTurn.String())
	assert.Equal(t, "Phase(42)", Phase(42).String())
	assert.False(t, PhaseAwaitConsent.Terminal())
	assert.True(t, PhaseAborted.Terminal())
}
