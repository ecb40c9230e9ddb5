package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceBetMovesCoinsToPot(t *testing.T) {
	t.Parallel()
	l := NewLedger(1000, 1000)

	require.NoError(t, l.PlaceBet(User, 100))
	assert.Equal(t, Snapshot{User: 900, Computer: 1000, Pot: 100}, l.Snapshot())

	require.NoError(t, l.PlaceBet(Computer, 250))
	assert.Equal(t, Snapshot{User: 900, Computer: 750, Pot: 350}, l.Snapshot())
}

func TestPlaceBetRejectsOverdraw(t *testing.T) {
	t.Parallel()
	l := NewLedger(50, 1000)

	err := l.PlaceBet(User, 51)
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.ErrorIs(t, err, ErrInvalidBetAmount)
	assert.Equal(t, Snapshot{User: 50, Computer: 1000, Pot: 0}, l.Snapshot(), "rejected bet must not change state")
}

func TestPlaceBetRejectsNegative(t *testing.T) {
	t.Parallel()
	l := NewLedger(100, 100)

	assert.ErrorIs(t, l.PlaceBet(User, -5), ErrInvalidBetAmount)
	assert.Equal(t, Snapshot{User: 100, Computer: 100}, l.Snapshot())
}

func TestPlaceBetWholeBalanceAndZero(t *testing.T) {
	t.Parallel()
	l := NewLedger(100, 100)

	require.NoError(t, l.PlaceBet(User, 0))
	require.NoError(t, l.PlaceBet(User, 100))
	assert.Equal(t, 0, l.Balance(User))
	assert.Equal(t, 100, l.Pot())
	assert.False(t, l.BothSolvent())
}

func TestSettlePaysWholePot(t *testing.T) {
	t.Parallel()
	l := NewLedger(1000, 1000)
	require.NoError(t, l.PlaceBet(User, 100))
	require.NoError(t, l.PlaceBet(Computer, 300))

	paid := l.Settle(User)
	assert.Equal(t, 400, paid)
	assert.Equal(t, Snapshot{User: 1300, Computer: 700, Pot: 0}, l.Snapshot())
}

func TestSettleEmptyPotIsNoop(t *testing.T) {
	t.Parallel()
	l := NewLedger(10, 20)
	assert.Zero(t, l.Settle(Computer))
	assert.Equal(t, Snapshot{User: 10, Computer: 20}, l.Snapshot())
}

func TestSplitGivesOddCoinToComputer(t *testing.T) {
	t.Parallel()
	l := NewLedger(100, 100)
	require.NoError(t, l.PlaceBet(User, 10))
	require.NoError(t, l.PlaceBet(Computer, 11))

	user, computer := l.Split()
	assert.Equal(t, 10, user)
	assert.Equal(t, 11, computer)
	assert.Equal(t, Snapshot{User: 100, Computer: 100, Pot: 0}, l.Snapshot())
}

func TestLedgerConservesCoins(t *testing.T) {
	t.Parallel()
	l := NewLedger(1000, 1000)
	total := l.Snapshot().Total()

	bets := []struct {
		party  Party
		amount int
	}{
		{User, 100}, {Computer, 499}, {User, 2000}, {Computer, 1}, {User, 900}, {Computer, 600},
	}
	for _, b := range bets {
		_ = l.PlaceBet(b.party, b.amount)
		assert.Equal(t, total, l.Snapshot().Total(), "after %s bets %d", b.party, b.amount)
	}

	l.Settle(Computer)
	assert.Equal(t, total, l.Snapshot().Total())
	assert.Zero(t, l.Pot())
}

func TestPartyString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "User", User.String())
	assert.Equal(t, "Computer", Computer.String())
	assert.Equal(t, "Party(7)", Party(7).String())

	text, err := Computer.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Computer", string(text))
}
