package game

import "fmt"

// Party identifies one side of the table.
type Party int

const (
	User Party = iota
	Computer
)

// String returns "User" or "Computer".
func (p Party) String() string {
	switch p {
	case User:
		return "User"
	case Computer:
		return "Computer"
	default:
		return fmt.Sprintf("Party(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler for hand histories.
func (p Party) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Snapshot is a copy of the ledger at a point in time.
type Snapshot struct {
	User     int `json:"user"`
	Computer int `json:"computer"`
	Pot      int `json:"pot"`
}

// Total returns the coins in play, which bets never change.
func (s Snapshot) Total() int {
	return s.User + s.Computer + s.Pot
}

// Ledger tracks both balances and the shared pot. Balances can only go down
// through PlaceBet, which refuses any bet larger than the balance.
type Ledger struct {
	user     int
	computer int
	pot      int
}

// NewLedger creates a ledger with the given opening balances and an empty pot.
func NewLedger(user, computer int) *Ledger {
	return &Ledger{user: user, computer: computer}
}

// PlaceBet moves amount from party's balance into the pot. An invalid bet
// returns an error and leaves the ledger unchanged.
func (l *Ledger) PlaceBet(party Party, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidBetAmount, amount)
	}
	balance := l.balanceRef(party)
	if balance == nil {
		return fmt.Errorf("%w: unknown party %s", ErrInvalidBetAmount, party)
	}
	if amount > *balance {
		return fmt.Errorf("%w: %s has %d, bet %d", ErrInsufficientBalance, party, *balance, amount)
	}
	*balance -= amount
	l.pot += amount
	return nil
}

// Settle pays the entire pot to winner and empties it. It returns the amount
// paid, which is zero when the pot was already empty.
func (l *Ledger) Settle(winner Party) int {
	balance := l.balanceRef(winner)
	if balance == nil || l.pot == 0 {
		return 0
	}
	paid := l.pot
	*balance += paid
	l.pot = 0
	return paid
}

// Split divides the pot between both parties. The odd coin, if any, goes to
// the computer so that nothing is left behind.
func (l *Ledger) Split() (user, computer int) {
	user = l.pot / 2
	computer = l.pot - user
	l.user += user
	l.computer += computer
	l.pot = 0
	return user, computer
}

// Balance returns party's current balance.
func (l *Ledger) Balance(party Party) int {
	if b := l.balanceRef(party); b != nil {
		return *b
	}
	return 0
}

// Pot returns the coins currently in the pot.
func (l *Ledger) Pot() int {
	return l.pot
}

// Snapshot returns a copy of the current balances and pot.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{User: l.user, Computer: l.computer, Pot: l.pot}
}

// BothSolvent reports whether both parties still have coins.
func (l *Ledger) BothSolvent() bool {
	return l.user > 0 && l.computer > 0
}

func (l *Ledger) balanceRef(party Party) *int {
	switch party {
	case User:
		return &l.user
	case Computer:
		return &l.computer
	default:
		return nil
	}
}
