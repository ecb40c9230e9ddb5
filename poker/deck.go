package poker

import (
	"errors"
	"math/rand/v2"
)

// ErrEmptyDeck is returned when a draw is attempted with too few cards left.
var ErrEmptyDeck = errors.New("deck is empty")

// Rand is the random source used for shuffling. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Deck is a 52-card deck that is drawn down from the top and never
// replenished except by Initialize.
type Deck struct {
	cards []Card
	rng   Rand // nil falls back to the global source
}

// NewDeck creates an initialized, shuffled deck using rng.
func NewDeck(rng Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	d.Initialize()
	return d
}

// Initialize discards the current contents and replaces them with a freshly
// shuffled set of all 52 cards.
func (d *Deck) Initialize() {
	d.cards = d.cards[:0]
	for suit := range uint8(NumSuits) {
		for rank := range uint8(NumRanks) {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	d.shuffle()
}

// shuffle applies Fisher-Yates to the remaining cards
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return 0, ErrEmptyDeck
	}
	card := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, nil
}

// DrawHand draws three cards. Nothing is drawn if fewer than three remain.
func (d *Deck) DrawHand() (Hand, error) {
	if len(d.cards) < HandSize {
		return Hand{}, ErrEmptyDeck
	}
	var h Hand
	for i := range h {
		h[i], _ = d.Draw()
	}
	return h, nil
}

// Remaining returns the number of cards left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
