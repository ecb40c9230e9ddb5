// Package poker provides the cards, deck and three-card hand evaluation used by
// the game engine.
package poker

import (
	"fmt"
	"strings"
)

// Rank ordinals run from Two (0) to Ace (12). Aces are high only.
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suits carry no ordering; the values only identify a card.
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

const (
	NumRanks = 13
	NumSuits = 4
	DeckSize = NumRanks * NumSuits
	HandSize = 3
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
	suitShift = 4
	rankMask  = 0x0f
)

var suitSymbols = [NumSuits]string{"♣", "♦", "♥", "♠"}

// Card packs a rank ordinal and a suit into a single byte.
type Card uint8

// NewCard creates a card from a rank ordinal (0-12) and a suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(suit<<suitShift | rank&rankMask)
}

// Rank returns the rank ordinal, 0 for Two through 12 for Ace.
func (c Card) Rank() uint8 {
	return uint8(c) & rankMask
}

// Suit returns the suit value.
func (c Card) Suit() uint8 {
	return uint8(c) >> suitShift
}

// Valid reports whether the card encodes a real rank and suit.
func (c Card) Valid() bool {
	return c.Rank() < NumRanks && c.Suit() < NumSuits
}

// String returns the compact two character form, e.g. "As" or "Td".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

// IsRed reports whether the card is a heart or a diamond.
func (c Card) IsRed() bool {
	return c.Suit() == Hearts || c.Suit() == Diamonds
}

// RankLabel returns the rank as printed on a card face ("10" rather than "T").
func RankLabel(rank uint8) string {
	if rank == Ten {
		return "10"
	}
	if rank >= NumRanks {
		return "?"
	}
	return string(rankChars[rank])
}

// SuitSymbol returns the unicode pip for a suit.
func SuitSymbol(suit uint8) string {
	if suit >= NumSuits {
		return "?"
	}
	return suitSymbols[suit]
}

// ParseCard parses the compact form produced by Card.String.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q: expected 2 characters", s)
	}
	rank := strings.IndexByte(rankChars, s[0])
	if rank < 0 {
		return 0, fmt.Errorf("invalid card %q: unknown rank %q", s, s[0])
	}
	suit := strings.IndexByte(suitChars, s[1])
	if suit < 0 {
		return 0, fmt.Errorf("invalid card %q: unknown suit %q", s, s[1])
	}
	return NewCard(uint8(rank), uint8(suit)), nil
}

// Hand is the three cards owned by one party for a round.
type Hand [HandSize]Card

// String returns the cards separated by spaces, e.g. "As Kd 2c".
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Cards returns the hand as a slice.
func (h Hand) Cards() []Card {
	return h[:]
}

// ParseHand parses three whitespace separated cards.
func ParseHand(s string) (Hand, error) {
	fields := strings.Fields(s)
	if len(fields) != HandSize {
		return Hand{}, fmt.Errorf("invalid hand %q: expected %d cards, got %d", s, HandSize, len(fields))
	}
	var h Hand
	for i, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return Hand{}, err
		}
		h[i] = c
	}
	return h, nil
}

// MustParseHand is ParseHand for fixtures; it panics on malformed input.
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}
