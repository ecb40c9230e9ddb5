package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/teenpatti/poker"
)

// cardFace is the inside of a card box, seven columns wide:
//
//	┌───────┐
//	│ A     │
//	│       │
//	│   ♠   │
//	│       │
//	│     A │
//	└───────┘
func cardFace(c poker.Card) string {
	rank := poker.RankLabel(c.Rank())
	suit := poker.SuitSymbol(c.Suit())
	return strings.Join([]string{
		fmt.Sprintf(" %-2s    ", rank),
		"       ",
		"   " + suit + "   ",
		"       ",
		fmt.Sprintf("    %2s ", rank),
	}, "\n")
}

// RenderCard draws a single card as a bordered box, red suits in red.
func (s Styles) RenderCard(c poker.Card) string {
	face := s.BlackCard
	if c.IsRed() {
		face = s.RedCard
	}
	return s.Card.Render(face.Render(cardFace(c)))
}

// RenderHand lays the cards of a hand out side by side.
func (s Styles) RenderHand(h poker.Hand) string {
	cards := make([]string, 0, 2*poker.HandSize-1)
	for i, c := range h {
		if i > 0 {
			cards = append(cards, " ")
		}
		cards = append(cards, s.RenderCard(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
