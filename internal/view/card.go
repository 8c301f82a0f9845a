// Package view builds render models for the webview from server game
// snapshots. Everything here is a pure function of a GameState plus the
// loading flag; no view state survives between calls.
package view

import "blackjack-desktop/internal/gameclient"

// Display colors for card faces.
const (
	ColorRed   = "red"
	ColorBlack = "black"
)

// CardView is one rendered card face. A hidden card carries no rank or suit
// at all, so the webview cannot leak the dealer's hole card even by
// inspecting the DOM.
type CardView struct {
	Rank   string `json:"rank,omitempty"`
	Suit   string `json:"suit,omitempty"`
	Color  string `json:"color,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
}

// SuitColor maps a suit mark to its display color. Hearts and diamonds are
// red, clubs and spades black.
func SuitColor(suit string) string {
	switch suit {
	case "♥", "♦":
		return ColorRed
	}
	return ColorBlack
}

// NewCardView renders a face-up card.
func NewCardView(c gameclient.Card) CardView {
	return CardView{
		Rank:  c.Rank,
		Suit:  c.Suit,
		Color: SuitColor(c.Suit),
	}
}

// HiddenCardView renders a face-down card placeholder.
func HiddenCardView() CardView {
	return CardView{Hidden: true}
}
