package view

import (
	"fmt"
	"strconv"

	"blackjack-desktop/internal/gameclient"
)

// HandView is one rendered hand: card faces plus the value line under them.
type HandView struct {
	Cards     []CardView `json:"cards"`
	ValueText string     `json:"valueText"`
	Bust      bool       `json:"bust"`
	Blackjack bool       `json:"blackjack"`
}

// PlayerHandView renders the player's hand with every card face up.
func PlayerHandView(h gameclient.Hand) HandView {
	cards := make([]CardView, len(h.Cards))
	for i, c := range h.Cards {
		cards[i] = NewCardView(c)
	}
	return HandView{
		Cards:     cards,
		ValueText: valueText(h, false),
		Bust:      h.IsBust,
		Blackjack: h.IsBlackjack,
	}
}

// DealerHandView renders the dealer's hand. While HiddenCard is set the
// second card renders as a placeholder and the value line shows only the
// first card's isolated points with an unknown marker, never the real total.
func DealerHandView(h gameclient.Hand) HandView {
	cards := make([]CardView, len(h.Cards))
	for i, c := range h.Cards {
		if i == 1 && h.HiddenCard {
			cards[i] = HiddenCardView()
			continue
		}
		cards[i] = NewCardView(c)
	}
	return HandView{
		Cards:     cards,
		ValueText: valueText(h, h.HiddenCard),
		Bust:      h.IsBust,
		Blackjack: h.IsBlackjack,
	}
}

func valueText(h gameclient.Hand, hidden bool) string {
	var text string
	if hidden && len(h.Cards) > 0 {
		// Display-only approximation of the face-up card. The server's
		// value field may already encode the full total, so it must not
		// be shown while the hole card is down.
		text = fmt.Sprintf("Value: %d + ?", cardPoints(h.Cards[0].Rank))
	} else {
		text = fmt.Sprintf("Value: %d", h.Value.Points)
	}
	if h.IsBlackjack && !hidden {
		text += " (Blackjack!)"
	}
	if h.IsBust {
		text += " (Bust!)"
	}
	return text
}

// cardPoints is a single card's isolated point value: ace counts 11, face
// cards 10, numerals their face value. Used only for the hidden-dealer
// display line, never for any game decision.
func cardPoints(rank string) int {
	switch rank {
	case "A":
		return 11
	case "K", "Q", "J":
		return 10
	}
	n, err := strconv.Atoi(rank)
	if err != nil {
		return 0
	}
	return n
}
