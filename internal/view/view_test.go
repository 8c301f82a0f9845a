package view

import (
	"testing"

	"blackjack-desktop/internal/gameclient"
)

func card(rank, suit string) gameclient.Card {
	return gameclient.Card{Rank: rank, Suit: suit}
}

func TestSuitColor(t *testing.T) {
	tests := []struct {
		suit string
		want string
	}{
		{"♥", ColorRed},
		{"♦", ColorRed},
		{"♣", ColorBlack},
		{"♠", ColorBlack},
	}
	for _, tt := range tests {
		if got := SuitColor(tt.suit); got != tt.want {
			t.Errorf("SuitColor(%s) = %s, want %s", tt.suit, got, tt.want)
		}
	}
}

func TestHiddenCardLeaksNothing(t *testing.T) {
	cv := HiddenCardView()
	if !cv.Hidden {
		t.Error("expected Hidden")
	}
	if cv.Rank != "" || cv.Suit != "" || cv.Color != "" {
		t.Errorf("hidden card carries face data: %+v", cv)
	}
}

func TestDealerHandHidesSecondCard(t *testing.T) {
	h := gameclient.Hand{
		Cards:      []gameclient.Card{card("A", "♠"), card("9", "♦")},
		Value:      gameclient.HandValue{Hidden: true},
		HiddenCard: true,
	}
	hv := DealerHandView(h)

	if len(hv.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(hv.Cards))
	}
	if hv.Cards[0].Rank != "A" {
		t.Errorf("first card should be face up, got %+v", hv.Cards[0])
	}
	if !hv.Cards[1].Hidden || hv.Cards[1].Rank != "" || hv.Cards[1].Suit != "" {
		t.Errorf("second card should be a bare placeholder, got %+v", hv.Cards[1])
	}
	if hv.ValueText != "Value: 11 + ?" {
		t.Errorf("value text: expected %q, got %q", "Value: 11 + ?", hv.ValueText)
	}
}

func TestDealerPartialValueRanks(t *testing.T) {
	tests := []struct {
		rank string
		want string
	}{
		{"A", "Value: 11 + ?"},
		{"K", "Value: 10 + ?"},
		{"Q", "Value: 10 + ?"},
		{"J", "Value: 10 + ?"},
		{"10", "Value: 10 + ?"},
		{"7", "Value: 7 + ?"},
		{"2", "Value: 2 + ?"},
	}
	for _, tt := range tests {
		h := gameclient.Hand{
			Cards:      []gameclient.Card{card(tt.rank, "♣"), card("5", "♥")},
			Value:      gameclient.HandValue{Hidden: true},
			HiddenCard: true,
		}
		if got := DealerHandView(h).ValueText; got != tt.want {
			t.Errorf("up card %s: got %q, want %q", tt.rank, got, tt.want)
		}
	}
}

func TestDealerRevealedValue(t *testing.T) {
	h := gameclient.Hand{
		Cards: []gameclient.Card{card("A", "♠"), card("K", "♦")},
		Value: gameclient.HandValue{Points: 21},
	}
	// Two-card 21 flagged by the server.
	h.IsBlackjack = true

	got := DealerHandView(h).ValueText
	if got != "Value: 21 (Blackjack!)" {
		t.Errorf("got %q", got)
	}
}

func TestDealerBlackjackSuppressedWhileHidden(t *testing.T) {
	h := gameclient.Hand{
		Cards:       []gameclient.Card{card("A", "♠"), card("K", "♦")},
		Value:       gameclient.HandValue{Hidden: true},
		IsBlackjack: true,
		HiddenCard:  true,
	}
	got := DealerHandView(h).ValueText
	if got != "Value: 11 + ?" {
		t.Errorf("blackjack must not leak through the value line, got %q", got)
	}
}

func TestPlayerHandValueText(t *testing.T) {
	tests := []struct {
		name string
		hand gameclient.Hand
		want string
	}{
		{
			name: "plain",
			hand: gameclient.Hand{
				Cards: []gameclient.Card{card("10", "♠"), card("7", "♥")},
				Value: gameclient.HandValue{Points: 17},
			},
			want: "Value: 17",
		},
		{
			name: "bust",
			hand: gameclient.Hand{
				Cards:  []gameclient.Card{card("10", "♠"), card("7", "♥"), card("9", "♦")},
				Value:  gameclient.HandValue{Points: 26},
				IsBust: true,
			},
			want: "Value: 26 (Bust!)",
		},
		{
			name: "blackjack",
			hand: gameclient.Hand{
				Cards:       []gameclient.Card{card("A", "♠"), card("Q", "♥")},
				Value:       gameclient.HandValue{Points: 21},
				IsBlackjack: true,
			},
			want: "Value: 21 (Blackjack!)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlayerHandView(tt.hand).ValueText; got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func playerTurnState() *gameclient.GameState {
	return &gameclient.GameState{
		PlayerHand: gameclient.Hand{
			Cards: []gameclient.Card{card("10", "♠"), card("7", "♥")},
			Value: gameclient.HandValue{Points: 17},
		},
		DealerHand: gameclient.Hand{
			Cards:      []gameclient.Card{card("9", "♦"), card("5", "♣")},
			Value:      gameclient.HandValue{Hidden: true},
			HiddenCard: true,
		},
		State: gameclient.StatePlayerTurn,
		AvailableActions: gameclient.AvailableActions{
			CanHit:        true,
			CanStand:      true,
			CanDoubleDown: true,
		},
	}
}

func TestTableNilState(t *testing.T) {
	tv := Table(nil, true)
	if tv.Ready {
		t.Error("nil state must not render as ready")
	}
	if !tv.Loading {
		t.Error("loading flag lost")
	}
	if tv.ShowControls {
		t.Error("no controls without a game")
	}
}

func TestTablePlayerTurnControls(t *testing.T) {
	tv := Table(playerTurnState(), false)

	if !tv.ShowControls {
		t.Fatal("expected controls during player turn")
	}
	c := tv.Controls
	if !c.HitEnabled || !c.StandEnabled {
		t.Errorf("hit/stand should be enabled: %+v", c)
	}
	if !c.ShowDoubleDown || !c.DoubleDownEnabled {
		t.Errorf("double down should be rendered and enabled: %+v", c)
	}
}

func TestTableLoadingDisablesAllControls(t *testing.T) {
	tv := Table(playerTurnState(), true)

	c := tv.Controls
	if c.HitEnabled || c.StandEnabled || c.DoubleDownEnabled {
		t.Errorf("in-flight request must disable every control: %+v", c)
	}
	// Rendering (vs enabling) still follows the capability.
	if !c.ShowDoubleDown {
		t.Error("double down rendering should not depend on loading")
	}
}

func TestTableCapabilitiesOff(t *testing.T) {
	gs := playerTurnState()
	gs.AvailableActions = gameclient.AvailableActions{CanHit: false, CanStand: true}

	c := Table(gs, false).Controls
	if c.HitEnabled {
		t.Error("hit must follow can_hit")
	}
	if !c.StandEnabled {
		t.Error("stand must follow can_stand")
	}
	if c.ShowDoubleDown {
		t.Error("double down must not render without the capability")
	}
}

func TestTableDealerTurn(t *testing.T) {
	gs := playerTurnState()
	gs.State = gameclient.StateDealerTurn
	gs.DealerHand.HiddenCard = false
	gs.DealerHand.Value = gameclient.HandValue{Points: 14}

	tv := Table(gs, false)
	if tv.ShowControls {
		t.Error("no controls during dealer turn")
	}
	if tv.StatusText != "Dealer is playing..." {
		t.Errorf("status text: got %q", tv.StatusText)
	}
	if tv.Dealer.Cards[1].Hidden {
		t.Error("dealer hand should be fully revealed")
	}
}

func TestResultBannerMessages(t *testing.T) {
	tests := []struct {
		result gameclient.Result
		want   string
	}{
		{gameclient.ResultPlayerWin, "🎉 You Win!"},
		{gameclient.ResultPlayerBlackjack, "🃏 Blackjack! You Win!"},
		{gameclient.ResultDealerWin, "😞 Dealer Wins"},
		{gameclient.ResultPush, "🤝 Push (Tie)"},
		{gameclient.Result("seven_card_charlie"), ""},
		{gameclient.Result(""), ""},
	}
	for _, tt := range tests {
		gs := playerTurnState()
		gs.State = gameclient.StateGameOver
		gs.Result = tt.result

		if got := Table(gs, false).ResultText; got != tt.want {
			t.Errorf("result %q: got %q, want %q", tt.result, got, tt.want)
		}
	}
}
