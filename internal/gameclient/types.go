package gameclient

import "encoding/json"

// Game lifecycle phases reported by the service.
const (
	StateDealing    = "dealing"
	StatePlayerTurn = "player_turn"
	StateDealerTurn = "dealer_turn"
	StateGameOver   = "game_over"
)

// Result is the outcome tag of a finished game. The empty value means the
// game is still in progress (serialized as JSON null, matching the service).
type Result string

const (
	ResultPlayerWin       Result = "player_win"
	ResultPlayerBlackjack Result = "player_blackjack"
	ResultDealerWin       Result = "dealer_win"
	ResultPush            Result = "push"
)

// MarshalJSON emits null for the in-progress result, the wire format the
// service uses for games without an outcome.
func (r Result) MarshalJSON() ([]byte, error) {
	if r == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(r))
}

// Card is a playing card as the service serializes it: a unicode suit mark
// and a rank of "2".."10", "J", "Q", "K" or "A".
type Card struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

// HandValue is a hand's computed value. The service sends a number, except
// for the dealer's hand while the hole card is face down, where it sends the
// string "hidden" instead of leaking the total.
type HandValue struct {
	Points int
	Hidden bool
}

func (v *HandValue) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = HandValue{Hidden: true}
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = HandValue{Points: n}
	return nil
}

func (v HandValue) MarshalJSON() ([]byte, error) {
	if v.Hidden {
		return json.Marshal("hidden")
	}
	return json.Marshal(v.Points)
}

// Hand is a dealt hand with its server-computed value and status flags.
// HiddenCard is set on the dealer's hand while the second card must not be
// shown to the player.
type Hand struct {
	Cards       []Card    `json:"cards"`
	Value       HandValue `json:"value"`
	IsBust      bool      `json:"is_bust"`
	IsBlackjack bool      `json:"is_blackjack"`
	HiddenCard  bool      `json:"hidden_card,omitempty"`
}

// AvailableActions is the capability set the service computes from the game
// rules for the current position.
type AvailableActions struct {
	CanHit        bool `json:"can_hit"`
	CanStand      bool `json:"can_stand"`
	CanDoubleDown bool `json:"can_double_down"`
	CanSplit      bool `json:"can_split"`
}

// GameState is the authoritative game snapshot. The client never mutates it;
// each action response replaces the previous snapshot wholesale.
type GameState struct {
	PlayerHand       Hand             `json:"player_hand"`
	DealerHand       Hand             `json:"dealer_hand"`
	State            string           `json:"state"`
	Result           Result           `json:"result"`
	AvailableActions AvailableActions `json:"available_actions"`
}

// NewGameResponse pairs the server-issued session id with the opening deal.
type NewGameResponse struct {
	SessionID string    `json:"session_id"`
	GameState GameState `json:"game_state"`
}
