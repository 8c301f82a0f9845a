package view

import "blackjack-desktop/internal/gameclient"

// Fixed banner messages per result tag. An unknown tag renders no banner.
const (
	msgPlayerWin       = "🎉 You Win!"
	msgPlayerBlackjack = "🃏 Blackjack! You Win!"
	msgDealerWin       = "😞 Dealer Wins"
	msgPush            = "🤝 Push (Tie)"

	statusDealerPlaying = "Dealer is playing..."
)

// Controls describes the action buttons for the current position. Hit and
// Stand are always rendered during the player's turn but may be disabled;
// Double Down is rendered only while the capability is available.
type Controls struct {
	HitEnabled        bool `json:"hitEnabled"`
	StandEnabled      bool `json:"standEnabled"`
	ShowDoubleDown    bool `json:"showDoubleDown"`
	DoubleDownEnabled bool `json:"doubleDownEnabled"`
}

// TableView is the full game surface for one snapshot. When Ready is false
// no game has been dealt yet and the webview shows a loading placeholder
// instead of any hand data.
type TableView struct {
	Ready        bool     `json:"ready"`
	Loading      bool     `json:"loading"`
	Dealer       HandView `json:"dealer"`
	Player       HandView `json:"player"`
	ResultText   string   `json:"resultText,omitempty"`
	StatusText   string   `json:"statusText,omitempty"`
	ShowControls bool     `json:"showControls"`
	Controls     Controls `json:"controls"`
}

// Table renders the game surface for the given snapshot. A nil snapshot
// yields the initial loading placeholder.
func Table(gs *gameclient.GameState, loading bool) TableView {
	if gs == nil {
		return TableView{Loading: loading}
	}

	tv := TableView{
		Ready:      true,
		Loading:    loading,
		Dealer:     DealerHandView(gs.DealerHand),
		Player:     PlayerHandView(gs.PlayerHand),
		ResultText: resultMessage(gs.Result),
	}

	switch gs.State {
	case gameclient.StatePlayerTurn:
		tv.ShowControls = true
		tv.Controls = Controls{
			HitEnabled:        !loading && gs.AvailableActions.CanHit,
			StandEnabled:      !loading && gs.AvailableActions.CanStand,
			ShowDoubleDown:    gs.AvailableActions.CanDoubleDown,
			DoubleDownEnabled: !loading,
		}
	case gameclient.StateDealerTurn:
		tv.StatusText = statusDealerPlaying
	}

	return tv
}

func resultMessage(r gameclient.Result) string {
	switch r {
	case gameclient.ResultPlayerWin:
		return msgPlayerWin
	case gameclient.ResultPlayerBlackjack:
		return msgPlayerBlackjack
	case gameclient.ResultDealerWin:
		return msgDealerWin
	case gameclient.ResultPush:
		return msgPush
	}
	return ""
}
