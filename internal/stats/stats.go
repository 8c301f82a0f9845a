// Package stats tallies game outcomes for the current app session. The
// tally lives in memory only; it is never written to disk and never sent to
// the game service.
package stats

import (
	"strconv"

	"blackjack-desktop/internal/gameclient"
)

// Stats is the running session tally. Zero value is ready to use.
type Stats struct {
	Hands  int
	Wins   int
	Losses int
	Pushes int
}

// Record tallies one concluded game. Callers are responsible for calling it
// exactly once per game. A player blackjack counts as a win; an unknown tag
// still counts the hand.
func (s *Stats) Record(result gameclient.Result) {
	s.Hands++
	switch result {
	case gameclient.ResultPlayerWin, gameclient.ResultPlayerBlackjack:
		s.Wins++
	case gameclient.ResultDealerWin:
		s.Losses++
	case gameclient.ResultPush:
		s.Pushes++
	}
}

// WinRate returns the win percentage, 0 when no hands have been played.
func (s Stats) WinRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Hands) * 100
}

// PanelView is the statistics panel render model.
type PanelView struct {
	Hands       int    `json:"hands"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Pushes      int    `json:"pushes"`
	WinRateText string `json:"winRateText"`
}

// View renders the panel with the win rate formatted to one decimal
// ("0.0" before any hand is played).
func (s Stats) View() PanelView {
	return PanelView{
		Hands:       s.Hands,
		Wins:        s.Wins,
		Losses:      s.Losses,
		Pushes:      s.Pushes,
		WinRateText: strconv.FormatFloat(s.WinRate(), 'f', 1, 64),
	}
}
