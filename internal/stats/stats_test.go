package stats

import (
	"testing"

	"blackjack-desktop/internal/gameclient"
)

func TestRecordTotalsStayConsistent(t *testing.T) {
	sequences := [][]gameclient.Result{
		{},
		{gameclient.ResultPlayerWin},
		{gameclient.ResultDealerWin, gameclient.ResultDealerWin, gameclient.ResultPush},
		{
			gameclient.ResultPlayerBlackjack,
			gameclient.ResultPlayerWin,
			gameclient.ResultDealerWin,
			gameclient.ResultPush,
			gameclient.ResultPlayerWin,
		},
	}

	for _, seq := range sequences {
		var s Stats
		for _, r := range seq {
			s.Record(r)
		}
		if s.Hands != len(seq) {
			t.Errorf("hands: got %d, want %d", s.Hands, len(seq))
		}
		if s.Hands != s.Wins+s.Losses+s.Pushes {
			t.Errorf("tally out of balance: %+v", s)
		}
	}
}

func TestBlackjackCountsAsWin(t *testing.T) {
	var s Stats
	s.Record(gameclient.ResultPlayerBlackjack)

	if s.Wins != 1 {
		t.Errorf("wins: got %d, want 1", s.Wins)
	}
	if s.Losses != 0 || s.Pushes != 0 {
		t.Errorf("unexpected tally: %+v", s)
	}
}

func TestWinRate(t *testing.T) {
	var s Stats
	if got := s.WinRate(); got != 0 {
		t.Errorf("empty win rate: got %f, want 0", got)
	}
	if got := s.View().WinRateText; got != "0.0" {
		t.Errorf("empty win rate text: got %q, want 0.0", got)
	}

	s = Stats{Hands: 3, Wins: 1, Losses: 1, Pushes: 1}
	if got := s.View().WinRateText; got != "33.3" {
		t.Errorf("win rate text: got %q, want 33.3", got)
	}

	s = Stats{Hands: 2, Wins: 1, Losses: 1}
	if got := s.View().WinRateText; got != "50.0" {
		t.Errorf("win rate text: got %q, want 50.0", got)
	}

	s = Stats{Hands: 4, Wins: 4}
	if got := s.View().WinRateText; got != "100.0" {
		t.Errorf("win rate text: got %q, want 100.0", got)
	}
}

func TestViewMirrorsCounters(t *testing.T) {
	s := Stats{Hands: 7, Wins: 3, Losses: 3, Pushes: 1}
	v := s.View()

	if v.Hands != 7 || v.Wins != 3 || v.Losses != 3 || v.Pushes != 1 {
		t.Errorf("view mismatch: %+v", v)
	}
}
