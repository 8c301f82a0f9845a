package gameclient

import (
	"encoding/json"
	"testing"
)

func TestHandValueDecode(t *testing.T) {
	tests := []struct {
		in   string
		want HandValue
	}{
		{`17`, HandValue{Points: 17}},
		{`21`, HandValue{Points: 21}},
		{`"hidden"`, HandValue{Hidden: true}},
	}

	for _, tt := range tests {
		var v HandValue
		if err := json.Unmarshal([]byte(tt.in), &v); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if v != tt.want {
			t.Errorf("unmarshal %s: got %+v, want %+v", tt.in, v, tt.want)
		}
	}
}

func TestHandValueEncode(t *testing.T) {
	b, err := json.Marshal(HandValue{Points: 17})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "17" {
		t.Errorf("expected 17, got %s", b)
	}

	b, err = json.Marshal(HandValue{Hidden: true})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"hidden"` {
		t.Errorf("expected \"hidden\", got %s", b)
	}
}

func TestResultEncodesNullWhenInProgress(t *testing.T) {
	b, err := json.Marshal(GameState{State: StatePlayerTurn})
	if err != nil {
		t.Fatal(err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(b, &probe); err != nil {
		t.Fatal(err)
	}
	if string(probe["result"]) != "null" {
		t.Errorf("result: expected null, got %s", probe["result"])
	}

	b, err = json.Marshal(Result("push"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"push"` {
		t.Errorf("expected \"push\", got %s", b)
	}
}

func TestResultDecode(t *testing.T) {
	var gs GameState
	if err := json.Unmarshal([]byte(`{"state":"game_over","result":"dealer_win"}`), &gs); err != nil {
		t.Fatal(err)
	}
	if gs.Result != ResultDealerWin {
		t.Errorf("expected dealer_win, got %q", gs.Result)
	}

	var fresh GameState
	if err := json.Unmarshal([]byte(`{"state":"player_turn","result":null}`), &fresh); err != nil {
		t.Fatal(err)
	}
	if fresh.Result != "" {
		t.Errorf("null result: expected empty, got %q", fresh.Result)
	}
}
