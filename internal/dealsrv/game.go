// Package dealsrv is a loopback implementation of the game service's HTTP
// contract, used for offline play and for integration-testing the client.
// It speaks exactly the wire format of the real service: same paths, same
// JSON shapes, same {"detail": ...} error bodies.
package dealsrv

import (
	"errors"
	"math/rand/v2"

	"blackjack-desktop/internal/gameclient"
)

var (
	suits = []string{"♥", "♦", "♣", "♠"}
	ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
)

var errIllegalAction = errors.New("cannot act at this time")

// game is one blackjack round. Not safe for concurrent use; the server
// serializes access per session.
type game struct {
	deck      []gameclient.Card
	player    []gameclient.Card
	dealer    []gameclient.Card
	state     string
	result    gameclient.Result
	canDouble bool
	canSplit  bool
}

func newDeck() []gameclient.Card {
	deck := make([]gameclient.Card, 0, 52)
	for _, suit := range suits {
		for _, rank := range ranks {
			deck = append(deck, gameclient.Card{Suit: suit, Rank: rank})
		}
	}
	rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

func newGame() *game {
	g := &game{
		deck:  newDeck(),
		state: gameclient.StateDealing,
	}
	g.player = append(g.player, g.deal())
	g.dealer = append(g.dealer, g.deal())
	g.player = append(g.player, g.deal())
	g.dealer = append(g.dealer, g.deal())

	g.canDouble = true
	g.canSplit = g.player[0].Rank == g.player[1].Rank
	g.settleOpening()
	return g
}

// settleOpening resolves a dealt blackjack before any player action, or
// hands the turn to the player.
func (g *game) settleOpening() {
	if isBlackjack(g.player) {
		if isBlackjack(g.dealer) {
			g.result = gameclient.ResultPush
		} else {
			g.result = gameclient.ResultPlayerBlackjack
		}
		g.state = gameclient.StateGameOver
		return
	}
	g.state = gameclient.StatePlayerTurn
}

func (g *game) deal() gameclient.Card {
	if len(g.deck) == 0 {
		g.deck = newDeck()
	}
	card := g.deck[len(g.deck)-1]
	g.deck = g.deck[:len(g.deck)-1]
	return card
}

func (g *game) hit() error {
	if g.state != gameclient.StatePlayerTurn {
		return errIllegalAction
	}
	g.player = append(g.player, g.deal())
	g.canDouble = false
	g.canSplit = false

	if handValue(g.player) > 21 {
		g.result = gameclient.ResultDealerWin
		g.state = gameclient.StateGameOver
	}
	return nil
}

func (g *game) stand() error {
	if g.state != gameclient.StatePlayerTurn {
		return errIllegalAction
	}
	g.dealerPlay()
	return nil
}

func (g *game) doubleDown() error {
	if g.state != gameclient.StatePlayerTurn || !g.canDouble {
		return errIllegalAction
	}
	g.player = append(g.player, g.deal())
	g.canDouble = false
	g.canSplit = false

	if handValue(g.player) > 21 {
		g.result = gameclient.ResultDealerWin
		g.state = gameclient.StateGameOver
		return nil
	}
	g.dealerPlay()
	return nil
}

// dealerPlay runs the dealer out (hits below 17, stands on 17 and above)
// and settles the round.
func (g *game) dealerPlay() {
	g.state = gameclient.StateDealerTurn

	for handValue(g.dealer) < 17 {
		g.dealer = append(g.dealer, g.deal())
	}

	playerValue := handValue(g.player)
	dealerValue := handValue(g.dealer)

	switch {
	case dealerValue > 21:
		g.result = gameclient.ResultPlayerWin
	case playerValue > dealerValue:
		g.result = gameclient.ResultPlayerWin
	case dealerValue > playerValue:
		g.result = gameclient.ResultDealerWin
	default:
		g.result = gameclient.ResultPush
	}
	g.state = gameclient.StateGameOver
}

// handValue is the best ace-aware total for a hand.
func handValue(cards []gameclient.Card) int {
	total, aces := 0, 0
	for _, c := range cards {
		switch c.Rank {
		case "A":
			total += 11
			aces++
		case "K", "Q", "J", "10":
			total += 10
		default:
			total += int(c.Rank[0] - '0')
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

func isBlackjack(cards []gameclient.Card) bool {
	return len(cards) == 2 && handValue(cards) == 21
}

// snapshot builds the wire-format game state. The dealer's value and second
// card stay hidden during the player's turn.
func (g *game) snapshot() gameclient.GameState {
	playerTurn := g.state == gameclient.StatePlayerTurn

	dealerValue := gameclient.HandValue{Hidden: true}
	if g.state == gameclient.StateDealerTurn || g.state == gameclient.StateGameOver {
		dealerValue = gameclient.HandValue{Points: handValue(g.dealer)}
	}

	return gameclient.GameState{
		PlayerHand: gameclient.Hand{
			Cards:       append([]gameclient.Card(nil), g.player...),
			Value:       gameclient.HandValue{Points: handValue(g.player)},
			IsBust:      handValue(g.player) > 21,
			IsBlackjack: isBlackjack(g.player),
		},
		DealerHand: gameclient.Hand{
			Cards:       append([]gameclient.Card(nil), g.dealer...),
			Value:       dealerValue,
			IsBust:      handValue(g.dealer) > 21,
			IsBlackjack: isBlackjack(g.dealer),
			HiddenCard:  playerTurn,
		},
		State:  g.state,
		Result: g.result,
		AvailableActions: gameclient.AvailableActions{
			CanHit:        playerTurn,
			CanStand:      playerTurn,
			CanDoubleDown: playerTurn && g.canDouble,
			CanSplit:      playerTurn && g.canSplit,
		},
	}
}
