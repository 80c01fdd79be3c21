package game

import (
	"fmt"

	"github.com/google/uuid"
)

// InitializeGame shuffles the deck, runs the dice duel for the first turn and
// deals HandSize cards to each player. The undealt cards form the draw pile.
func InitializeGame(players [2]string, deck *Deck, src Source) *GameState {
	if players[0] == players[1] {
		panic(fmt.Sprintf("players must be distinct, got %q twice", players[0]))
	}
	if deck.Size() < 2*HandSize {
		panic(fmt.Sprintf("deck of %d cards cannot deal two hands of %d", deck.Size(), HandSize))
	}

	winner, roll := DiceDuel(src)

	order := deck.IDs()
	Shuffle(order, src)

	var hands [2][]CardID
	for i := 0; i < 2*HandSize; i++ {
		last := len(order) - 1
		hands[i%2] = append(hands[i%2], order[last])
		order = order[:last]
	}

	s := &GameState{
		ID:        uuid.New(),
		Deck:      deck,
		Players:   players,
		Hands:     hands,
		DrawPile:  order,
		Disabled:  make([]bool, deck.Size()),
		Current:   winner,
		lastActor: -1,
		Action: Action{
			Kind:     GameBegin,
			PlayerID: players[winner],
			TargetID: players[1-winner],
			Roll:     roll,
		},
	}
	s.mustBeConsistent()
	return s
}

// DiceDuel rolls a die for each seat until one is strictly higher and returns
// that seat with its winning roll.
func DiceDuel(src Source) (seat int, roll int) {
	for {
		first, second := rollDie(src), rollDie(src)
		switch {
		case first > second:
			return 0, first
		case second > first:
			return 1, second
		}
	}
}

// Shuffle is a Fisher-Yates shuffle driven by src.
func Shuffle(ids []CardID, src Source) {
	for i := len(ids) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
}
