package game

import (
	"fmt"
	"strings"
)

type Move interface {
	IsSkip() bool
	String() string
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Winner() string
}

// Evaluates the game state to a score between 0 and 1 indicating how
// favorable the current player's position is to a winning outcome.
type Evaluate func(State) float64

// PlayMove puts Cards on the trick.
type PlayMove struct {
	Cards []CardID
}

func (m PlayMove) IsSkip() bool {
	return false
}

func (m PlayMove) String() string {
	ids := make([]string, len(m.Cards))
	for i, id := range m.Cards {
		ids[i] = fmt.Sprint(int(id))
	}
	return "play[" + strings.Join(ids, ",") + "]"
}

// SkipMove is a skip with the dice outcome fixed up front, so that searching
// over it stays deterministic.
type SkipMove struct {
	Draw bool
}

func (m SkipMove) IsSkip() bool {
	return true
}

func (m SkipMove) String() string {
	if m.Draw {
		return "skip+draw"
	}
	return "skip"
}
