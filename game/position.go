package game

import "fmt"

// Dice values that force the two skip outcomes in simulation
const (
	drawRoll = 1
	stayRoll = 6
)

// Position is the searchable view of a GameState. It advances through the
// same PlayCards, ApplyArtemisTransfer, skip and IsGameOver functions as real
// play, so the search never disagrees with the rules about what is legal or
// who won.
type Position struct {
	state *GameState
}

// NewPosition wraps s. A pending Artemis gift is resolved first by handing
// over the weakest cards.
func NewPosition(s *GameState) Position {
	return Position{state: resolveArtemis(s)}
}

func (p Position) GameState() *GameState {
	return p.state
}

func (p Position) Player() string {
	return p.state.CurrentPlayerID()
}

// LegalMoves returns every play plus the skip variants; none once the game
// is over. The drawing skip is only offered while the draw pile has cards.
func (p Position) LegalMoves() []Move {
	s := p.state
	if IsGameOver(s).IsOver {
		return nil
	}

	player := s.CurrentPlayerID()
	plays := LegalPlays(s, player)
	moves := make([]Move, 0, len(plays)+2)
	for _, cards := range plays {
		moves = append(moves, PlayMove{Cards: cards})
	}
	if CanSkip(s, player) {
		if len(s.DrawPile) > 0 {
			moves = append(moves, SkipMove{Draw: true})
		}
		moves = append(moves, SkipMove{Draw: false})
	}
	return moves
}

func (p Position) Play(move Move) State {
	s := p.state
	switch m := move.(type) {
	case PlayMove:
		next, err := PlayCards(s, s.CurrentPlayerID(), m.Cards)
		if err != nil {
			panic(fmt.Sprintf("simulated %s rejected: %v", m, err))
		}
		return Position{state: resolveArtemis(next)}
	case SkipMove:
		if err := s.checkSkip(); err != nil {
			panic(fmt.Sprintf("simulated %s rejected: %v", m, err))
		}
		roll := stayRoll
		if m.Draw {
			roll = drawRoll
		}
		next, _ := s.skipWithRoll(roll)
		return Position{state: next}
	default:
		panic(fmt.Sprintf("unexpected move type %T", move))
	}
}

func (p Position) Winner() string {
	return IsGameOver(p.state).Winner
}

func resolveArtemis(s *GameState) *GameState {
	if s.PendingArtemis == 0 {
		return s
	}
	gift := WeakestCards(s, s.CurrentPlayerID(), s.PendingArtemis)
	next, err := ApplyArtemisTransfer(s, gift)
	if err != nil {
		panic(fmt.Sprintf("Artemis gift rejected: %v", err))
	}
	return next
}
