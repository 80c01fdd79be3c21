package game

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

const HandSize = 14

// Play is one entry of the trick. Rank is the effective rank at the time the
// cards were played.
type Play struct {
	PlayerID string
	Cards    []CardID
	Rank     Rank
}

// Draw reports the card picked up by a skip.
type Draw struct {
	Card     CardID
	PlayerID string
}

// GameState is an immutable snapshot of a match. Every transition returns a
// new GameState and leaves its input untouched, so a state can be shared
// freely between goroutines.
type GameState struct {
	ID          uuid.UUID
	Deck        *Deck
	Players     [2]string
	Hands       [2][]CardID
	DrawPile    []CardID // Index 0 is the top of the pile
	DiscardPile []CardID
	Trick       []Play // Most recent play first
	Disabled    []bool // Indexed by CardID, set by Hypnos
	Current     int    // Seat of the player to act
	// Number of cards the current player still has to give away after
	// playing Artemis. No other transition is legal while positive.
	PendingArtemis int
	Action         Action

	emptiedByPower [2]bool // Hand was last emptied by a power card event
	lastActor      int     // Seat that applied the last transition, -1 before any
}

// NewGameState arranges a position directly: the given hands and draw pile,
// every other card of the deck in the discard pile. Intended for puzzles and
// tests; matches start with InitializeGame.
func NewGameState(players [2]string, deck *Deck, hands [2][]CardID, drawPile []CardID, current int) *GameState {
	if current != 0 && current != 1 {
		panic(fmt.Sprintf("invalid seat %d", current))
	}
	s := &GameState{
		ID:        uuid.New(),
		Deck:      deck,
		Players:   players,
		Hands:     [2][]CardID{slices.Clone(hands[0]), slices.Clone(hands[1])},
		DrawPile:  slices.Clone(drawPile),
		Disabled:  make([]bool, deck.Size()),
		Current:   current,
		lastActor: -1,
	}

	placed := make([]bool, deck.Size())
	for _, zone := range [][]CardID{hands[0], hands[1], drawPile} {
		for _, id := range zone {
			placed[id] = true
		}
	}
	for _, id := range deck.IDs() {
		if !placed[id] {
			s.DiscardPile = append(s.DiscardPile, id)
		}
	}

	s.mustBeConsistent()
	return s
}

func (s *GameState) Copy() *GameState {
	var trick []Play
	for _, play := range s.Trick {
		trick = append(trick, Play{PlayerID: play.PlayerID, Cards: slices.Clone(play.Cards), Rank: play.Rank})
	}

	return &GameState{
		ID:             s.ID,
		Deck:           s.Deck,
		Players:        s.Players,
		Hands:          [2][]CardID{slices.Clone(s.Hands[0]), slices.Clone(s.Hands[1])},
		DrawPile:       slices.Clone(s.DrawPile),
		DiscardPile:    slices.Clone(s.DiscardPile),
		Trick:          trick,
		Disabled:       slices.Clone(s.Disabled),
		Current:        s.Current,
		PendingArtemis: s.PendingArtemis,
		Action:         s.Action,
		emptiedByPower: s.emptiedByPower,
		lastActor:      s.lastActor,
	}
}

// SeatOf returns 0 or 1 for a known player and -1 otherwise.
func (s *GameState) SeatOf(playerID string) int {
	for seat, id := range s.Players {
		if id == playerID {
			return seat
		}
	}
	return -1
}

func (s *GameState) CurrentPlayerID() string {
	return s.Players[s.Current]
}

// OpponentID returns the other player, or "" for an unknown player.
func (s *GameState) OpponentID(playerID string) string {
	seat := s.SeatOf(playerID)
	if seat < 0 {
		return ""
	}
	return s.Players[1-seat]
}

// Hand returns the player's cards. The slice belongs to the state and must not
// be modified.
func (s *GameState) Hand(playerID string) []CardID {
	seat := s.SeatOf(playerID)
	if seat < 0 {
		return nil
	}
	return s.Hands[seat]
}

func (s *GameState) Card(id CardID) Card {
	return s.Deck.Card(id)
}

func (s *GameState) IsDisabled(id CardID) bool {
	return s.Disabled[id]
}

// EffectiveRank is the rank a card compares as: its own, or LowestRank while
// disabled by Hypnos.
func (s *GameState) EffectiveRank(id CardID) Rank {
	if s.Disabled[id] {
		return LowestRank
	}
	return s.Deck.Card(id).Rank
}

// TrickCards lists every card on the table.
func (s *GameState) TrickCards() []CardID {
	var cards []CardID
	for _, play := range s.Trick {
		cards = append(cards, play.Cards...)
	}
	return cards
}

// CardCount is the total number of cards over all zones.
func (s *GameState) CardCount() int {
	return len(s.Hands[0]) + len(s.Hands[1]) + len(s.DrawPile) + len(s.DiscardPile) + len(s.TrickCards())
}

func (s *GameState) String() string {
	return fmt.Sprintf("%s(%d) vs %s(%d), draw %d, discard %d, trick %d, turn %s",
		s.Players[0], len(s.Hands[0]), s.Players[1], len(s.Hands[1]),
		len(s.DrawPile), len(s.DiscardPile), len(s.Trick), s.CurrentPlayerID())
}

// mustBeConsistent panics when a card is missing from every zone or appears in
// more than one. Either case is a bug in the rules, never a user error.
func (s *GameState) mustBeConsistent() {
	if s.Current != 0 && s.Current != 1 {
		panic(fmt.Sprintf("state inconsistency: current seat %d", s.Current))
	}

	seen := make([]bool, s.Deck.Size())
	check := func(zone string, ids []CardID) {
		for _, id := range ids {
			if int(id) < 0 || int(id) >= len(seen) {
				panic(fmt.Sprintf("state inconsistency: unknown card %d in %s", id, zone))
			}
			if seen[id] {
				panic(fmt.Sprintf("state inconsistency: card %d found twice (%s)", id, zone))
			}
			seen[id] = true
		}
	}
	check("hand 0", s.Hands[0])
	check("hand 1", s.Hands[1])
	check("draw pile", s.DrawPile)
	check("discard pile", s.DiscardPile)
	check("trick", s.TrickCards())

	if total := s.CardCount(); total != s.Deck.Size() {
		panic(fmt.Sprintf("state inconsistency: %d cards in zones, deck has %d", total, s.Deck.Size()))
	}
}
