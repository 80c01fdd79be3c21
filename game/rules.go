package game

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrIllegalMove      = errors.New("illegal move")
	ErrGameOver         = errors.New("game is over")
	ErrNoArtemisPending = errors.New("no Artemis transfer pending")
)

// Source is the dice and shuffle randomness. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
}

func rollDie(src Source) int {
	return src.Intn(6) + 1
}

// PlayCards puts cards from the player's hand on the trick and resolves their
// power effects. An illegal play returns s itself and an error wrapping
// ErrIllegalMove or ErrGameOver.
func PlayCards(s *GameState, playerID string, cards []CardID) (*GameState, error) {
	rank, err := s.checkPlay(playerID, cards)
	if err != nil {
		return s, fmt.Errorf("cannot play: %w", err)
	}

	next := s.Copy()
	next.commitPlay(next.Current, cards, rank)
	next.finish()
	return next, nil
}

func (s *GameState) checkPlay(playerID string, cards []CardID) (Rank, error) {
	if IsGameOver(s).IsOver {
		return Rank{}, ErrGameOver
	}
	seat := s.SeatOf(playerID)
	if seat < 0 {
		return Rank{}, fmt.Errorf("%w: unknown player %q", ErrIllegalMove, playerID)
	}
	if seat != s.Current {
		return Rank{}, fmt.Errorf("%w: not %s's turn", ErrIllegalMove, playerID)
	}
	if s.PendingArtemis > 0 {
		return Rank{}, fmt.Errorf("%w: %d cards must be given away first", ErrIllegalMove, s.PendingArtemis)
	}
	if len(cards) == 0 {
		return Rank{}, fmt.Errorf("%w: no cards", ErrIllegalMove)
	}
	if err := s.checkOwned(seat, cards); err != nil {
		return Rank{}, err
	}

	rank := s.EffectiveRank(cards[0])
	for _, id := range cards[1:] {
		if s.EffectiveRank(id) != rank {
			return Rank{}, fmt.Errorf("%w: cards do not share a rank", ErrIllegalMove)
		}
	}
	if err := s.checkTrick(rank, len(cards)); err != nil {
		return Rank{}, err
	}
	return rank, nil
}

// checkOwned verifies the cards are distinct and all in the seat's hand.
func (s *GameState) checkOwned(seat int, cards []CardID) error {
	for i, id := range cards {
		if !slices.Contains(s.Hands[seat], id) {
			return fmt.Errorf("%w: card %d is not in %s's hand", ErrIllegalMove, id, s.Players[seat])
		}
		if slices.Contains(cards[:i], id) {
			return fmt.Errorf("%w: card %d given twice", ErrIllegalMove, id)
		}
	}
	return nil
}

// checkTrick reports whether count cards of rank may go on the current trick.
func (s *GameState) checkTrick(rank Rank, count int) error {
	if len(s.Trick) == 0 {
		return nil
	}
	lead := s.Trick[0]
	if count != len(lead.Cards) {
		return fmt.Errorf("%w: %d cards played on a trick of %d", ErrIllegalMove, count, len(lead.Cards))
	}
	if SkipRuleActive(s) {
		if rank != lead.Rank {
			return fmt.Errorf("%w: %s must be matched or skipped", ErrIllegalMove, lead.Rank)
		}
		return nil
	}
	if rank.Compare(lead.Rank) < 0 {
		return fmt.Errorf("%w: %s does not beat %s", ErrIllegalMove, rank, lead.Rank)
	}
	return nil
}

// SkipRuleActive is true when the two most recent plays share a rank: the
// next player must then match that rank exactly or skip.
func SkipRuleActive(s *GameState) bool {
	return len(s.Trick) >= 2 && s.Trick[0].Rank == s.Trick[1].Rank
}

func (s *GameState) commitPlay(seat int, cards []CardID, rank Rank) {
	player := s.Players[seat]
	opponent := 1 - seat

	s.Hands[seat] = without(s.Hands[seat], cards)
	s.Trick = append([]Play{{PlayerID: player, Cards: slices.Clone(cards), Rank: rank}}, s.Trick...)
	s.lastActor = seat
	if len(s.Hands[seat]) == 0 {
		s.emptiedByPower[seat] = rank.IsPower()
	}

	switch rank.Kind() {
	case NoPower:
		s.Action = Action{Kind: CardPlayed, PlayerID: player, Cards: slices.Clone(cards)}
		s.Current = opponent

	case Joker:
		s.clearTrick()
		s.Action = Action{Kind: JokerPlayed, PlayerID: player, Cards: slices.Clone(cards)}

	case Hypnos:
		var disabled []CardID
		for range cards {
			if id, ok := s.bestCard(opponent, false); ok {
				s.Disabled[id] = true
				disabled = append(disabled, id)
			}
		}
		s.Action = Action{Kind: HypnosPlayed, PlayerID: player, TargetID: s.Players[opponent], Cards: slices.Clone(cards)}
		if len(disabled) > 0 {
			s.Action = Action{Kind: HypnosTurnedOff, PlayerID: player, TargetID: s.Players[opponent], Cards: disabled}
		}
		s.Current = opponent

	case Hades:
		var discarded []CardID
		for range cards {
			if id, ok := s.bestCard(opponent, true); ok {
				s.Hands[opponent] = without(s.Hands[opponent], []CardID{id})
				s.DiscardPile = append(s.DiscardPile, id)
				discarded = append(discarded, id)
				if len(s.Hands[opponent]) == 0 {
					s.emptiedByPower[opponent] = true
				}
			}
		}
		s.Action = Action{Kind: HadesPlayed, PlayerID: player, TargetID: s.Players[opponent], Cards: slices.Clone(cards)}
		if len(discarded) > 0 {
			s.Action = Action{Kind: HadesDiscarded, PlayerID: player, TargetID: s.Players[opponent], Cards: discarded}
		}
		s.Current = opponent

	case Artemis:
		s.PendingArtemis = min(len(cards), len(s.Hands[seat]))
		s.Action = Action{Kind: ArtemisPlayed, PlayerID: player, TargetID: s.Players[opponent], Cards: slices.Clone(cards)}
		if s.PendingArtemis == 0 {
			s.Current = opponent
		}
	}
}

// bestCard finds the seat's highest card by effective rank, lowest id first
// on ties. Without withPower, power cards and disabled cards are ignored.
func (s *GameState) bestCard(seat int, withPower bool) (CardID, bool) {
	best, found := CardID(-1), false
	for _, id := range s.Hands[seat] {
		if !withPower && (s.Deck.Card(id).IsPower() || s.Disabled[id]) {
			continue
		}
		if !found {
			best, found = id, true
			continue
		}
		if c := s.EffectiveRank(id).Compare(s.EffectiveRank(best)); c > 0 || (c == 0 && id < best) {
			best = id
		}
	}
	return best, found
}

func (s *GameState) clearTrick() {
	s.DiscardPile = append(s.DiscardPile, s.TrickCards()...)
	s.Trick = nil
}

// finish verifies conservation and narrates the end of the game when the
// transition decided it.
func (s *GameState) finish() {
	s.mustBeConsistent()

	outcome := IsGameOver(s)
	switch {
	case outcome.IsOver && outcome.Reason == PowerCardFinish:
		s.Action = Action{Kind: GameFinishedGod, PlayerID: outcome.Winner, TargetID: outcome.Loser}
	case outcome.IsOver:
		s.Action = Action{Kind: GameFinished, PlayerID: outcome.Winner, TargetID: outcome.Loser}
	case outcome.Reason == ArtemisThreat && s.PendingArtemis == 0:
		for seat := range s.Hands {
			if len(s.Hands[seat]) == 0 {
				s.Action = Action{Kind: GameFinishedArtemis, PlayerID: s.Players[seat], TargetID: s.Players[1-seat]}
			}
		}
	}
}

// ApplyArtemisTransfer completes an Artemis play: the current player gives
// exactly PendingArtemis cards to the opponent, then the turn passes.
func ApplyArtemisTransfer(s *GameState, cards []CardID) (*GameState, error) {
	if s.PendingArtemis == 0 {
		if IsGameOver(s).IsOver {
			return s, fmt.Errorf("cannot give cards: %w", ErrGameOver)
		}
		return s, fmt.Errorf("cannot give cards: %w: %w", ErrIllegalMove, ErrNoArtemisPending)
	}
	if len(cards) != s.PendingArtemis {
		return s, fmt.Errorf("cannot give cards: %w: %d cards given, %d expected", ErrIllegalMove, len(cards), s.PendingArtemis)
	}
	seat := s.Current
	if err := s.checkOwned(seat, cards); err != nil {
		return s, fmt.Errorf("cannot give cards: %w", err)
	}

	next := s.Copy()
	opponent := 1 - seat
	next.Hands[seat] = without(next.Hands[seat], cards)
	next.Hands[opponent] = append(next.Hands[opponent], cards...)
	next.PendingArtemis = 0
	next.lastActor = seat
	if len(next.Hands[seat]) == 0 {
		next.emptiedByPower[seat] = true
	}
	next.Action = Action{Kind: ArtemisGiven, PlayerID: s.Players[seat], TargetID: s.Players[opponent], Cards: slices.Clone(cards)}
	next.Current = opponent
	next.finish()
	return next, nil
}

// SkipTurn rolls a die for the current player: 1-3 draws the top card of the
// draw pile, if any. The trick is then cleared and the turn passes. The
// returned Draw is nil when nothing was drawn.
func SkipTurn(s *GameState, src Source) (*GameState, *Draw, error) {
	if err := s.checkSkip(); err != nil {
		return s, nil, fmt.Errorf("cannot skip: %w", err)
	}
	next, draw := s.skipWithRoll(rollDie(src))
	return next, draw, nil
}

func (s *GameState) checkSkip() error {
	if IsGameOver(s).IsOver {
		return ErrGameOver
	}
	if s.PendingArtemis > 0 {
		return fmt.Errorf("%w: %d cards must be given away first", ErrIllegalMove, s.PendingArtemis)
	}
	if !CanSkip(s, s.CurrentPlayerID()) {
		return fmt.Errorf("%w: a new trick must be opened with a play", ErrIllegalMove)
	}
	return nil
}

// skipWithRoll resolves a legal skip with a known die value.
func (s *GameState) skipWithRoll(roll int) (*GameState, *Draw) {
	next := s.Copy()
	seat := next.Current
	player := next.Players[seat]

	var draw *Draw
	next.Action = Action{Kind: DiceRollUnchanged, PlayerID: player, Roll: roll}
	if roll <= 3 && len(next.DrawPile) > 0 {
		card := next.DrawPile[0]
		next.DrawPile = next.DrawPile[1:]
		next.Hands[seat] = append(next.Hands[seat], card)
		draw = &Draw{Card: card, PlayerID: player}
		next.Action = Action{Kind: DiceRollPickCard, PlayerID: player, Cards: []CardID{card}, Roll: roll}
	}

	next.clearTrick()
	next.lastActor = seat
	next.Current = 1 - seat
	next.finish()
	return next, draw
}

// without returns a new slice holding ids minus the removed ones.
func without(ids []CardID, removed []CardID) []CardID {
	kept := make([]CardID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(removed, id) {
			kept = append(kept, id)
		}
	}
	return kept
}
