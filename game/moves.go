package game

import (
	"slices"
)

type rankGroup struct {
	rank  Rank
	cards []CardID
}

// groupByRank buckets a hand by effective rank, ascending, ids sorted within
// each bucket.
func (s *GameState) groupByRank(seat int) []rankGroup {
	hand := s.sortedHand(seat)
	var groups []rankGroup
	for _, id := range hand {
		rank := s.EffectiveRank(id)
		if n := len(groups); n > 0 && groups[n-1].rank == rank {
			groups[n-1].cards = append(groups[n-1].cards, id)
			continue
		}
		groups = append(groups, rankGroup{rank: rank, cards: []CardID{id}})
	}
	return groups
}

// sortedHand orders a copy of the hand weakest first, by id on equal ranks.
func (s *GameState) sortedHand(seat int) []CardID {
	hand := slices.Clone(s.Hands[seat])
	slices.SortFunc(hand, func(a, b CardID) int {
		if c := s.EffectiveRank(a).Compare(s.EffectiveRank(b)); c != 0 {
			return c
		}
		return int(a) - int(b)
	})
	return hand
}

// LegalPlays enumerates the plays the player could put on the current trick:
// for each rank held, every 1..m prefix of the m cards of that rank that the
// trick accepts. Turn order is not checked, so it doubles as a hint for the
// waiting player.
func LegalPlays(s *GameState, playerID string) [][]CardID {
	seat := s.SeatOf(playerID)
	if seat < 0 || s.PendingArtemis > 0 || IsGameOver(s).IsOver {
		return nil
	}

	var plays [][]CardID
	for _, group := range s.groupByRank(seat) {
		for n := 1; n <= len(group.cards); n++ {
			if s.checkTrick(group.rank, n) == nil {
				plays = append(plays, slices.Clone(group.cards[:n]))
			}
		}
	}
	return plays
}

// CanPlay reports whether some legal play of the player contains card.
func CanPlay(s *GameState, playerID string, card CardID) bool {
	seat := s.SeatOf(playerID)
	if seat < 0 || s.PendingArtemis > 0 || IsGameOver(s).IsOver || !slices.Contains(s.Hands[seat], card) {
		return false
	}

	rank := s.EffectiveRank(card)
	held := 0
	for _, id := range s.Hands[seat] {
		if s.EffectiveRank(id) == rank {
			held++
		}
	}
	for n := 1; n <= held; n++ {
		if s.checkTrick(rank, n) == nil {
			return true
		}
	}
	return false
}

// CanSkip reports whether the player may skip. A new trick has to be opened
// with a play, unless the player has no card left to play.
func CanSkip(s *GameState, playerID string) bool {
	seat := s.SeatOf(playerID)
	if seat < 0 || s.PendingArtemis > 0 || IsGameOver(s).IsOver {
		return false
	}
	return len(s.Trick) > 0 || len(s.Hands[seat]) == 0
}

// WeakestCards picks the n lowest cards of the player's hand by effective rank.
func WeakestCards(s *GameState, playerID string, n int) []CardID {
	seat := s.SeatOf(playerID)
	if seat < 0 {
		return nil
	}
	hand := s.sortedHand(seat)
	return hand[:min(n, len(hand))]
}
