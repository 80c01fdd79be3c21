package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLegalPlays(t *testing.T) {
	t.Run("empty trick allows every prefix of every rank", func(t *testing.T) {
		s := arrange([2][]Rank{{Standard(9), Standard(4), Standard(9), Power(Joker)}, {Standard(2)}}, nil, 0)

		plays := LegalPlays(s, "P1")

		require.Equal(t, [][]CardID{{1}, {0}, {0, 2}, {3}}, plays)
	})

	t.Run("non-empty trick requires the lead count and at least the lead rank", func(t *testing.T) {
		s := arrange([2][]Rank{
			{Standard(8), Standard(8)},
			{Standard(5), Standard(5), Standard(9), Standard(9), Standard(9), Standard(Ace)},
		}, nil, 0)
		s, _ = PlayCards(s, "P1", []CardID{0, 1})

		plays := LegalPlays(s, "P2")

		require.Equal(t, [][]CardID{{4, 5}}, plays)
	})

	t.Run("disabled cards group with the lowest rank", func(t *testing.T) {
		s := arrange([2][]Rank{{Power(Hypnos), Standard(3), Standard(8)}, {Standard(King), Standard(2), Standard(5)}}, nil, 0)
		s, _ = PlayCards(s, "P1", []CardID{0})
		require.True(t, s.IsDisabled(3))

		// Trick is Hypnos, nothing but a power card beats it
		require.Empty(t, LegalPlays(s, "P2"))

		s, _, _ = SkipTurn(s, fixedRoll(6))
		s, _ = PlayCards(s, "P1", []CardID{1})
		require.Equal(t, [][]CardID{{5}}, LegalPlays(s, "P2"), "Disabled king compares as a 2")
	})

	t.Run("nothing is legal while artemis is pending", func(t *testing.T) {
		s := arrange([2][]Rank{{Power(Artemis), Standard(3)}, {Standard(2)}}, nil, 0)
		s, _ = PlayCards(s, "P1", []CardID{0})

		require.Empty(t, LegalPlays(s, "P1"))
		require.False(t, CanSkip(s, "P1"))
	})
}

func TestCanPlay(t *testing.T) {
	s := arrange([2][]Rank{
		{Standard(Queen), Standard(Queen)},
		{Standard(Jack), Standard(King), Standard(King), Standard(Ace), Standard(Queen)},
	}, nil, 0)
	s, _ = PlayCards(s, "P1", []CardID{0, 1})

	require.False(t, CanPlay(s, "P2", 2), "Single jack is too low")
	require.True(t, CanPlay(s, "P2", 3), "Pair of kings beats the queens")
	require.True(t, CanPlay(s, "P2", 4))
	require.False(t, CanPlay(s, "P2", 5), "Single ace cannot answer a pair")
	require.False(t, CanPlay(s, "P2", 6), "Single queen cannot answer a pair")
	require.False(t, CanPlay(s, "P2", 0), "Card not in hand")
}

func TestWeakestCards(t *testing.T) {
	s := arrange([2][]Rank{{Power(Joker), Standard(Ace), Standard(3), Standard(3), Standard(7)}, {Standard(2)}}, nil, 0)

	require.Equal(t, []CardID{2, 3}, WeakestCards(s, "P1", 2))
	require.Equal(t, []CardID{2, 3, 4, 1, 0}, WeakestCards(s, "P1", 10))
}

// playRandomly drives a game with uniformly random legal actions and hands
// every reached state to visit.
func playRandomly(t *testing.T, s *GameState, rng *rand.Rand, maxSteps int, visit func(*GameState)) *GameState {
	for step := 0; step < maxSteps && !IsGameOver(s).IsOver; step++ {
		visit(s)
		before := s.Copy()

		var next *GameState
		var err error
		if s.PendingArtemis > 0 {
			next, err = ApplyArtemisTransfer(s, WeakestCards(s, s.CurrentPlayerID(), s.PendingArtemis))
		} else {
			player := s.CurrentPlayerID()
			plays := LegalPlays(s, player)
			options := len(plays)
			if CanSkip(s, player) {
				options++
			}
			require.Positive(t, options, "Some action must always be legal")

			if i := rng.Intn(options); i < len(plays) {
				next, err = PlayCards(s, player, plays[i])
			} else {
				next, _, err = SkipTurn(s, rng)
			}
		}
		require.NoError(t, err)
		require.Equal(t, before, s, "Transition should not mutate its input")
		s = next
	}
	visit(s)
	return s
}

func TestRandomGames(t *testing.T) {
	deck := NewDeck()
	rng := rand.New(rand.NewSource(2024))

	for i := 0; i < 20; i++ {
		s := InitializeGame(players, deck, rng)
		playRandomly(t, s, rng, 2000, func(s *GameState) {
			// Conservation
			require.Equal(t, deck.Size(), s.CardCount())

			if s.PendingArtemis > 0 || IsGameOver(s).IsOver {
				return
			}
			player := s.CurrentPlayerID()
			seat := s.Current

			// Skip precondition
			if len(s.Trick) == 0 && len(s.Hands[seat]) > 0 {
				require.False(t, CanSkip(s, player), "Skip should not open a trick")
			}

			// Legality soundness
			for _, play := range LegalPlays(s, player) {
				if len(s.Trick) > 0 {
					lead := s.Trick[0]
					require.Len(t, play, len(lead.Cards))
					require.GreaterOrEqual(t, s.EffectiveRank(play[0]).Compare(lead.Rank), 0)
				}
				_, err := PlayCards(s, player, play)
				require.NoError(t, err, "Generated play should be accepted")
				for _, id := range play {
					require.True(t, CanPlay(s, player, id))
				}
			}
		})
	}
}
