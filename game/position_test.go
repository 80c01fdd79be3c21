package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	t.Run("legal moves are the plays plus both skip outcomes", func(t *testing.T) {
		s := arrange([2][]Rank{{Standard(7), Standard(2)}, {Standard(9), Standard(5)}}, []Rank{Standard(4)}, 0)
		s, _ = PlayCards(s, "P1", []CardID{0})

		moves := NewPosition(s).LegalMoves()

		require.Equal(t, []Move{PlayMove{Cards: []CardID{2}}, SkipMove{Draw: true}, SkipMove{Draw: false}}, moves)
	})

	t.Run("drawing skip is not offered on an empty draw pile", func(t *testing.T) {
		s := arrange([2][]Rank{{Standard(7), Standard(2)}, {Standard(3)}}, nil, 0)
		s, _ = PlayCards(s, "P1", []CardID{0})

		moves := NewPosition(s).LegalMoves()

		require.Equal(t, []Move{SkipMove{Draw: false}}, moves)
	})

	t.Run("skip is not offered on an empty trick", func(t *testing.T) {
		s := arrange([2][]Rank{{Standard(7)}, {Standard(3)}}, []Rank{Standard(4)}, 0)

		for _, move := range NewPosition(s).LegalMoves() {
			require.False(t, move.IsSkip())
		}
	})

	t.Run("skip outcomes are deterministic", func(t *testing.T) {
		s := arrange([2][]Rank{{Standard(7), Standard(2)}, {Standard(9)}}, []Rank{Standard(4)}, 0)
		s, _ = PlayCards(s, "P1", []CardID{0})
		p := NewPosition(s)

		drew := p.Play(SkipMove{Draw: true}).(Position).GameState()
		stayed := p.Play(SkipMove{Draw: false}).(Position).GameState()

		require.Equal(t, []CardID{2, 3}, drew.Hands[1])
		require.Equal(t, []CardID{2}, stayed.Hands[1])
		require.Equal(t, "P1", drew.CurrentPlayerID())
		require.Equal(t, "P1", stayed.CurrentPlayerID())
		require.Len(t, s.Trick, 1, "Input state should not change")
	})

	t.Run("artemis gift is resolved with the weakest cards", func(t *testing.T) {
		s := arrange([2][]Rank{{Power(Artemis), Standard(Ace), Standard(3)}, {Standard(9)}}, nil, 0)
		p := NewPosition(s)

		next := p.Play(PlayMove{Cards: []CardID{0}}).(Position).GameState()

		require.Equal(t, 0, next.PendingArtemis)
		require.Equal(t, []CardID{1}, next.Hands[0])
		require.ElementsMatch(t, []CardID{3, 2}, next.Hands[1])
		require.Equal(t, "P2", next.CurrentPlayerID())
	})

	t.Run("pending gift is resolved when wrapping", func(t *testing.T) {
		s := arrange([2][]Rank{{Power(Artemis), Standard(Ace), Standard(3)}, {Standard(9)}}, nil, 0)
		s, _ = PlayCards(s, "P1", []CardID{0})

		p := NewPosition(s)

		require.Equal(t, 0, p.GameState().PendingArtemis)
		require.Equal(t, "P2", p.Player())
	})

	t.Run("winner follows the rules engine", func(t *testing.T) {
		s := arrange([2][]Rank{{Power(Hades)}, {Standard(9), Standard(4)}}, nil, 0)
		p := NewPosition(s)

		next := p.Play(PlayMove{Cards: []CardID{0}})

		require.Empty(t, next.LegalMoves())
		require.Equal(t, "P2", next.Winner())
		require.Equal(t, "", p.Winner())
	})

	t.Run("illegal simulated move panics", func(t *testing.T) {
		s := arrange([2][]Rank{{Standard(7)}, {Standard(3)}}, nil, 0)

		require.Panics(t, func() { NewPosition(s).Play(SkipMove{}) })
	})
}

func TestEvaluate(t *testing.T) {
	s := arrange([2][]Rank{{Standard(7)}, {Standard(3), Standard(4), Standard(5)}}, nil, 0)

	require.Equal(t, 0.75, EvaluateHandSizes(NewPosition(s)))
	require.InDelta(t, 2.0/3, EvaluateStrength(NewPosition(s)), 0.001)
}
