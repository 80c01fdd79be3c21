package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCB(t *testing.T) {
	t.Run("computing UCB value", func(t *testing.T) {
		got := ucb(5.0, 10, math.Sqrt2, math.Log(100))

		expected := 5.0/10 + math.Sqrt2*math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute winRate + c*sqrt(ln(N)/n)")
	})

	t.Run("unvisited child comes first", func(t *testing.T) {
		require.Equal(t, math.Inf(1), ucb(0, 0, math.Sqrt2, math.Log(10)))
	})

	t.Run("zero exploration is the win rate", func(t *testing.T) {
		require.Equal(t, 0.25, ucb(1, 4, 0, math.Log(100)))
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		// More parent visits -> higher exploration
		value1 := ucb(5.0, 10, math.Sqrt2, math.Log(100))
		value2 := ucb(5.0, 10, math.Sqrt2, math.Log(1000))

		require.Greater(t, value2, value1, "Should increase with more parent visits")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		value1 := ucb(5.0, 10, math.Sqrt2, math.Log(100))
		value2 := ucb(10.0, 20, math.Sqrt2, math.Log(100))

		require.Greater(t, value1, value2, "Same win rate, fewer visits should explore more")
	})
}
