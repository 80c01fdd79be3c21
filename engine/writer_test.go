package engine

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"helios/game"
	"helios/searcher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	writer, err := NewWriter(dir)
	require.NoError(t, err)

	id := uuid.New()
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	err = writer.WriteGames([]GameMetric{{
		ID:             id,
		StartingPlayer: "Player1",
		Winner:         "Player2",
		Loser:          "Player1",
		Reason:         game.EmptyHand,
		StartTime:      start,
		EndTime:        start.Add(time.Second),
		Duration:       time.Second,
		TotalMoves:     42,
	}})
	require.NoError(t, err)

	err = writer.WriteMoves([]MoveRecord{{
		Game: id.String(),
		MoveMetric: MoveMetric{
			Step:         1,
			Player:       "Player1",
			Decision:     "skip",
			Drew:         true,
			SearchMetric: searcher.SearchMetric{Goroutines: 2, Episodes: 100, FullPlayouts: 90},
		},
	}})
	require.NoError(t, err)

	games := readCSV(t, filepath.Join(dir, "games.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "id", games[0][0])
	require.Equal(t, []string{id.String(), "Player1", "Player2", "Player1", "empty hand",
		"2024-05-01T12:00:00Z", "2024-05-01T12:00:01Z", "1s", "42", "0"}, games[1])

	moves := readCSV(t, filepath.Join(dir, "moves.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, []string{id.String(), "1", "Player1", "skip", "true", "2", "0s", "100", "90"}, moves[1])
}
