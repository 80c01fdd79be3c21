package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

// Writer stores match results as CSV files under one directory.
type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteGames(games []GameMetric) error {
	header := []string{"id", "starting_player", "winner", "loser", "reason", "start_time", "end_time", "duration", "moves", "rejections"}

	rows := make([][]string, 0, len(games))
	for _, g := range games {
		rows = append(rows, []string{
			g.ID.String(),
			g.StartingPlayer,
			g.Winner,
			g.Loser,
			g.Reason.String(),
			g.StartTime.Format(time.RFC3339),
			g.EndTime.Format(time.RFC3339),
			g.Duration.String(),
			strconv.Itoa(g.TotalMoves),
			strconv.FormatInt(g.Rejections, 10),
		})
	}
	return w.write("games.csv", header, rows)
}

func (w *Writer) WriteMoves(records []MoveRecord) error {
	header := []string{"game", "step", "player", "decision", "drew", "goroutines", "duration", "episodes", "full_playouts"}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Game,
			strconv.Itoa(r.Step),
			r.Player,
			r.Decision,
			strconv.FormatBool(r.Drew),
			strconv.Itoa(r.Goroutines),
			r.Duration.String(),
			strconv.Itoa(r.Episodes),
			strconv.Itoa(r.FullPlayouts),
		})
	}
	return w.write("moves.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
