package engine

import (
	"errors"
	"time"

	"helios/game"
	"helios/searcher"

	"github.com/google/uuid"
)

var ErrStalled = errors.New("match stalled")

type Engine interface {
	// Run plays a match till there's a winner or the move cap is reached
	Run() (GameMetric, []MoveMetric, error)
}

type GameMetric struct {
	ID             uuid.UUID
	StartingPlayer string
	Winner         string
	Loser          string
	Reason         game.Reason
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Rejections     int64 // Bot moves refused by the rules engine
}

type MoveMetric struct {
	Step     int
	Player   string
	Decision string
	Drew     bool
	searcher.SearchMetric
}
