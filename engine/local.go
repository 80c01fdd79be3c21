package engine

import (
	"fmt"
	"time"

	"helios/agent"
	"helios/game"
	"helios/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type LocalEngine struct {
	State  *game.GameState
	Agents [2]agent.Agent
	rng    *rand.Rand
}

// NewLocal deals a new match between two in-process agents. The seed drives
// the dice duel, the shuffle and every skip roll.
func NewLocal(players [2]string, agents [2]agent.Agent, deck *game.Deck, seed uint64) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("every player needs an agent")
	}
	rng := rand.New(rand.NewSource(seed))

	return &LocalEngine{
		State:  game.InitializeGame(players, deck, rng),
		Agents: agents,
		rng:    rng,
	}
}

// Run executes the entire game loop until a winner is found.
func (e *LocalEngine) Run() (GameMetric, []MoveMetric, error) {
	rejected := agent.Rejections()
	gameMetric := GameMetric{
		ID:             e.State.ID,
		StartingPlayer: e.State.CurrentPlayerID(),
		StartTime:      time.Now(),
	}
	var moveMetrics []MoveMetric

	log.Info().Msgf("match %s: %s is starting", gameMetric.ID, gameMetric.StartingPlayer)

	finish := func() {
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		gameMetric.TotalMoves = len(moveMetrics)
		gameMetric.Rejections = agent.Rejections() - rejected
	}

	for !game.IsGameOver(e.State).IsOver {
		if len(moveMetrics) >= meta.MAX_TURNS {
			finish()
			log.Warn().Msgf("match %s: stopped after %d moves without a winner", gameMetric.ID, len(moveMetrics))
			return gameMetric, moveMetrics, fmt.Errorf("cannot finish match %s: %w", gameMetric.ID, ErrStalled)
		}

		player := e.State.CurrentPlayerID()
		decision, searchMetric, err := e.Agents[e.State.Current].FindMove(e.State, player)
		if err != nil {
			finish()
			return gameMetric, moveMetrics, fmt.Errorf("cannot find move for %s: %w", player, err)
		}

		next, draw, err := decision.Apply(e.State, player, e.rng)
		if err != nil {
			finish()
			return gameMetric, moveMetrics, fmt.Errorf("cannot apply %v for %s: %w", decision, player, err)
		}
		moveMetrics = append(moveMetrics, MoveMetric{
			Step:         len(moveMetrics) + 1,
			Player:       player,
			Decision:     decision.String(),
			Drew:         draw != nil,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("match %s: %s %v, %v", gameMetric.ID, player, decision, next)

		e.State = next
	}

	outcome := game.IsGameOver(e.State)
	gameMetric.Winner = outcome.Winner
	gameMetric.Loser = outcome.Loser
	gameMetric.Reason = outcome.Reason
	finish()

	log.Info().Msgf("match %s: %s won after %d moves (%v)", gameMetric.ID, gameMetric.Winner, gameMetric.TotalMoves, gameMetric.Reason)
	return gameMetric, moveMetrics, nil
}
