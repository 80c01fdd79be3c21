package agent

import (
	"helios/game"
	"helios/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the decision for playerID, who must be the player to
	// act, and the search metrics if any were collected
	FindMove(state *game.GameState, playerID string) (Decision, searcher.SearchMetric, error)
}

type mctsAgent struct {
	config Config
}

// NewMCTSAgent returns a bot that searches every decision with config.
func NewMCTSAgent(config Config) Agent {
	return mctsAgent{config: config}
}

func (a mctsAgent) FindMove(state *game.GameState, playerID string) (Decision, searcher.SearchMetric, error) {
	return chooseBotMove(state, playerID, a.config)
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline that picks uniformly among the legal
// plays and the skip. Not safe for concurrent use.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState, playerID string) (Decision, searcher.SearchMetric, error) {
	if err := checkTurn(state, playerID); err != nil {
		return Decision{}, searcher.SearchMetric{}, err
	}
	if state.PendingArtemis > 0 {
		hand := state.Hand(playerID)
		gift := make([]game.CardID, 0, state.PendingArtemis)
		for _, i := range a.rng.Perm(len(hand))[:state.PendingArtemis] {
			gift = append(gift, hand[i])
		}
		return Decision{Gift: true, Cards: gift}, searcher.SearchMetric{}, nil
	}

	plays := game.LegalPlays(state, playerID)
	options := len(plays)
	if game.CanSkip(state, playerID) {
		options++
	}
	if i := a.rng.Intn(options); i < len(plays) {
		return Decision{Cards: plays[i]}, searcher.SearchMetric{}, nil
	}
	return Decision{Skip: true}, searcher.SearchMetric{}, nil
}
