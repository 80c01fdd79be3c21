package searcher

import "helios/game"

type Searcher interface {
	// Search returns the recommended move for the player to act, or nil
	// when no move was expanded
	Search(state game.State) (game.Move, SearchMetric)
}
