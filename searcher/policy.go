package searcher

import "math"

// ucb = winRate + c*sqrt(ln(N)/n), where N is the parent's visit count and n
// the child's. Unvisited children come first.
func ucb(wins, visits, c, lnN float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return wins/visits + c*math.Sqrt(lnN/visits)
}
