package searcher

import (
	"math"
	"slices"
	"sync"

	"helios/game"

	"golang.org/x/exp/rand"
)

// node keeps its statistics from the perspective of its own player: wins
// counts outcomes good for the player to act at this node.
type node struct {
	sync.RWMutex
	player     string
	state      game.State
	moves      []game.Move // Moves to the expanded children, same order
	children   []*node
	unexplored []game.Move
	wins       float64
	losses     float64
	virtual    float64 // Pending visits of in-flight episodes
}

func newNode(state game.State) *node {
	moves := state.LegalMoves()
	return &node{
		player:     state.Player(),
		state:      state,
		unexplored: slices.Clone(moves),
		children:   make([]*node, 0, len(moves)),
	}
}

func (n *node) visits() float64 {
	return n.wins + n.losses + n.virtual
}

// selectOrExpand expands one random unexplored move if any is left, otherwise
// picks the best child by UCB. selected is false for a new child, and a
// terminal node returns itself.
func (n *node) selectOrExpand(c float64, rng *rand.Rand, virtualLoss bool) (child *node, selected bool) {
	n.Lock()
	defer n.Unlock()

	if len(n.unexplored) > 0 { // Expandable node
		child = n.expand(rng)
		selected = false
	} else if len(n.children) > 0 { // Fully expanded node
		child = n.children[n.bestChild(c)]
		selected = true
	} else { // Terminal node
		return n, false
	}

	if virtualLoss {
		child.applyLoss()
	}
	return child, selected
}

func (n *node) expand(rng *rand.Rand) *node {
	i := rng.Intn(len(n.unexplored))
	move := n.unexplored[i]
	last := len(n.unexplored) - 1
	n.unexplored[i] = n.unexplored[last]
	n.unexplored = n.unexplored[:last]

	child := newNode(n.state.Play(move))
	n.moves = append(n.moves, move)
	n.children = append(n.children, child)
	return child
}

// bestChild must be called with the node locked.
func (n *node) bestChild(c float64) int {
	lnN := math.Log(math.Max(n.visits(), 1))

	best := 0
	bestScore := math.Inf(-1)
	for i, child := range n.children {
		if score := child.score(n.player, c, lnN); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// score is the child's UCB value seen by the parent's player. When the turn
// changed between the two, the child's losses are the parent's wins.
func (n *node) score(parentPlayer string, c, lnN float64) float64 {
	n.RLock()
	defer n.RUnlock()

	wins := n.wins
	if n.player != parentPlayer {
		wins = n.losses
	}
	return ucb(wins, n.visits(), c, lnN)
}

// applyLoss counts a visit that has no reward yet, so other goroutines steer
// away from this node until the episode backs up.
func (n *node) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.virtual++
}

// backup credits score to player. An empty player is a draw.
func (n *node) backup(player string, score float64, reverseLoss bool) {
	n.Lock()
	defer n.Unlock()

	if reverseLoss {
		n.virtual--
	}

	switch player {
	case "":
		n.wins += 0.5
		n.losses += 0.5
	case n.player:
		n.wins += score
		n.losses += Win - score
	default:
		n.wins += Win - score
		n.losses += score
	}
}

// bestMove picks the child with the highest win rate, nil when nothing was
// expanded.
func (n *node) bestMove() game.Move {
	n.Lock()
	defer n.Unlock()

	if len(n.children) == 0 {
		return nil
	}
	return n.moves[n.bestChild(0)]
}

func (n *node) stats() (wins, losses float64) {
	n.RLock()
	defer n.RUnlock()

	return n.wins, n.losses
}
