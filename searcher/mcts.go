package searcher

import (
	"sync"
	"time"

	"helios/game"

	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS searches a fresh tree on every call to Search. A single MCTS must not
// run two searches at once.
type MCTS struct {
	goroutines  int
	duration    time.Duration
	episodes    int
	cutoff      int
	exploration float64
	seed        uint64
	seeded      bool
	evaluate    game.Evaluate
	metrics     Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithEpisodes runs a fixed number of episodes instead of a timed search. It
// takes precedence over WithDuration.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

// WithSeed makes the search reproducible: goroutine i draws from seed+i.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
		m.seeded = true
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines:  max(goroutines, 1),
		cutoff:      MaxCutoff,
		exploration: DefaultExploration,
		evaluate:    game.EvaluateHandSizes,
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

func (m *MCTS) Search(state game.State) (game.Move, SearchMetric) {
	root := newNode(state)
	seed := m.seed
	if !m.seeded {
		seed = uint64(time.Now().UnixNano())
	}

	m.metrics.Start(m.goroutines, m.cutoff)
	if m.episodes > 0 {
		m.iterate(root, seed)
	} else {
		m.countdown(root, seed)
	}
	metric := m.metrics.Complete()

	return root.bestMove(), metric
}

func (m *MCTS) iterate(root *node, seed uint64) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(seed + uint64(i)))
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(root, rng)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

// countdown runs episodes until the duration elapses. Every goroutine
// finishes at least one episode, so a non-terminal root always gets a child.
func (m *MCTS) countdown(root *node, seed uint64) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(seed + uint64(i)))
		go func() {
			defer wg.Done()

			for {
				m.simulate(root, rng)
				m.metrics.AddEpisode()
				select {
				case <-done:
					return
				default:
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(root *node, rng *rand.Rand) {
	virtualLoss := m.goroutines > 1
	path := selectThenExpand(root, m.exploration, rng, virtualLoss)
	player, score := rollout(path[len(path)-1].state, m.cutoff, m.evaluate, rng, m.metrics)
	backup(path, player, score, virtualLoss)
}

// selectThenExpand descends from the root and returns the visited path, ending
// at a new child or a terminal node.
func selectThenExpand(root *node, c float64, rng *rand.Rand, virtualLoss bool) []*node {
	path := []*node{root}
	parent := root
	child, selected := parent.selectOrExpand(c, rng, virtualLoss)
	for child != parent {
		path = append(path, child)
		if !selected {
			break
		}
		parent = child
		child, selected = parent.selectOrExpand(c, rng, virtualLoss)
	}
	return path
}

func rollout(state game.State, cutoff int, evaluate game.Evaluate, rng *rand.Rand, metrics Collector) (string, float64) {
	depth := 0
	moves := state.LegalMoves()
	// Rollout till game over or for cutoff number of moves
	for len(moves) > 0 && (depth < cutoff) {
		move := moves[rng.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
		depth++
	}

	if len(moves) == 0 { // Game over before cutoff
		metrics.AddFullPlayout()
		return state.Winner(), Win
	}

	// At cutoff state, return an evaluation score from current player's perspective
	return state.Player(), evaluate(state)
}

// backup walks the path from the leaf back to the root. Only the root never
// received a virtual loss.
func backup(path []*node, player string, score float64, virtualLoss bool) {
	for i := len(path) - 1; i >= 0; i-- {
		path[i].backup(player, score, virtualLoss && i > 0)
	}
}
