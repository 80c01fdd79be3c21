package searcher

import "math"

// Hyperparameters for MCTS

// Exploration constant of UCB
const DefaultExploration = math.Sqrt2

// Use rewards to estimate the chance of winning
const Win = 1.0
const Loss = 1 - Win

// Playouts longer than this are scored by the evaluation function
const MaxCutoff = 1000
