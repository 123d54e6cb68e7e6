package metrics

import (
	"multiagent/game"
	"time"
)

// AgentConfig identifies one searcher setup in an experiment.
type AgentConfig struct {
	ID         int
	Kind       string // Registered searcher name, e.g. "alphabeta"
	Depth      int
	Evaluation string
}

// Record is the outcome of one agent searching one position.
type Record struct {
	Agent    int // AgentConfig.ID
	Position int // Index of the searched position within the experiment
	Action   game.Action
	Value    float64
	Duration time.Duration
	Nodes    int64
	Cutoffs  int64
	Prunes   int64
}
