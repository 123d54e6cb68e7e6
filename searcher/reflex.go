package searcher

import (
	"fmt"
	"multiagent/game"
)

// Reflex looks one move ahead: it scores each successor of the controlled
// agent with the reflex evaluation and ignores the adversaries' replies.
type Reflex struct {
	config *Config
}

func NewReflex(options ...Option) (*Reflex, error) {
	config, err := NewConfig(options...)
	if err != nil {
		return nil, err
	}
	return &Reflex{config: config}, nil
}

func (r *Reflex) Config() *Config {
	return r.config
}

func (r *Reflex) FindMove(state game.State) (Decision, error) {
	metrics := r.config.newCollector()
	metrics.Start()
	metrics.AddNode()

	actions, err := rootActions(state)
	if err != nil {
		return Decision{}, err
	}

	candidates := make([]candidate, 0, len(actions))
	for _, action := range actions {
		metrics.AddNode()
		value, err := r.config.reflex(state, action)
		if err != nil {
			return Decision{}, fmt.Errorf("failed to evaluate %q: %w", action, err)
		}
		candidates = append(candidates, candidate{action: action, value: value})
	}

	return decide("reflex", candidates, r.config.rng, metrics), nil
}

// EvaluateSuccessorScore is a reflex evaluation for environments without grid
// information: the score of the state reached by action.
func EvaluateSuccessorScore(state game.State, action game.Action) (float64, error) {
	next, err := state.Successor(game.Controlled, action)
	if err != nil {
		return 0, err
	}
	return next.Score(), nil
}
