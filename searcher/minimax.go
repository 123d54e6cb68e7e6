package searcher

import (
	"fmt"
	"math"
	"multiagent/game"
)

// Minimax searches the full tree to the configured depth, with the controlled
// agent maximizing and every adversary minimizing.
type Minimax struct {
	config *Config
}

func NewMinimax(options ...Option) (*Minimax, error) {
	config, err := NewConfig(options...)
	if err != nil {
		return nil, err
	}
	return &Minimax{config: config}, nil
}

func (m *Minimax) Config() *Config {
	return m.config
}

func (m *Minimax) FindMove(state game.State) (Decision, error) {
	s := minimax{evaluate: m.config.evaluate, metrics: m.config.newCollector()}
	s.metrics.Start()
	s.metrics.AddNode()

	actions, err := rootActions(state)
	if err != nil {
		return Decision{}, err
	}

	// The root always expands, whatever the depth
	agent, depth := nextTurn(game.Controlled, m.config.depth, state.NumAgents())
	candidates := make([]candidate, 0, len(actions))
	for _, action := range actions {
		next, err := rootSuccessor(state, action)
		if err != nil {
			return Decision{}, err
		}
		value, err := s.value(next, depth, agent)
		if err != nil {
			return Decision{}, err
		}
		candidates = append(candidates, candidate{action: action, value: value})
	}

	return decide("minimax", candidates, m.config.rng, s.metrics), nil
}

type minimax struct {
	evaluate game.Evaluate
	metrics  Collector
}

func (s minimax) value(state game.State, depth, agent int) (float64, error) {
	s.metrics.AddNode()
	if isLeaf(state, depth, s.metrics) {
		return s.evaluate(state), nil
	}

	actions := state.LegalActions(agent)
	if len(actions) == 0 { // Nothing to choose from: treat as terminal for this branch
		return s.evaluate(state), nil
	}

	maximizing := agent == game.Controlled
	nextAgent, nextDepth := nextTurn(agent, depth, state.NumAgents())

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, action := range actions {
		next, err := state.Successor(agent, action)
		if err != nil {
			return 0, fmt.Errorf("agent %d failed to play %q: %w", agent, action, err)
		}
		v, err := s.value(next, nextDepth, nextAgent)
		if err != nil {
			return 0, err
		}
		if maximizing {
			best = math.Max(best, v)
		} else {
			best = math.Min(best, v)
		}
	}
	return best, nil
}
