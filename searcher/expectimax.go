package searcher

import (
	"fmt"
	"math"
	"multiagent/game"
)

// Expectimax models every adversary as choosing uniformly at random among its
// legal actions. Chance nodes are always fully expanded.
type Expectimax struct {
	config *Config
}

func NewExpectimax(options ...Option) (*Expectimax, error) {
	config, err := NewConfig(options...)
	if err != nil {
		return nil, err
	}
	return &Expectimax{config: config}, nil
}

func (e *Expectimax) Config() *Config {
	return e.config
}

func (e *Expectimax) FindMove(state game.State) (Decision, error) {
	s := expectimax{evaluate: e.config.evaluate, metrics: e.config.newCollector()}
	s.metrics.Start()
	s.metrics.AddNode()

	actions, err := rootActions(state)
	if err != nil {
		return Decision{}, err
	}

	agent, depth := nextTurn(game.Controlled, e.config.depth, state.NumAgents())
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

	return decide("expectimax", candidates, e.config.rng, s.metrics), nil
}

type expectimax struct {
	evaluate game.Evaluate
	metrics  Collector
}

func (s expectimax) value(state game.State, depth, agent int) (float64, error) {
	s.metrics.AddNode()
	if isLeaf(state, depth, s.metrics) {
		return s.evaluate(state), nil
	}

	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return s.evaluate(state), nil
	}

	nextAgent, nextDepth := nextTurn(agent, depth, state.NumAgents())

	best, sum := math.Inf(-1), 0.0
	for _, action := range actions {
		next, err := state.Successor(agent, action)
		if err != nil {
			return 0, fmt.Errorf("agent %d failed to play %q: %w", agent, action, err)
		}
		v, err := s.value(next, nextDepth, nextAgent)
		if err != nil {
			return 0, err
		}
		best = math.Max(best, v)
		sum += v
	}

	if agent == game.Controlled {
		return best, nil
	}
	// Chance node: every action is equally likely
	return sum / float64(len(actions)), nil
}
