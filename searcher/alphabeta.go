package searcher

import (
	"fmt"
	"math"
	"multiagent/game"
)

// AlphaBeta returns the same decision as Minimax while skipping subtrees that
// cannot change it.
type AlphaBeta struct {
	config *Config
}

func NewAlphaBeta(options ...Option) (*AlphaBeta, error) {
	config, err := NewConfig(options...)
	if err != nil {
		return nil, err
	}
	return &AlphaBeta{config: config}, nil
}

func (a *AlphaBeta) Config() *Config {
	return a.config
}

func (a *AlphaBeta) FindMove(state game.State) (Decision, error) {
	s := alphaBeta{evaluate: a.config.evaluate, metrics: a.config.newCollector()}
	s.metrics.Start()
	s.metrics.AddNode()

	actions, err := rootActions(state)
	if err != nil {
		return Decision{}, err
	}

	agent, depth := nextTurn(game.Controlled, a.config.depth, state.NumAgents())
	alpha, beta := math.Inf(-1), math.Inf(1)
	candidates := make([]candidate, 0, len(actions))
	for _, action := range actions {
		next, err := rootSuccessor(state, action)
		if err != nil {
			return Decision{}, err
		}
		value, err := s.value(next, depth, agent, alpha, beta)
		if err != nil {
			return Decision{}, err
		}
		candidates = append(candidates, candidate{action: action, value: value})
		// Later root actions only need to beat the best one so far
		alpha = math.Max(alpha, value)
	}

	return decide("alphabeta", candidates, a.config.rng, s.metrics), nil
}

type alphaBeta struct {
	evaluate game.Evaluate
	metrics  Collector
}

// value prunes only on strict inequalities, so a returned value equal to the
// window edge is exact and ties at the root survive.
func (s alphaBeta) value(state game.State, depth, agent int, alpha, beta float64) (float64, error) {
	s.metrics.AddNode()
	if isLeaf(state, depth, s.metrics) {
		return s.evaluate(state), nil
	}

	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return s.evaluate(state), nil
	}

	nextAgent, nextDepth := nextTurn(agent, depth, state.NumAgents())

	if agent == game.Controlled {
		best := math.Inf(-1)
		for i, action := range actions {
			v, err := s.child(state, agent, action, nextDepth, nextAgent, alpha, beta)
			if err != nil {
				return 0, err
			}
			best = math.Max(best, v)
			if best > beta {
				if i < len(actions)-1 {
					s.metrics.AddPrune()
				}
				return best, nil
			}
			alpha = math.Max(alpha, best)
		}
		return best, nil
	}

	best := math.Inf(1)
	for i, action := range actions {
		v, err := s.child(state, agent, action, nextDepth, nextAgent, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = math.Min(best, v)
		if best < alpha {
			if i < len(actions)-1 {
				s.metrics.AddPrune()
			}
			return best, nil
		}
		beta = math.Min(beta, best)
	}
	return best, nil
}

func (s alphaBeta) child(state game.State, agent int, action game.Action, depth, nextAgent int, alpha, beta float64) (float64, error) {
	next, err := state.Successor(agent, action)
	if err != nil {
		return 0, fmt.Errorf("agent %d failed to play %q: %w", agent, action, err)
	}
	return s.value(next, depth, nextAgent, alpha, beta)
}
