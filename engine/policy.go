package engine

import (
	"fmt"
	"math"
	"multiagent/game"

	"golang.org/x/exp/rand"
)

// Policy picks the action of an adversary.
type Policy interface {
	Choose(state game.State, agent int) (game.Action, error)
}

// RandomPolicy plays uniformly at random, the adversary expectimax assumes.
type RandomPolicy struct {
	rng *rand.Rand
}

func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (p *RandomPolicy) Choose(state game.State, agent int) (game.Action, error) {
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return "", fmt.Errorf("agent %d has no legal actions", agent)
	}
	return actions[p.rng.Intn(len(actions))], nil
}

// GreedyPolicy plays the action whose successor has the lowest score, i.e. a
// one-move-deep minimizer. Ties go to the first such action.
type GreedyPolicy struct{}

func (GreedyPolicy) Choose(state game.State, agent int) (game.Action, error) {
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return "", fmt.Errorf("agent %d has no legal actions", agent)
	}

	var best game.Action
	lowest := math.Inf(1)
	for _, action := range actions {
		next, err := state.Successor(agent, action)
		if err != nil {
			return "", err
		}
		if score := next.Score(); score < lowest {
			lowest = score
			best = action
		}
	}
	return best, nil
}
