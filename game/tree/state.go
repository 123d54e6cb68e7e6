package tree

import (
	"fmt"
	"multiagent/game"
)

// State is a position in a Tree. The zero value is not usable; get one from
// Tree.Start.
type State struct {
	agents int
	node   *Node
	turn   int
}

var _ game.State = State{}

func (s State) NumAgents() int {
	return s.agents
}

// Turn is the index of the agent to move.
func (s State) Turn() int {
	return s.turn
}

// LegalActions lists the child actions in tree order. Agents other than the
// one to move have no legal actions.
func (s State) LegalActions(agent int) []game.Action {
	if agent != s.turn || s.IsWin() || s.IsLose() {
		return nil
	}
	actions := make([]game.Action, len(s.node.Children))
	for i, child := range s.node.Children {
		actions[i] = child.Action
	}
	return actions
}

func (s State) Successor(agent int, action game.Action) (game.State, error) {
	if agent != s.turn {
		return nil, fmt.Errorf("%w: agent %d moved on agent %d's turn", game.ErrIllegalAction, agent, s.turn)
	}
	for _, child := range s.node.Children {
		if child.Action == action {
			return State{
				agents: s.agents,
				node:   child,
				turn:   (s.turn + 1) % s.agents,
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q is not available to agent %d", game.ErrIllegalAction, action, agent)
}

func (s State) IsWin() bool {
	return s.node.Win
}

func (s State) IsLose() bool {
	return s.node.Lose
}

func (s State) Score() float64 {
	return s.node.Score
}
