// Package tree provides explicit game trees that implement game.State. The
// agent to move is implied by depth: level k of the tree belongs to agent
// k mod Agents.
package tree

import (
	"errors"
	"fmt"
	"multiagent/game"
)

var ErrInvalidTree = errors.New("invalid tree")

// Node is one position of the tree. Score is what the baseline evaluator
// sees, both at leaves and when the search is cut off at an inner node.
type Node struct {
	Action   game.Action `yaml:"action,omitempty"`
	Score    float64     `yaml:"score"`
	Win      bool        `yaml:"win,omitempty"`
	Lose     bool        `yaml:"lose,omitempty"`
	Children []*Node     `yaml:"children,omitempty"`
}

type Tree struct {
	Agents int   `yaml:"agents"`
	Root   *Node `yaml:"root"`
}

// New returns a validated tree.
func New(agents int, root *Node) (*Tree, error) {
	t := &Tree{Agents: agents, Root: root}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Leaf returns a childless node reached by action.
func Leaf(action game.Action, score float64) *Node {
	return &Node{Action: action, Score: score}
}

// Branch returns an inner node reached by action.
func Branch(action game.Action, children ...*Node) *Node {
	return &Node{Action: action, Children: children}
}

// ScoredBranch returns an inner node with a score for depth-limited searches.
func ScoredBranch(action game.Action, score float64, children ...*Node) *Node {
	return &Node{Action: action, Score: score, Children: children}
}

// Validate checks the structural rules every State relies on.
func (t *Tree) Validate() error {
	if t.Agents < 1 {
		return fmt.Errorf("%w: need at least one agent, got %d", ErrInvalidTree, t.Agents)
	}
	if t.Root == nil {
		return fmt.Errorf("%w: missing root", ErrInvalidTree)
	}
	return validate(t.Root, "root")
}

func validate(n *Node, path string) error {
	if n.Win && n.Lose {
		return fmt.Errorf("%w: %s is both a win and a loss", ErrInvalidTree, path)
	}
	if (n.Win || n.Lose) && len(n.Children) > 0 {
		return fmt.Errorf("%w: terminal node %s has children", ErrInvalidTree, path)
	}

	seen := make(map[game.Action]bool, len(n.Children))
	for i, child := range n.Children {
		if child == nil {
			return fmt.Errorf("%w: %s has a nil child at %d", ErrInvalidTree, path, i)
		}
		if child.Action == "" {
			return fmt.Errorf("%w: child %d of %s has no action", ErrInvalidTree, i, path)
		}
		if seen[child.Action] {
			return fmt.Errorf("%w: duplicate action %q under %s", ErrInvalidTree, child.Action, path)
		}
		seen[child.Action] = true

		if err := validate(child, path+"/"+string(child.Action)); err != nil {
			return err
		}
	}
	return nil
}

// Start returns the state at the root, with agent 0 to move.
func (t *Tree) Start() State {
	return State{agents: t.Agents, node: t.Root}
}

// Size counts the nodes of the tree.
func (t *Tree) Size() int {
	return size(t.Root)
}

func size(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += size(child)
	}
	return total
}
