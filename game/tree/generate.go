package tree

import (
	"fmt"
	"multiagent/game"

	"golang.org/x/exp/rand"
)

// MaxScore bounds generated scores to [0, MaxScore). Scores are whole numbers
// so generated trees contain ties.
const MaxScore = 100

// Generate builds a complete tree of the given number of plies where every
// node has branching children. Inner nodes get scores too so the tree can be
// searched with a depth below its height.
func Generate(rng *rand.Rand, agents, plies, branching int) (*Tree, error) {
	if agents < 1 || plies < 1 || branching < 1 {
		return nil, fmt.Errorf("%w: agents=%d plies=%d branching=%d must all be positive", ErrInvalidTree, agents, plies, branching)
	}
	root := grow(rng, "", agents*plies, branching)
	return New(agents, root)
}

func grow(rng *rand.Rand, action game.Action, levels, branching int) *Node {
	n := &Node{Action: action, Score: float64(rng.Intn(MaxScore))}
	if levels == 0 {
		return n
	}
	n.Children = make([]*Node, branching)
	for i := range n.Children {
		n.Children[i] = grow(rng, game.Action(fmt.Sprintf("a%d", i)), levels-1, branching)
	}
	return n
}
