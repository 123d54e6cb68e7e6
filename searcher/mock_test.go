package searcher

import (
	"multiagent/game"
	"multiagent/game/tree"
	"testing"

	"github.com/stretchr/testify/require"
)

// brokenState offers actions to every agent but refuses to play them for the
// adversaries
type brokenState struct {
	agents int
}

func (b brokenState) NumAgents() int { return b.agents }

func (b brokenState) LegalActions(agent int) []game.Action {
	return []game.Action{"go"}
}

func (b brokenState) Successor(agent int, action game.Action) (game.State, error) {
	if agent != game.Controlled {
		return nil, game.ErrIllegalAction
	}
	return b, nil
}

func (b brokenState) IsWin() bool    { return false }
func (b brokenState) IsLose() bool   { return false }
func (b brokenState) Score() float64 { return 0 }

// gridState is a grid where each controlled action moves pacman to a fixed cell
type gridState struct {
	pacman game.Position
	food   []game.Position
	ghosts []game.Ghost
	moves  map[game.Action]game.Position
	order  []game.Action
}

func (g gridState) NumAgents() int { return 1 + len(g.ghosts) }

func (g gridState) LegalActions(agent int) []game.Action {
	if agent != game.Controlled {
		return nil
	}
	return g.order
}

func (g gridState) Successor(agent int, action game.Action) (game.State, error) {
	p, ok := g.moves[action]
	if !ok || agent != game.Controlled {
		return nil, game.ErrIllegalAction
	}
	next := g
	next.pacman = p
	return next, nil
}

func (g gridState) IsWin() bool                   { return false }
func (g gridState) IsLose() bool                  { return false }
func (g gridState) Score() float64                { return 0 }
func (g gridState) PacmanPosition() game.Position { return g.pacman }
func (g gridState) Food() []game.Position         { return g.food }
func (g gridState) Capsules() []game.Position     { return nil }
func (g gridState) Ghosts() []game.Ghost          { return g.ghosts }

func mustTree(t *testing.T, agents int, root *tree.Node) game.State {
	t.Helper()
	tr, err := tree.New(agents, root)
	require.NoError(t, err)
	return tr.Start()
}

// scenarioTree: A leads to leaves {3, 5}, B to {1, 8}, adversary to move below
// the root
func scenarioTree(t *testing.T) game.State {
	return mustTree(t, 2, tree.Branch("",
		tree.Branch("A", tree.Leaf("a1", 3), tree.Leaf("a2", 5)),
		tree.Branch("B", tree.Leaf("b1", 1), tree.Leaf("b2", 8)),
	))
}

// lookaheadTree looks better through A after one ply and better through B
// after two
func lookaheadTree(t *testing.T) game.State {
	return mustTree(t, 2, tree.Branch("",
		tree.Branch("A", tree.ScoredBranch("a", 10, tree.Branch("x", tree.Leaf("x1", -100)))),
		tree.Branch("B", tree.ScoredBranch("b", 5, tree.Branch("y", tree.Leaf("y1", 50)))),
	))
}

// threeAgentTree has two adversaries per ply
func threeAgentTree(t *testing.T) game.State {
	return mustTree(t, 3, tree.Branch("",
		tree.Branch("A",
			tree.Branch("g1", tree.Leaf("h1", 2), tree.Leaf("h2", 9)),
			tree.Branch("g2", tree.Leaf("h1", 7), tree.Leaf("h2", 8)),
		),
		tree.Branch("B",
			tree.Branch("g1", tree.Leaf("h1", 4)),
		),
	))
}

func terminalTree(t *testing.T) game.State {
	win := tree.Leaf("A", 1000)
	win.Win = true
	lose := tree.Leaf("C", -1000)
	lose.Lose = true
	return mustTree(t, 2, tree.Branch("",
		win,
		tree.Branch("B", tree.Leaf("b1", 5)),
		lose,
	))
}
