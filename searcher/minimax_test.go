package searcher

import (
	"multiagent/game"
	"multiagent/game/tree"
	"testing"

	"github.com/stretchr/testify/require"
)

func findMove(t *testing.T, kind string, state game.State, options ...Option) Decision {
	t.Helper()
	agent, err := New(kind, append([]Option{WithSeed(1), WithMetrics()}, options...)...)
	require.NoError(t, err)
	d, err := agent.FindMove(state)
	require.NoError(t, err)
	return d
}

func TestMinimax(t *testing.T) {
	t.Run("choosing the best worst case", func(t *testing.T) {
		d := findMove(t, "minimax", scenarioTree(t), WithDepth(1))

		require.Equal(t, game.Action("A"), d.Action)
		require.Equal(t, 3.0, d.Value)
		require.Equal(t, int64(7), d.Metrics.Nodes, "Root, two adversary nodes and four leaves")
		require.Zero(t, d.Metrics.Prunes)
	})

	t.Run("minimizing over every adversary in a ply", func(t *testing.T) {
		d := findMove(t, "minimax", threeAgentTree(t), WithDepth(1))

		require.Equal(t, game.Action("B"), d.Action)
		require.Equal(t, 4.0, d.Value)
	})

	t.Run("limiting lookahead by depth", func(t *testing.T) {
		shallow := findMove(t, "minimax", lookaheadTree(t), WithDepth(1))
		require.Equal(t, game.Action("A"), shallow.Action)
		require.Equal(t, 10.0, shallow.Value)
		require.Equal(t, int64(2), shallow.Metrics.Cutoffs, "Both branches are cut off after one ply")

		deep := findMove(t, "minimax", lookaheadTree(t), WithDepth(3))
		require.Equal(t, game.Action("B"), deep.Action)
		require.Equal(t, 50.0, deep.Value)
		require.Zero(t, deep.Metrics.Cutoffs)
	})

	t.Run("short-circuiting terminal states", func(t *testing.T) {
		d := findMove(t, "minimax", terminalTree(t), WithDepth(5))

		require.Equal(t, game.Action("A"), d.Action)
		require.Equal(t, 1000.0, d.Value)
		require.Equal(t, int64(5), d.Metrics.Nodes, "Terminal children are evaluated, never expanded")
		require.Zero(t, d.Metrics.Cutoffs)
	})

	t.Run("always expanding the root", func(t *testing.T) {
		// A single agent at depth 1 still looks at each successor
		state := mustTree(t, 1, tree.Branch("",
			tree.ScoredBranch("A", 1, tree.Leaf("a", 100)),
			tree.Leaf("B", 2),
		))
		d := findMove(t, "minimax", state, WithDepth(1))

		require.Equal(t, game.Action("B"), d.Action)
		require.Equal(t, 2.0, d.Value)
	})

	t.Run("searching single-agent games by plies", func(t *testing.T) {
		state := mustTree(t, 1, tree.Branch("",
			tree.ScoredBranch("A", 1, tree.Leaf("a", 100)),
			tree.Leaf("B", 2),
		))
		d := findMove(t, "minimax", state, WithDepth(2))

		require.Equal(t, game.Action("A"), d.Action)
		require.Equal(t, 100.0, d.Value)
	})

	t.Run("evaluating adversaries without actions", func(t *testing.T) {
		state := mustTree(t, 2, tree.Branch("",
			tree.Leaf("A", 6),
			tree.Branch("B", tree.Leaf("b1", 4)),
		))
		d := findMove(t, "minimax", state, WithDepth(2))

		require.Equal(t, game.Action("A"), d.Action)
		require.Equal(t, 6.0, d.Value)
	})

	t.Run("failing without root actions", func(t *testing.T) {
		agent, err := NewMinimax()
		require.NoError(t, err)
		_, err = agent.FindMove(mustTree(t, 2, tree.Leaf("", 0)))
		require.ErrorIs(t, err, ErrNoLegalActions)
	})

	t.Run("propagating illegal successors", func(t *testing.T) {
		agent, err := NewMinimax()
		require.NoError(t, err)
		_, err = agent.FindMove(brokenState{agents: 2})
		require.ErrorIs(t, err, game.ErrIllegalAction)
	})
}
