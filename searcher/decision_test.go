package searcher

import (
	"multiagent/game"
	"multiagent/game/tree"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/**
Root decisions:
- the maximum value wins
- ties between maximal actions are broken by the injected source:
	- same seed -> same action on every call
	- across seeds every maximal action gets picked, non-maximal ones never
- a unique maximum leaves the source untouched
*/

func tiedTree(t *testing.T) game.State {
	return mustTree(t, 2, tree.Branch("",
		tree.Branch("A", tree.Leaf("a1", 5)),
		tree.Branch("B", tree.Leaf("b1", 5)),
		tree.Branch("C", tree.Leaf("c1", 1)),
	))
}

func TestChoose(t *testing.T) {
	t.Run("picking the unique maximum without drawing", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		fresh := rand.New(rand.NewSource(3))

		got := choose([]candidate{{"A", 1}, {"B", 3}, {"C", 2}}, rng)

		require.Equal(t, candidate{"B", 3}, got)
		require.Equal(t, fresh.Uint64(), rng.Uint64(), "Source should not advance")
	})

	t.Run("picking only among tied maxima", func(t *testing.T) {
		seen := map[game.Action]bool{}
		for seed := uint64(0); seed < 64; seed++ {
			got := choose([]candidate{{"A", 5}, {"B", 5}, {"C", 1}}, rand.New(rand.NewSource(seed)))
			require.Equal(t, 5.0, got.value)
			seen[got.action] = true
		}
		require.Equal(t, map[game.Action]bool{"A": true, "B": true}, seen)
	})
}

func TestTieBreakDeterminism(t *testing.T) {
	for _, kind := range []string{"minimax", "alphabeta", "expectimax"} {
		t.Run(kind, func(t *testing.T) {
			for seed := uint64(0); seed < 8; seed++ {
				first := findMove(t, kind, tiedTree(t), WithSeed(seed))
				for i := 0; i < 5; i++ {
					again := findMove(t, kind, tiedTree(t), WithSeed(seed))
					require.Equal(t, first.Action, again.Action, "Same seed should give the same action")
				}
				require.Contains(t, []game.Action{"A", "B"}, first.Action)
				require.Equal(t, 5.0, first.Value)
			}
		})
	}

	t.Run("same seed across searchers", func(t *testing.T) {
		for seed := uint64(0); seed < 8; seed++ {
			full := findMove(t, "minimax", tiedTree(t), WithSeed(seed))
			pruned := findMove(t, "alphabeta", tiedTree(t), WithSeed(seed))
			require.Equal(t, full.Action, pruned.Action)
		}
	})

	t.Run("injected source", func(t *testing.T) {
		a := findMove(t, "minimax", tiedTree(t), WithRand(rand.New(rand.NewSource(11))))
		b := findMove(t, "minimax", tiedTree(t), WithRand(rand.New(rand.NewSource(11))))
		require.Equal(t, a.Action, b.Action)
	})
}

func TestNew(t *testing.T) {
	t.Run("building every registered agent", func(t *testing.T) {
		for _, kind := range AgentNames() {
			agent, err := New(kind)
			require.NoError(t, err, kind)
			require.NotNil(t, agent, kind)
		}
	})

	t.Run("exposing the resolved config", func(t *testing.T) {
		for _, kind := range AgentNames() {
			agent, err := New(kind, WithDepth(3), WithEvaluationFn("better"))
			require.NoError(t, err, kind)
			require.Equal(t, 3, agent.Config().Depth(), kind)
			require.Equal(t, "better", agent.Config().EvaluationName(), kind)
		}
	})

	t.Run("failing on unknown agents", func(t *testing.T) {
		_, err := New("negamax")
		require.ErrorIs(t, err, ErrUnknownAgent)
	})

	t.Run("failing on bad configuration", func(t *testing.T) {
		_, err := New("alphabeta", WithDepth(0))
		require.ErrorIs(t, err, ErrInvalidDepth)
	})
}

func TestNextTurn(t *testing.T) {
	agent, depth := nextTurn(0, 2, 3)
	require.Equal(t, 1, agent)
	require.Equal(t, 2, depth)

	agent, depth = nextTurn(2, 2, 3)
	require.Equal(t, 0, agent, "Last adversary hands back to the controlled agent")
	require.Equal(t, 1, depth)

	agent, depth = nextTurn(0, 1, 1)
	require.Equal(t, 0, agent)
	require.Equal(t, 0, depth)
}
