package searcher

import (
	"fmt"
	"math"
	"multiagent/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type candidate struct {
	action game.Action
	value  float64
}

func rootActions(state game.State) ([]game.Action, error) {
	actions := state.LegalActions(game.Controlled)
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w (win=%t, lose=%t)", ErrNoLegalActions, state.IsWin(), state.IsLose())
	}
	return actions, nil
}

func rootSuccessor(state game.State, action game.Action) (game.State, error) {
	next, err := state.Successor(game.Controlled, action)
	if err != nil {
		return nil, fmt.Errorf("failed to expand root action %q: %w", action, err)
	}
	return next, nil
}

// choose returns a candidate with the maximum value. Ties are broken
// uniformly at random; a unique maximum does not draw from rng.
func choose(candidates []candidate, rng *rand.Rand) candidate {
	best := math.Inf(-1)
	for _, c := range candidates {
		if c.value > best {
			best = c.value
		}
	}

	ties := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.value == best {
			ties = append(ties, c)
		}
	}
	if len(ties) == 1 {
		return ties[0]
	}
	return ties[rng.Intn(len(ties))]
}

func decide(name string, candidates []candidate, rng *rand.Rand, metrics Collector) Decision {
	best := choose(candidates, rng)
	d := Decision{
		Action:  best.action,
		Value:   best.value,
		Metrics: metrics.Complete(),
	}

	log.Debug().
		Str("agent", name).
		Str("action", string(d.Action)).
		Float64("value", d.Value).
		Int64("nodes", d.Metrics.Nodes).
		Int64("prunes", d.Metrics.Prunes).
		Msgf("%s found move among %d candidates", name, len(candidates))
	return d
}
