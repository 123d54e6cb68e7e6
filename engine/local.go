package engine

import (
	"errors"
	"fmt"
	"multiagent/game"
	"multiagent/searcher"

	"github.com/rs/zerolog/log"
)

const MaxTurns = 500

var ErrNoAdversary = errors.New("game has adversaries but no adversary policy")

type MoveMetrics struct {
	Turn   int
	Agent  int
	Action game.Action
	searcher.SearchMetrics
}

// Result summarizes one played game.
type Result struct {
	Final game.State
	Turns int
	Moves []MoveMetrics
}

// Engine plays a game from a start state: the controlled agent searches,
// every adversary follows the same policy.
type Engine struct {
	Controlled searcher.Agent
	Adversary  Policy
}

func LocalEngine(controlled searcher.Agent, adversary Policy) *Engine {
	return &Engine{
		Controlled: controlled,
		Adversary:  adversary,
	}
}

// Run plays until the game is over, the agent to move has no legal action or
// MaxTurns moves have been made.
func (e *Engine) Run(state game.State) (Result, error) {
	if state.NumAgents() > 1 && e.Adversary == nil {
		return Result{}, ErrNoAdversary
	}

	log.Info().Msgf("starting game with %d agents", state.NumAgents())

	agent := game.Controlled
	moves := []MoveMetrics{}
	for turn := 1; turn <= MaxTurns && !game.IsTerminal(state); turn++ {
		if len(state.LegalActions(agent)) == 0 {
			break
		}

		var action game.Action
		var metrics searcher.SearchMetrics
		if agent == game.Controlled {
			decision, err := e.Controlled.FindMove(state)
			if err != nil {
				return Result{}, fmt.Errorf("turn %d: %w", turn, err)
			}
			action, metrics = decision.Action, decision.Metrics
		} else {
			chosen, err := e.Adversary.Choose(state, agent)
			if err != nil {
				return Result{}, fmt.Errorf("turn %d: %w", turn, err)
			}
			action = chosen
		}

		next, err := state.Successor(agent, action)
		if err != nil {
			return Result{}, fmt.Errorf("turn %d: agent %d played %q: %w", turn, agent, action, err)
		}
		moves = append(moves, MoveMetrics{Turn: turn, Agent: agent, Action: action, SearchMetrics: metrics})

		state = next
		agent = (agent + 1) % state.NumAgents()
	}

	log.Info().Msgf("game over after %d moves with score %g (win=%t, lose=%t)", len(moves), state.Score(), state.IsWin(), state.IsLose())

	return Result{Final: state, Turns: len(moves), Moves: moves}, nil
}
