package game

import "errors"

// Controlled is the index of the agent the search plays for. Every other
// index is an adversary.
const Controlled = 0

// Action is an opaque, comparable token for one legal move of one agent.
type Action string

var (
	ErrIllegalAction     = errors.New("illegal action")
	ErrUnknownEvaluation = errors.New("unknown evaluation function")
	ErrUnsupportedState  = errors.New("unsupported state")
)

// State should be immutable - Successor always returns a new State
type State interface {
	// NumAgents is at least 1 and constant for a game instance
	NumAgents() int
	// LegalActions is empty only when the state is terminal for the agent
	LegalActions(agent int) []Action
	// Successor fails with ErrIllegalAction if action is not legal for agent
	Successor(agent int, action Action) (State, error)
	IsWin() bool
	IsLose() bool
	Score() float64
}

// IsTerminal reports whether the game is over in s.
func IsTerminal(s State) bool {
	return s.IsWin() || s.IsLose()
}

// Evaluates a state to a score where higher is better for the controlled agent.
type Evaluate func(State) float64

// Evaluates a candidate action of the controlled agent from the current state.
type EvaluateAction func(State, Action) (float64, error)
