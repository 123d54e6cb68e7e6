package searcher

import (
	"errors"
	"fmt"
	"multiagent/game"
	"sort"
)

var (
	ErrNoLegalActions = errors.New("controlled agent has no legal actions")
	ErrUnknownAgent   = errors.New("unknown search agent")
)

// Decision is the outcome of one top-level search.
type Decision struct {
	Action  game.Action
	Value   float64 // Backed-up value of Action at the root
	Metrics SearchMetrics
}

type Agent interface {
	// FindMove searches from state and returns the best action for the controlled agent
	FindMove(state game.State) (Decision, error)
	Config() *Config
}

var agents = map[string]func(...Option) (Agent, error){
	"minimax":    func(o ...Option) (Agent, error) { return NewMinimax(o...) },
	"alphabeta":  func(o ...Option) (Agent, error) { return NewAlphaBeta(o...) },
	"expectimax": func(o ...Option) (Agent, error) { return NewExpectimax(o...) },
	"reflex":     func(o ...Option) (Agent, error) { return NewReflex(o...) },
}

// New builds the agent registered under kind.
func New(kind string, options ...Option) (Agent, error) {
	build, ok := agents[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownAgent, kind, AgentNames())
	}
	return build(options...)
}

// AgentNames lists the registered agent kinds in sorted order.
func AgentNames() []string {
	names := make([]string, 0, len(agents))
	for name := range agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// nextTurn returns who moves after agent and the depth they move at. Depth
// drops by one each time control returns to the controlled agent.
func nextTurn(agent, depth, numAgents int) (int, int) {
	next := agent + 1
	if next >= numAgents {
		return game.Controlled, depth - 1
	}
	return next, depth
}

// isLeaf reports whether state is evaluated instead of expanded.
func isLeaf(state game.State, depth int, metrics Collector) bool {
	if game.IsTerminal(state) {
		return true
	}
	if depth <= 0 {
		metrics.AddCutoff()
		return true
	}
	return false
}
