package game

import (
	"fmt"
	"sort"
)

// Reflex heuristic weights
const (
	FoodBonus    = 20.0  // Scaled by 1/(distance+1) to the nearest food
	ChaseBonus   = 200.0 // Scaled by 1/distance to a scared ghost
	DangerRadius = 2     // Active ghosts closer than this are a threat
	DangerCost   = 500.0
)

// Weights for EvaluateBetter
const (
	betterFoodBonus    = 10.0
	betterFoodCost     = 4.0
	betterCapsuleCost  = 20.0
	betterChaseBonus   = 150.0
	betterDangerCost   = 400.0
	betterDangerRadius = 2
)

var evaluations = map[string]Evaluate{
	"score":                    EvaluateScore,
	"scoreEvaluationFunction":  EvaluateScore,
	"better":                   EvaluateBetter,
	"betterEvaluationFunction": EvaluateBetter,
}

// LookupEvaluation resolves an evaluation function by its registered name.
func LookupEvaluation(name string) (Evaluate, error) {
	evaluate, ok := evaluations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownEvaluation, name, EvaluationNames())
	}
	return evaluate, nil
}

// EvaluationNames lists the registered evaluation names in sorted order.
func EvaluationNames() []string {
	names := make([]string, 0, len(evaluations))
	for name := range evaluations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EvaluateScore returns the raw environment score. It is the default leaf
// evaluator for the adversarial searchers.
func EvaluateScore(s State) float64 {
	return s.Score()
}

// EvaluateReflex scores the successor reached by the controlled agent playing
// action from s: the successor's score, a bonus for being close to food, a
// large bonus for approaching scared ghosts and a large penalty for standing
// next to an active one.
func EvaluateReflex(s State, action Action) (float64, error) {
	next, err := s.Successor(Controlled, action)
	if err != nil {
		return 0, fmt.Errorf("failed to generate successor for %q: %w", action, err)
	}
	gs, ok := next.(GridState)
	if !ok {
		return 0, fmt.Errorf("%w: reflex evaluation needs a GridState, got %T", ErrUnsupportedState, next)
	}

	pacman := gs.PacmanPosition()
	score := gs.Score()

	if d, ok := nearest(pacman, gs.Food()); ok {
		score += FoodBonus / float64(d+1)
	}

	for _, ghost := range gs.Ghosts() {
		d := ManhattanDistance(pacman, ghost.Position)
		if ghost.IsScared() && d > 0 {
			score += ChaseBonus / float64(d)
		} else if d < DangerRadius {
			score -= DangerCost
		}
	}

	return score, nil
}

// EvaluateBetter evaluates a state on its own (no action), so it can be used
// at search cutoffs. Besides the reflex terms it rewards clearing food and
// capsules. Non-grid states are evaluated by their score.
func EvaluateBetter(s State) float64 {
	gs, ok := s.(GridState)
	if !ok {
		return s.Score()
	}

	pacman := gs.PacmanPosition()
	food := gs.Food()
	score := gs.Score()

	if d, ok := nearest(pacman, food); ok {
		score += betterFoodBonus / float64(d+1)
	}
	score -= betterFoodCost * float64(len(food))
	score -= betterCapsuleCost * float64(len(gs.Capsules()))

	for _, ghost := range gs.Ghosts() {
		d := ManhattanDistance(pacman, ghost.Position)
		switch {
		// Only worth chasing if it stays scared long enough to be reached
		case ghost.IsScared() && ghost.ScaredTimer > d:
			score += betterChaseBonus / float64(d+1)
		case !ghost.IsScared() && d < betterDangerRadius:
			score -= betterDangerCost
		}
	}

	return score
}
