package game

// Directions used by grid environments.
const (
	North Action = "North"
	South Action = "South"
	East  Action = "East"
	West  Action = "West"
	Stop  Action = "Stop"
)

// Position is a cell on the grid.
type Position struct {
	X int
	Y int
}

// Ghost is an adversary as seen by the reflex heuristic.
type Ghost struct {
	Position    Position
	ScaredTimer int // Moves left while the ghost is vulnerable, 0 if dangerous
}

// IsScared reports whether the ghost can currently be eaten.
func (g Ghost) IsScared() bool {
	return g.ScaredTimer > 0
}

// GridState exposes the positional information the grid heuristics read.
// Ghosts are ordered by agent index, i.e. Ghosts()[i] is agent i+1.
type GridState interface {
	State
	PacmanPosition() Position
	Food() []Position
	Capsules() []Position
	Ghosts() []Ghost
}

// ManhattanDistance returns |ax-bx| + |ay-by|.
func ManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// nearest returns the smallest Manhattan distance from p to any of targets, or
// false if there are no targets
func nearest(p Position, targets []Position) (int, bool) {
	if len(targets) == 0 {
		return 0, false
	}
	best := ManhattanDistance(p, targets[0])
	for _, t := range targets[1:] {
		if d := ManhattanDistance(p, t); d < best {
			best = d
		}
	}
	return best, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
