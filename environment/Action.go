package environment

import "github.com/samuelfneumann/gridpg/maze"

// Action is one of the four fixed movement directions
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
)

// Actions is the number of actions available in every state
const Actions int = 4

// delta returns the position offset that taking a in any state
// attempts to move by
func (a Action) delta() maze.Position {
	switch a {
	case Up:
		return maze.Position{Row: -1, Col: 0}
	case Down:
		return maze.Position{Row: 1, Col: 0}
	case Left:
		return maze.Position{Row: 0, Col: -1}
	default:
		return maze.Position{Row: 0, Col: 1}
	}
}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Right"
	}
}
