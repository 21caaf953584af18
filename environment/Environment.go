// Package environment implements the grid-navigation environment that
// policies are trained against
package environment

import (
	"fmt"

	"github.com/samuelfneumann/gridpg/maze"
)

// Environment is a deterministic navigation task over a fixed maze
// with a designated start and goal cell. An Environment holds no
// mutable simulation state: Step is a pure function of (position,
// action), so a single Environment may back any number of concurrent
// rollouts.
type Environment struct {
	maze  *maze.Maze
	start maze.Position
	goal  maze.Position
}

// New creates a new Environment on m with the given start and goal
// positions, both of which must be path cells of m
func New(m *maze.Maze, start, goal maze.Position) (*Environment, error) {
	if !m.IsOpen(start) {
		return nil, fmt.Errorf("new: start %v is not an open cell", start)
	}
	if !m.IsOpen(goal) {
		return nil, fmt.Errorf("new: goal %v is not an open cell", goal)
	}

	return &Environment{maze: m, start: start, goal: goal}, nil
}

// Maze returns the Environment's maze
func (e *Environment) Maze() *maze.Maze {
	return e.maze
}

// Start returns the Environment's designated start position
func (e *Environment) Start() maze.Position {
	return e.start
}

// Goal returns the Environment's goal position
func (e *Environment) Goal() maze.Position {
	return e.goal
}

// IsValid returns whether p is in bounds and on a path cell
func (e *Environment) IsValid(p maze.Position) bool {
	return e.maze.IsOpen(p)
}

// Step attempts to move from p in the direction of a. Moves off the
// grid or into a wall are absorbed as identity moves rather than
// errors. The returned done flag is true iff the new position is the
// goal.
func (e *Environment) Step(p maze.Position, a Action) (maze.Position, bool) {
	d := a.delta()
	next := maze.Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
	if !e.IsValid(next) {
		next = p
	}
	return next, next == e.goal
}

// AtGoal returns whether p is the goal position
func (e *Environment) AtGoal(p maze.Position) bool {
	return p == e.goal
}

func (e *Environment) String() string {
	return fmt.Sprintf("Environment | Start: %v  |  Goal: %v  |  %v",
		e.start, e.goal, e.maze)
}
