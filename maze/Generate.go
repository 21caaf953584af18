package maze

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	// WallProbability is the probability with which each interior cell
	// of a generated maze is marked as a wall
	WallProbability float64 = 0.30

	// maxPokes is the number of random interior cells opened while
	// trying to repair a disconnected maze before generation restarts
	maxPokes int = 200

	// maxRestarts bounds how many times generation restarts from
	// scratch before giving up
	maxRestarts int = 50
)

// Generate builds a random maze with walls forced along the outer
// border and each interior cell independently marked as a wall with
// probability WallProbability. The start and goal cells are always
// forced open.
//
// Connectivity between start and goal is checked with a breadth-first
// search. A disconnected maze is repaired by repeatedly opening a
// uniformly random interior cell, up to maxPokes times; if the maze is
// still disconnected, generation restarts from scratch. Generate
// returns an error only when every restart is exhausted, which for
// WallProbability = 0.30 is vanishingly unlikely on any reasonable
// grid.
func Generate(rows, cols int, start, goal Position, rng *rand.Rand) (*Maze,
	error) {
	if rows < 3 || cols < 3 {
		return nil, fmt.Errorf("generate: grid of size (%d, %d) has no "+
			"interior", rows, cols)
	}
	if !interior(start, rows, cols) || !interior(goal, rows, cols) {
		return nil, fmt.Errorf("generate: start %v and goal %v must be "+
			"interior cells", start, goal)
	}

	for attempt := 0; attempt < maxRestarts; attempt++ {
		m := randomGrid(rows, cols, start, goal, rng)

		connected := ShortestPath(m, start, goal).Found
		for poke := 0; !connected && poke < maxPokes; poke++ {
			p := Position{
				Row: 1 + rng.Intn(rows-2),
				Col: 1 + rng.Intn(cols-2),
			}
			m.cells[p.Row][p.Col] = Path
			connected = ShortestPath(m, start, goal).Found
		}

		if connected {
			return m, nil
		}
	}

	return nil, fmt.Errorf("generate: no connected maze found in %d "+
		"attempts", maxRestarts)
}

// randomGrid builds one candidate maze: border walls, random interior
// walls, start and goal forced open
func randomGrid(rows, cols int, start, goal Position, rng *rand.Rand) *Maze {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
		for j := range cells[i] {
			onBorder := i == 0 || j == 0 || i == rows-1 || j == cols-1
			if onBorder || rng.Float64() < WallProbability {
				cells[i][j] = Wall
			}
		}
	}

	cells[start.Row][start.Col] = Path
	cells[goal.Row][goal.Col] = Path

	return &Maze{cells: cells, rows: rows, cols: cols}
}

func interior(p Position, rows, cols int) bool {
	return p.Row > 0 && p.Row < rows-1 && p.Col > 0 && p.Col < cols-1
}
