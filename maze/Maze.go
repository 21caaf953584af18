// Package maze implements rectangular wall/path grids, shortest-path
// search over them, and random maze generation
package maze

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Cell denotes the contents of a single grid cell, either a traversable
// path cell or a blocking wall cell
type Cell int

const (
	Path Cell = iota
	Wall
)

// Position is a (row, column) pair on a grid. A Position has no
// intrinsic validity; it is always interpreted against a specific
// Maze's bounds.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Maze is a rectangular grid of path and wall cells. A Maze is
// immutable once constructed: reconfiguration replaces the whole Maze
// rather than mutating cells in place.
type Maze struct {
	cells      [][]Cell
	rows, cols int
}

// FromGrid constructs a Maze from a 2-dimensional 0/1 grid, where 0
// denotes a path cell and any non-zero value denotes a wall cell.
func FromGrid(grid [][]int) (*Maze, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("fromGrid: grid must be non-empty")
	}

	cols := len(grid[0])
	cells := make([][]Cell, len(grid))
	open := 0
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("fromGrid: grid is not rectangular: "+
				"row 0 has %d columns but row %d has %d", cols, i, len(row))
		}

		cells[i] = make([]Cell, cols)
		for j, v := range row {
			if v == 0 {
				cells[i][j] = Path
				open++
			} else {
				cells[i][j] = Wall
			}
		}
	}

	if open == 0 {
		return nil, fmt.Errorf("fromGrid: maze has no path cells")
	}

	return &Maze{cells: cells, rows: len(grid), cols: cols}, nil
}

// Dims gets the rows and columns of the Maze
func (m *Maze) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// InBounds returns whether p lies within the Maze's bounds
func (m *Maze) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// At returns the Cell at position p. At panics if p is out of bounds.
func (m *Maze) At(p Position) Cell {
	return m.cells[p.Row][p.Col]
}

// IsOpen returns whether p is in bounds and a path cell
func (m *Maze) IsOpen(p Position) bool {
	return m.InBounds(p) && m.cells[p.Row][p.Col] == Path
}

// OpenPositions returns every path cell in the Maze in row-major order
func (m *Maze) OpenPositions() []Position {
	var open []Position
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.cells[i][j] == Path {
				open = append(open, Position{i, j})
			}
		}
	}
	return open
}

// Grid returns the Maze as a 2-dimensional 0/1 grid, where 0 denotes
// a path cell and 1 a wall cell. The returned grid is a copy.
func (m *Maze) Grid() [][]int {
	grid := make([][]int, m.rows)
	for i := 0; i < m.rows; i++ {
		grid[i] = make([]int, m.cols)
		for j := 0; j < m.cols; j++ {
			if m.cells[i][j] == Wall {
				grid[i][j] = 1
			}
		}
	}
	return grid
}

// Render returns a coloured terminal rendering of the Maze with the
// start and goal cells marked
func (m *Maze) Render(start, goal Position) string {
	var str strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			pos := Position{i, j}
			switch {
			case pos == start:
				str.WriteString(fmt.Sprint(aurora.Green(" S ")))
			case pos == goal:
				str.WriteString(fmt.Sprint(aurora.Red(" G ")))
			case m.cells[i][j] == Wall:
				str.WriteString(fmt.Sprint(aurora.White(" # ")))
			default:
				str.WriteString(" . ")
			}
		}
		str.WriteString("\n")
	}
	return str.String()
}

func (m *Maze) String() string {
	return fmt.Sprintf("Maze | Bounds: (%d, %d)  |  Open cells: %d",
		m.rows, m.cols, len(m.OpenPositions()))
}
