package maze

// neighbourOffsets fixes the BFS expansion order: up, down, left,
// right. The order only affects which of several equal-length paths is
// reported, never the distance.
var neighbourOffsets = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// ShortestRoute is the result of a shortest-path search. Found reports
// whether any route exists; when Found is false, Cells is nil and
// Dist() is -1. When Found is true, Cells holds every position on the
// route, start and goal inclusive.
type ShortestRoute struct {
	Found bool
	Cells []Position
}

// Dist returns the length of the route in edges, or -1 if no route
// was found
func (s ShortestRoute) Dist() int {
	if !s.Found {
		return -1
	}
	return len(s.Cells) - 1
}

// ShortestPath runs a breadth-first search over the Maze's path cells
// and returns the shortest route from start to goal by edge count. If
// the goal is unreachable from the start, the returned route has
// Found == false rather than an error: a disconnected pair is a valid
// query, not a failure.
func ShortestPath(m *Maze, start, goal Position) ShortestRoute {
	if !m.IsOpen(start) || !m.IsOpen(goal) {
		return ShortestRoute{}
	}

	if start == goal {
		return ShortestRoute{Found: true, Cells: []Position{start}}
	}

	parent := make(map[Position]Position, m.rows*m.cols)
	parent[start] = start
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, offset := range neighbourOffsets {
			next := Position{current.Row + offset.Row, current.Col + offset.Col}
			if !m.IsOpen(next) {
				continue
			}
			if _, visited := parent[next]; visited {
				continue
			}
			parent[next] = current

			if next == goal {
				return ShortestRoute{Found: true, Cells: backtrack(parent,
					start, goal)}
			}
			queue = append(queue, next)
		}
	}

	return ShortestRoute{}
}

// backtrack follows parent pointers from goal to start and returns the
// route in start-to-goal order
func backtrack(parent map[Position]Position, start, goal Position) []Position {
	var cells []Position
	for at := goal; at != start; at = parent[at] {
		cells = append(cells, at)
	}
	cells = append(cells, start)

	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}
