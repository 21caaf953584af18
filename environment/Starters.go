package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gridpg/maze"
)

// Starter implements a distribution over starting positions and
// samples a starting position for each training trajectory
type Starter interface {
	Start() maze.Position
}

// SingleStart is a Starter that always starts from the same position
type SingleStart struct {
	position maze.Position
}

// NewSingleStart returns a Starter that always returns position
func NewSingleStart(position maze.Position) SingleStart {
	return SingleStart{position}
}

// Start returns the fixed starting position
func (s SingleStart) Start() maze.Position {
	return s.position
}

// CategoricalStarter samples starting positions from a categorical
// distribution over a fixed list of candidate positions
type CategoricalStarter struct {
	positions []maze.Position
	dist      distuv.Categorical
}

// NewCategoricalStarter returns a CategoricalStarter that samples
// positions[i] with probability proportional to weights[i]. Weights
// must be non-negative and sum to a positive value; normalisation is
// the caller's responsibility only up to scale.
func NewCategoricalStarter(positions []maze.Position, weights []float64,
	seed uint64) (CategoricalStarter, error) {
	if len(positions) == 0 {
		return CategoricalStarter{}, fmt.Errorf("newCategoricalStarter: " +
			"no candidate positions")
	}
	if len(positions) != len(weights) {
		return CategoricalStarter{}, fmt.Errorf("newCategoricalStarter: "+
			"have %d positions but %d weights", len(positions), len(weights))
	}

	source := rand.NewSource(seed)
	dist := distuv.NewCategorical(weights, source)

	return CategoricalStarter{positions: positions, dist: dist}, nil
}

// NewUniformStarter returns a CategoricalStarter that samples
// uniformly from positions
func NewUniformStarter(positions []maze.Position,
	seed uint64) (CategoricalStarter, error) {
	weights := make([]float64, len(positions))
	for i := range weights {
		weights[i] = 1.0 / float64(len(positions))
	}

	return NewCategoricalStarter(positions, weights, seed)
}

// Start samples and returns a starting position
func (c CategoricalStarter) Start() maze.Position {
	return c.positions[int(c.dist.Rand())]
}

// Positions returns the candidate starting positions
func (c CategoricalStarter) Positions() []maze.Position {
	return c.positions
}
