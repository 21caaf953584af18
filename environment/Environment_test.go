package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gridpg/maze"
)

func ringEnv(t *testing.T) *Environment {
	t.Helper()

	m, err := maze.FromGrid([][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 1, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	})
	require.NoError(t, err)

	env, err := New(m, maze.Position{Row: 1, Col: 1},
		maze.Position{Row: 3, Col: 3})
	require.NoError(t, err)
	return env
}

func TestStepMoves(t *testing.T) {
	env := ringEnv(t)

	next, done := env.Step(maze.Position{Row: 1, Col: 1}, Right)
	assert.Equal(t, maze.Position{Row: 1, Col: 2}, next)
	assert.False(t, done)

	next, done = env.Step(maze.Position{Row: 1, Col: 2}, Down)
	assert.Equal(t, maze.Position{Row: 1, Col: 2}, next) // centre wall
	assert.False(t, done)
}

func TestStepAbsorbsInvalidMoves(t *testing.T) {
	env := ringEnv(t)
	pos := maze.Position{Row: 1, Col: 1}

	// Into the border wall and into the centre wall: identity moves,
	// never errors
	for _, a := range []Action{Up, Left} {
		next, done := env.Step(pos, a)
		assert.Equal(t, pos, next)
		assert.False(t, done)
	}
}

func TestStepDoneAtGoal(t *testing.T) {
	env := ringEnv(t)

	next, done := env.Step(maze.Position{Row: 2, Col: 3}, Down)
	assert.Equal(t, env.Goal(), next)
	assert.True(t, done)
}

func TestNewRejectsWallEndpoints(t *testing.T) {
	m, err := maze.FromGrid([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	_, err = New(m, maze.Position{Row: 0, Col: 0},
		maze.Position{Row: 1, Col: 1})
	assert.Error(t, err)

	_, err = New(m, maze.Position{Row: 1, Col: 1},
		maze.Position{Row: 2, Col: 2})
	assert.Error(t, err)
}

func TestCategoricalStarter(t *testing.T) {
	positions := []maze.Position{{Row: 1, Col: 1}, {Row: 1, Col: 2}}

	starter, err := NewCategoricalStarter(positions, []float64{1, 0}, 42)
	require.NoError(t, err)

	// All of the weight is on the first position
	for i := 0; i < 100; i++ {
		assert.Equal(t, positions[0], starter.Start())
	}

	_, err = NewCategoricalStarter(positions, []float64{1}, 42)
	assert.Error(t, err)

	_, err = NewCategoricalStarter(nil, nil, 42)
	assert.Error(t, err)
}
