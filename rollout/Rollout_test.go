package rollout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gridpg/environment"
	"github.com/samuelfneumann/gridpg/maze"
	"github.com/samuelfneumann/gridpg/policy"
)

func ringEnv(t *testing.T) *environment.Environment {
	t.Helper()

	m, err := maze.FromGrid([][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 1, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	})
	require.NoError(t, err)

	env, err := environment.New(m, maze.Position{Row: 1, Col: 1},
		maze.Position{Row: 3, Col: 3})
	require.NoError(t, err)
	return env
}

func TestRolloutShape(t *testing.T) {
	env := ringEnv(t)
	p, err := policy.NewSoftmax(5, 5, 7)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		traj := Rollout(p, env, env.Start(), 30)

		assert.Equal(t, len(traj.StateActions)+1, len(traj.Positions))
		assert.Equal(t, env.Start(), traj.Positions[0])
		assert.LessOrEqual(t, traj.Steps(), 30)

		last := traj.Positions[len(traj.Positions)-1]
		assert.Equal(t, env.AtGoal(last), traj.ReachedGoal)
	}
}

func TestRolloutStartIsGoal(t *testing.T) {
	env := ringEnv(t)
	p, err := policy.NewSoftmax(5, 5, 7)
	require.NoError(t, err)

	traj := Rollout(p, env, env.Goal(), 30)

	assert.True(t, traj.ReachedGoal)
	assert.Empty(t, traj.StateActions)
	assert.Equal(t, []maze.Position{env.Goal()}, traj.Positions)
	assert.Equal(t, 1.0, traj.Reward())
}

func TestRolloutExhaustsBudget(t *testing.T) {
	// The goal is sealed off, so every rollout runs out its budget
	m, err := maze.FromGrid([][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 1, 1},
		{1, 0, 0, 1, 0},
		{1, 1, 1, 1, 1},
	})
	require.NoError(t, err)

	env, err := environment.New(m, maze.Position{Row: 1, Col: 1},
		maze.Position{Row: 2, Col: 4})
	require.NoError(t, err)

	p, err := policy.NewSoftmax(4, 5, 7)
	require.NoError(t, err)

	traj := Rollout(p, env, env.Start(), 25)
	assert.False(t, traj.ReachedGoal)
	assert.Equal(t, 25, traj.Steps())
	assert.Equal(t, 0.0, traj.Reward())
}

func TestSampleBatch(t *testing.T) {
	env := ringEnv(t)
	p, err := policy.NewSoftmax(5, 5, 7)
	require.NoError(t, err)

	starter := environment.NewSingleStart(env.Start())
	batch := SampleBatch(p, env, starter, 8, 30)

	require.Len(t, batch, 8)
	for _, traj := range batch {
		assert.Equal(t, env.Start(), traj.Positions[0])
	}
}
