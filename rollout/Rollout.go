// Package rollout simulates episodes of a policy acting in an
// environment
package rollout

import (
	"github.com/samuelfneumann/gridpg/environment"
	"github.com/samuelfneumann/gridpg/maze"
	"github.com/samuelfneumann/gridpg/policy"
	"github.com/samuelfneumann/gridpg/trajectory"
)

// Rollout simulates one episode of p acting in env from start, taking
// at most maxSteps actions. The episode stops early as soon as the
// goal is reached, so a start equal to the goal is trivially
// successful with an empty state-action list. Rollout is a pure
// simulation: its only side effect is consuming randomness from the
// policy's sampler.
func Rollout(p *policy.Softmax, env *environment.Environment,
	start maze.Position, maxSteps int) trajectory.Trajectory {
	pos := start
	positions := []maze.Position{start}
	var stateActions []trajectory.StateAction

	for i := 0; i < maxSteps; i++ {
		if env.AtGoal(pos) {
			break
		}

		action := p.SampleAction(pos)
		stateActions = append(stateActions, trajectory.StateAction{
			State:  pos,
			Action: action,
		})

		pos, _ = env.Step(pos, action)
		positions = append(positions, pos)
	}

	return trajectory.Trajectory{
		Positions:    positions,
		StateActions: stateActions,
		ReachedGoal:  env.AtGoal(pos),
	}
}

// SampleBatch simulates n independent episodes, each starting from a
// position drawn from starter
func SampleBatch(p *policy.Softmax, env *environment.Environment,
	starter environment.Starter, n, maxSteps int) []trajectory.Trajectory {
	batch := make([]trajectory.Trajectory, n)
	for i := range batch {
		batch[i] = Rollout(p, env, starter.Start(), maxSteps)
	}
	return batch
}
