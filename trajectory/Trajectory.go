// Package trajectory implements the record of a single simulated
// episode of a policy in an environment
package trajectory

import (
	"fmt"

	"github.com/samuelfneumann/gridpg/environment"
	"github.com/samuelfneumann/gridpg/maze"
)

// StateAction is a single decision made during an episode: the state
// the agent was in and the action it took there
type StateAction struct {
	State  maze.Position
	Action environment.Action
}

// Trajectory records one simulated episode: every position visited in
// order, every (state, action) pair taken before each transition, and
// whether the episode ended at the goal. A Trajectory is produced
// fresh by each rollout and never mutated afterwards.
//
// Positions always holds exactly one more entry than StateActions,
// since the starting position is visited before any action is taken.
type Trajectory struct {
	Positions    []maze.Position
	StateActions []StateAction
	ReachedGoal  bool
}

// Steps returns the number of actions taken during the episode
func (t Trajectory) Steps() int {
	return len(t.StateActions)
}

// Reward returns the episode's binary reward: 1 if the goal was
// reached, else 0
func (t Trajectory) Reward() float64 {
	if t.ReachedGoal {
		return 1.0
	}
	return 0.0
}

func (t Trajectory) String() string {
	return fmt.Sprintf("Trajectory | Steps: %d  |  Reached goal: %v",
		t.Steps(), t.ReachedGoal)
}
