// Package reinforce implements the REINFORCE batch update, the policy
// gradient of expected success probability with a mean-reward baseline
package reinforce

import (
	"fmt"

	"github.com/samuelfneumann/gridpg/environment"
	"github.com/samuelfneumann/gridpg/policy"
	"github.com/samuelfneumann/gridpg/rollout"
)

// REINFORCE is a batch Monte-Carlo policy-gradient update on the
// objective E[success]. Each batch's mean reward is subtracted as a
// baseline, so when every trajectory in a batch succeeds or every one
// fails the advantage is zero everywhere and the update is a no-op.
// That is the mechanism by which REINFORCE stops learning on starts
// that are already easy or still hopeless.
type REINFORCE struct {
	policy  *policy.Softmax
	env     *environment.Environment
	starter environment.Starter
	config  Config
}

// New returns a REINFORCE updater that trains p against env with
// starting positions drawn from starter
func New(p *policy.Softmax, env *environment.Environment,
	starter environment.Starter, config Config) (*REINFORCE, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	return &REINFORCE{policy: p, env: env, starter: starter,
		config: config}, nil
}

// Update samples one batch of trajectories and takes one gradient step
// on the policy's logits, returning the number of successful
// trajectories in the batch
func (r *REINFORCE) Update() int {
	n := r.config.BatchSize
	batch := rollout.SampleBatch(r.policy, r.env, r.starter, n,
		r.config.MaxSteps)

	successes := 0
	for _, traj := range batch {
		if traj.ReachedGoal {
			successes++
		}
	}

	// Uniform advantage means a zero gradient; skip the arithmetic
	if successes == 0 || successes == n {
		return successes
	}

	baseline := float64(successes) / float64(n)
	grad := make([]float64, len(r.policy.Logits()))

	for _, traj := range batch {
		advantage := (traj.Reward() - baseline) / float64(n)
		for _, sa := range traj.StateActions {
			score := r.policy.ScoreFunction(sa.State, sa.Action)
			base := r.policy.Index(sa.State, 0)
			for i, s := range score {
				grad[base+i] += advantage * s
			}
		}
	}

	r.policy.AddScaled(r.config.LearningRate, grad)
	r.policy.ClipLogits()

	return successes
}

// Policy returns the policy being trained
func (r *REINFORCE) Policy() *policy.Softmax {
	return r.policy
}

// Name returns the update rule's name
func (r *REINFORCE) Name() string {
	return "REINFORCE"
}
