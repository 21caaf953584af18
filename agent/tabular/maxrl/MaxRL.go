// Package maxrl implements the MaxRL batch update, the policy gradient
// of the log of expected success probability
package maxrl

import (
	"fmt"

	"github.com/samuelfneumann/gridpg/environment"
	"github.com/samuelfneumann/gridpg/policy"
	"github.com/samuelfneumann/gridpg/rollout"
)

// MaxRL is a batch policy-gradient update on the objective
// E[log p(success)]. Each trajectory receives the self-normalised
// weight reward/K - 1/N, where K is the batch success count: a
// successful trajectory is up-weighted in inverse proportion to how
// rare success is, so rare successes from hard starts receive
// disproportionately large gradient. That contrast with REINFORCE's
// uniform baseline is the point of the whole system.
//
// A batch with zero successes takes no gradient step at all: the log
// objective is uninformative when the empirical success count is zero.
// The skip is a domain rule, not an error, and is reported to the
// caller only as a returned success count of 0.
type MaxRL struct {
	policy  *policy.Softmax
	env     *environment.Environment
	starter environment.Starter
	config  Config
}

// New returns a MaxRL updater that trains p against env with starting
// positions drawn from starter
func New(p *policy.Softmax, env *environment.Environment,
	starter environment.Starter, config Config) (*MaxRL, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	return &MaxRL{policy: p, env: env, starter: starter, config: config}, nil
}

// Update samples one batch of trajectories and takes one gradient step
// on the policy's logits, returning the number of successful
// trajectories in the batch. If no trajectory succeeded, the logits
// are left untouched.
func (m *MaxRL) Update() int {
	n := m.config.BatchSize
	batch := rollout.SampleBatch(m.policy, m.env, m.starter, n,
		m.config.MaxSteps)

	successes := 0
	for _, traj := range batch {
		if traj.ReachedGoal {
			successes++
		}
	}
	if successes == 0 {
		return 0
	}

	grad := make([]float64, len(m.policy.Logits()))
	for _, traj := range batch {
		weight := (traj.Reward()/float64(successes) - 1.0/float64(n)) /
			float64(n)
		for _, sa := range traj.StateActions {
			score := m.policy.ScoreFunction(sa.State, sa.Action)
			base := m.policy.Index(sa.State, 0)
			for i, s := range score {
				grad[base+i] += weight * s
			}
		}
	}

	m.policy.AddScaled(m.config.LearningRate, grad)
	m.policy.ClipLogits()

	return successes
}

// Policy returns the policy being trained
func (m *MaxRL) Policy() *policy.Softmax {
	return m.policy
}

// Name returns the update rule's name
func (m *MaxRL) Name() string {
	return "MaxRL"
}
