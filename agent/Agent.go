// Package agent outlines the interface that batch policy-gradient
// update rules implement
package agent

import "github.com/samuelfneumann/gridpg/policy"

// Updater is a batch training update rule bound to a policy, an
// environment, and a start distribution. Each call to Update samples
// one batch of trajectories and mutates the policy's logits in place,
// returning the number of successful trajectories in the batch.
//
// An Update call must be treated as an atomic unit with respect to its
// policy: parameter mutation is not synchronised, so no two updates
// may run concurrently against the same policy.
type Updater interface {
	Update() (successes int)
	Policy() *policy.Softmax
	Name() string
}
