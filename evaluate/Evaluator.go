// Package evaluate estimates the success probability of a frozen
// policy
package evaluate

import (
	"math"

	"github.com/samuelfneumann/gridpg/environment"
	"github.com/samuelfneumann/gridpg/maze"
	"github.com/samuelfneumann/gridpg/policy"
	"github.com/samuelfneumann/gridpg/rollout"
)

// FromStart runs nEval independent rollouts of p in env from start,
// with no parameter updates, and returns the fraction that reached the
// goal: an unbiased Monte-Carlo estimate of single-attempt success
// probability (pass@1)
func FromStart(p *policy.Softmax, env *environment.Environment,
	start maze.Position, nEval, maxSteps int) float64 {
	successes := 0
	for i := 0; i < nEval; i++ {
		if rollout.Rollout(p, env, start, maxSteps).ReachedGoal {
			successes++
		}
	}
	return float64(successes) / float64(nEval)
}

// PassAtK returns the probability of at least one success in k
// independent attempts, computed analytically from a pass@1 estimate
// under the assumption of identically distributed attempts
func PassAtK(passAt1 float64, k int) float64 {
	return 1.0 - math.Pow(1.0-passAt1, float64(k))
}
