// Package policy implements the tabular softmax policy that both
// training objectives optimise
package policy

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gridpg/environment"
	"github.com/samuelfneumann/gridpg/maze"
	"github.com/samuelfneumann/gridpg/utils/floatutils"
)

// LogitRange is the interval every logit is clamped to by ClipLogits
var LogitRange = r1.Interval{Min: -20, Max: 20}

// Softmax is a tabular softmax policy over the four grid actions. It
// holds one unconstrained score (logit) per (state, action) pair,
// stored as a flat array of length rows*cols*4 indexed state-major.
// States range over every grid cell; wall cells simply carry logits
// that are never visited.
//
// The logits are the only mutable state in the training system. They
// are mutated in place by training updates, which must hold exclusive
// access for the duration of an update; sampling and evaluation may
// read them freely between updates.
type Softmax struct {
	rows, cols int
	logits     []float64
	source     rand.Source
}

// NewSoftmax returns a Softmax policy for a rows-by-cols grid with all
// logits zero, which is the uniform random policy. The seed drives
// action sampling.
func NewSoftmax(rows, cols int, seed uint64) (*Softmax, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("newSoftmax: invalid grid size (%d, %d)",
			rows, cols)
	}

	return &Softmax{
		rows:   rows,
		cols:   cols,
		logits: make([]float64, rows*cols*environment.Actions),
		source: rand.NewSource(seed),
	}, nil
}

// Index returns the position of the logit for (s, a) in the flat
// logit array
func (p *Softmax) Index(s maze.Position, a environment.Action) int {
	return (s.Row*p.cols+s.Col)*environment.Actions + int(a)
}

// Logits returns the policy's underlying logit array. The returned
// slice aliases the policy's state: writes to it are writes to the
// policy.
func (p *Softmax) Logits() []float64 {
	return p.logits
}

// Probs returns the action distribution at state s, the softmax of the
// four logits at s. The maximum logit is subtracted before
// exponentiating for numerical stability.
func (p *Softmax) Probs(s maze.Position) []float64 {
	base := p.Index(s, 0)
	z := p.logits[base : base+environment.Actions]

	max := floatutils.Max(z...)
	probs := make([]float64, environment.Actions)
	var sum float64
	for i, logit := range z {
		probs[i] = math.Exp(logit - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// SampleAction draws one action from the categorical distribution at
// state s
func (p *Softmax) SampleAction(s maze.Position) environment.Action {
	dist := distuv.NewCategorical(p.Probs(s), p.source)
	return environment.Action(dist.Rand())
}

// ScoreFunction returns the gradient of log p(a|s) with respect to the
// four logits at s: component a is 1 - p(a|s) and every other
// component a' is -p(a'|s)
func (p *Softmax) ScoreFunction(s maze.Position,
	a environment.Action) []float64 {
	score := p.Probs(s)
	for i := range score {
		score[i] = -score[i]
	}
	score[a] += 1.0
	return score
}

// AddScaled adds stepSize * grad to the logits. The gradient must have
// the same length as the logit array.
func (p *Softmax) AddScaled(stepSize float64, grad []float64) {
	for i := range p.logits {
		p.logits[i] += stepSize * grad[i]
	}
}

// ClipLogits re-centres and clamps the logits as a numerical-stability
// safeguard, and should be called after every parameter update. For
// each state independently the maximum logit is subtracted from all
// four, so the preferred action's logit becomes exactly 0, and every
// logit is then clamped to LogitRange. Re-centring does not change the
// policy: softmax is invariant to a per-state constant shift.
func (p *Softmax) ClipLogits() {
	for base := 0; base < len(p.logits); base += environment.Actions {
		z := p.logits[base : base+environment.Actions]

		max := floatutils.Max(z...)
		for i := range z {
			z[i] = floatutils.ClipInterval(z[i]-max, LogitRange)
		}
	}
}

func (p *Softmax) String() string {
	return fmt.Sprintf("Softmax | States: %d  |  Actions: %d",
		p.rows*p.cols, environment.Actions)
}
