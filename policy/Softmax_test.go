package policy

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gridpg/environment"
	"github.com/samuelfneumann/gridpg/maze"
)

const tolerance float64 = 1e-12

func TestProbsIsDistribution(t *testing.T) {
	p, err := NewSoftmax(3, 3, 11)
	require.NoError(t, err)

	s := maze.Position{Row: 1, Col: 2}

	// Zero logits give the uniform policy
	for _, prob := range p.Probs(s) {
		assert.InDelta(t, 0.25, prob, tolerance)
	}

	// Arbitrary logits, including extreme ones, still give a
	// well-formed distribution
	logits := p.Logits()
	logits[p.Index(s, environment.Up)] = 20
	logits[p.Index(s, environment.Down)] = -20
	logits[p.Index(s, environment.Left)] = 3.5
	logits[p.Index(s, environment.Right)] = -0.2

	probs := p.Probs(s)
	assert.InDelta(t, 1.0, floats.Sum(probs), tolerance)
	for _, prob := range probs {
		assert.GreaterOrEqual(t, prob, 0.0)
		assert.LessOrEqual(t, prob, 1.0)
	}
}

func TestScoreFunction(t *testing.T) {
	p, err := NewSoftmax(3, 3, 11)
	require.NoError(t, err)

	s := maze.Position{Row: 1, Col: 1}
	logits := p.Logits()
	logits[p.Index(s, environment.Up)] = 1.0
	logits[p.Index(s, environment.Left)] = -2.0

	probs := p.Probs(s)
	score := p.ScoreFunction(s, environment.Left)

	for a := 0; a < environment.Actions; a++ {
		if environment.Action(a) == environment.Left {
			assert.InDelta(t, 1.0-probs[a], score[a], tolerance)
		} else {
			assert.InDelta(t, -probs[a], score[a], tolerance)
		}
	}

	// The score function always sums to zero
	assert.InDelta(t, 0.0, floats.Sum(score), tolerance)
}

func TestClipLogits(t *testing.T) {
	p, err := NewSoftmax(2, 2, 11)
	require.NoError(t, err)

	logits := p.Logits()
	logits[0], logits[1], logits[2], logits[3] = 5, -60, 3, 5
	logits[4], logits[5], logits[6], logits[7] = -1, -2, -3, -4

	before := make([]float64, len(logits))
	for s := 0; s < 4; s++ {
		base := s * environment.Actions
		copy(before[base:], p.Probs(maze.Position{Row: s / 2, Col: s % 2}))
	}

	p.ClipLogits()

	for s := 0; s < 4; s++ {
		base := s * environment.Actions
		z := logits[base : base+environment.Actions]

		// Per state: best logit re-centred to exactly 0, none below -20
		max, min := z[0], z[0]
		for _, v := range z {
			if v > max {
				max = v
			}
			if v < min {
				min = v
			}
		}
		assert.Equal(t, 0.0, max)
		assert.GreaterOrEqual(t, min, -20.0)
	}

	// Re-centring leaves the distributions unchanged wherever no logit
	// was clamped
	probs := p.Probs(maze.Position{Row: 0, Col: 1})
	assert.InDeltaSlice(t, before[4:8], probs, tolerance)
}

func TestNewSoftmaxRejectsBadDims(t *testing.T) {
	_, err := NewSoftmax(0, 3, 11)
	assert.Error(t, err)

	_, err = NewSoftmax(3, -1, 11)
	assert.Error(t, err)
}
