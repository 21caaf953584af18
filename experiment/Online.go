// Package experiment implements functionality for running a training
// experiment: a paced loop of batch updates with periodic evaluation
package experiment

import (
	"time"

	"github.com/samuelfneumann/gridpg/agent"
	"github.com/samuelfneumann/gridpg/environment"
	"github.com/samuelfneumann/gridpg/evaluate"
	"github.com/samuelfneumann/gridpg/experiment/trackers"
	"github.com/samuelfneumann/gridpg/maze"
	"github.com/samuelfneumann/gridpg/utils/progressbar"
)

// Online runs a training experiment: it repeatedly calls an Updater,
// and every evalEvery updates freezes the policy and estimates pass@1
// from each evaluation start, sending the mean estimate to every
// registered Tracker.
type Online struct {
	updater agent.Updater
	env     *environment.Environment
	starts  []maze.Position

	updates   int
	evalEvery int
	nEval     int
	maxSteps  int

	trackers []trackers.Tracker
	progress bool
}

// NewOnline creates and returns a new online experiment that trains
// updater for updates batches, evaluating from starts every evalEvery
// batches with nEval rollouts of at most maxSteps steps per start
func NewOnline(updater agent.Updater, env *environment.Environment,
	starts []maze.Position, updates, evalEvery, nEval, maxSteps int,
	t ...trackers.Tracker) *Online {
	return &Online{
		updater:   updater,
		env:       env,
		starts:    starts,
		updates:   updates,
		evalEvery: evalEvery,
		nEval:     nEval,
		maxSteps:  maxSteps,
		trackers:  t,
	}
}

// Register registers a Tracker with the experiment so that metrics
// generated while it runs are tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// ShowProgress enables a terminal progress bar while the experiment
// runs
func (o *Online) ShowProgress() {
	o.progress = true
}

// Run runs the entire experiment for all updates
func (o *Online) Run() {
	var bar *progressbar.ProgressBar
	if o.progress {
		bar = progressbar.New(40, o.updates, 100*time.Millisecond)
		bar.Display()
		defer bar.Close()
	}

	for i := 0; i < o.updates; i++ {
		o.updater.Update()

		if (i+1)%o.evalEvery == 0 {
			o.track(o.Evaluate())
		}
		if bar != nil {
			bar.Increment()
		}
	}
}

// Evaluate freezes the policy and returns the mean pass@1 estimate
// over all evaluation starts
func (o *Online) Evaluate() float64 {
	var total float64
	for _, start := range o.starts {
		total += evaluate.FromStart(o.updater.Policy(), o.env, start,
			o.nEval, o.maxSteps)
	}
	return total / float64(len(o.starts))
}

// Save saves all the data cached by the experiment's Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return err
		}
	}
	return nil
}

// track sends one metric value to every registered Tracker
func (o *Online) track(value float64) {
	for _, t := range o.trackers {
		t.Track(value)
	}
}

// Difficulties returns the shortest-path distance from each start to
// the environment's goal, the difficulty label used for reporting. An
// unreachable start is labelled -1.
func Difficulties(env *environment.Environment,
	starts []maze.Position) []int {
	dists := make([]int, len(starts))
	for i, start := range starts {
		dists[i] = maze.ShortestPath(env.Maze(), start, env.Goal()).Dist()
	}
	return dists
}
