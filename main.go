package main

import (
	"fmt"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridpg/agent"
	"github.com/samuelfneumann/gridpg/agent/tabular/maxrl"
	"github.com/samuelfneumann/gridpg/agent/tabular/reinforce"
	"github.com/samuelfneumann/gridpg/config"
	"github.com/samuelfneumann/gridpg/environment"
	"github.com/samuelfneumann/gridpg/evaluate"
	"github.com/samuelfneumann/gridpg/experiment"
	"github.com/samuelfneumann/gridpg/experiment/trackers"
	"github.com/samuelfneumann/gridpg/maze"
	"github.com/samuelfneumann/gridpg/policy"
	"github.com/samuelfneumann/gridpg/report"
)

func main() {
	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	// Build the shared environment
	start := maze.Position{Row: cfg.Start[0], Col: cfg.Start[1]}
	goal := maze.Position{Row: cfg.Goal[0], Col: cfg.Goal[1]}

	rng := rand.New(rand.NewSource(cfg.Seed))
	m, err := maze.Generate(cfg.Rows, cfg.Cols, start, goal, rng)
	if err != nil {
		log.Fatalf("could not generate maze: %v", err)
	}

	env, err := environment.New(m, start, goal)
	if err != nil {
		log.Fatalf("could not create environment: %v", err)
	}

	fmt.Println(env)
	fmt.Println(m.Render(start, goal))

	// Every open cell except the goal is a candidate start, weighted
	// uniformly
	var starts []maze.Position
	for _, p := range m.OpenPositions() {
		if p != goal {
			starts = append(starts, p)
		}
	}

	// Train each update rule on its own fresh policy against the same
	// environment and start distribution
	var curves []report.Series
	for i, name := range []string{"REINFORCE", "MaxRL"} {
		seed := cfg.Seed + uint64(i) + 1

		p, err := policy.NewSoftmax(cfg.Rows, cfg.Cols, seed)
		if err != nil {
			log.Fatalf("could not create policy: %v", err)
		}

		starter, err := environment.NewUniformStarter(starts, seed)
		if err != nil {
			log.Fatalf("could not create starter: %v", err)
		}

		var updater agent.Updater
		switch name {
		case "REINFORCE":
			updater, err = reinforce.New(p, env, starter, reinforce.Config{
				BatchSize:    cfg.BatchSize,
				LearningRate: cfg.LearningRate,
				MaxSteps:     cfg.MaxSteps,
			})
		case "MaxRL":
			updater, err = maxrl.New(p, env, starter, maxrl.Config{
				BatchSize:    cfg.BatchSize,
				LearningRate: cfg.LearningRate,
				MaxSteps:     cfg.MaxSteps,
			})
		}
		if err != nil {
			log.Fatalf("could not create %v updater: %v", name, err)
		}

		tracker := trackers.NewSuccessRate(fmt.Sprintf("%v.bin", name))
		e := experiment.NewOnline(updater, env, starts, cfg.Updates,
			cfg.EvalEvery, cfg.NEval, cfg.MaxSteps, tracker)
		e.ShowProgress()

		fmt.Printf("Training %v for %d updates...\n", name, cfg.Updates)
		e.Run()
		if err := e.Save(); err != nil {
			log.Fatalf("could not save %v metrics: %v", name, err)
		}

		curves = append(curves, report.Series{
			Name:   name,
			Values: tracker.Data(),
		})

		printFinalEval(updater, env, starts, cfg.NEval, cfg.MaxSteps)
	}

	if err := report.WriteChart("success.html",
		"Mean pass@1 across all starts", cfg.EvalEvery, curves...); err != nil {
		log.Fatalf("could not write chart: %v", err)
	}
	if err := cfg.Save("run_config.yaml"); err != nil {
		log.Fatalf("could not save run config: %v", err)
	}

	fmt.Println("Wrote success.html and run_config.yaml")
}

// printFinalEval prints a per-start evaluation table for a trained
// policy, hardest starts last
func printFinalEval(updater agent.Updater, env *environment.Environment,
	starts []maze.Position, nEval, maxSteps int) {
	dists := experiment.Difficulties(env, starts)

	fmt.Printf("%v final per-start success:\n", updater.Name())
	for i, s := range starts {
		passAt1 := evaluate.FromStart(updater.Policy(), env, s, nEval,
			maxSteps)
		passAt8 := evaluate.PassAtK(passAt1, 8)

		line := fmt.Sprintf("  %v  dist %2d  pass@1 %.2f  pass@8 %.2f",
			s, dists[i], passAt1, passAt8)
		switch {
		case passAt1 >= 0.9:
			fmt.Println(aurora.Green(line))
		case passAt1 >= 0.5:
			fmt.Println(aurora.Yellow(line))
		default:
			fmt.Println(aurora.Red(line))
		}
	}
}
