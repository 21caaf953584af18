// Package config implements loading and saving of training
// configuration
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a training run. Values not present in
// the configuration file fall back to the defaults below.
type Config struct {
	// Seed seeds every random source in the run, so a run is fully
	// reproducible from its configuration
	Seed uint64 `mapstructure:"seed" yaml:"seed"`

	// Rows and Cols are the generated maze's dimensions
	Rows int `mapstructure:"rows" yaml:"rows"`
	Cols int `mapstructure:"cols" yaml:"cols"`

	// Start and Goal are (row, col) pairs for the designated start and
	// goal cells
	Start [2]int `mapstructure:"start" yaml:"start"`
	Goal  [2]int `mapstructure:"goal" yaml:"goal"`

	// BatchSize is the number of trajectories per training batch
	BatchSize int `mapstructure:"batchSize" yaml:"batchSize"`

	// LearningRate scales each gradient step
	LearningRate float64 `mapstructure:"learningRate" yaml:"learningRate"`

	// MaxSteps is the per-trajectory step budget
	MaxSteps int `mapstructure:"maxSteps" yaml:"maxSteps"`

	// Updates is the number of training batches per algorithm
	Updates int `mapstructure:"updates" yaml:"updates"`

	// EvalEvery and NEval control evaluation pacing: every EvalEvery
	// updates, NEval rollouts are run from each candidate start
	EvalEvery int `mapstructure:"evalEvery" yaml:"evalEvery"`
	NEval     int `mapstructure:"nEval" yaml:"nEval"`
}

// Load reads a Config from the YAML file at path. A missing file is
// not an error: the returned Config then holds only defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("seed", 192382)
	v.SetDefault("rows", 9)
	v.SetDefault("cols", 9)
	v.SetDefault("start", [2]int{1, 1})
	v.SetDefault("goal", [2]int{7, 7})
	v.SetDefault("batchSize", 16)
	v.SetDefault("learningRate", 1.0)
	v.SetDefault("maxSteps", 60)
	v.SetDefault("updates", 2000)
	v.SetDefault("evalEvery", 50)
	v.SetDefault("nEval", 50)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			return Config{}, fmt.Errorf("load: could not read config: %v", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("load: could not unmarshal config: %v",
			err)
	}
	return cfg, nil
}

// Save writes the resolved configuration to path as YAML, recording
// the exact parameters of a run alongside its metrics
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("save: could not marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save: could not write config: %v", err)
	}
	return nil
}
