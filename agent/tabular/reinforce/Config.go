package reinforce

import "fmt"

// Config implements the configurable options of the REINFORCE update
type Config struct {
	// BatchSize is the number of trajectories sampled per update
	BatchSize int

	// LearningRate scales the gradient step taken by each update
	LearningRate float64

	// MaxSteps is the step budget of each sampled trajectory
	MaxSteps int
}

// Validate checks that the configuration describes a runnable update
func (c Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("validate: batch size must be positive, got %d",
			c.BatchSize)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("validate: learning rate must be positive, got %v",
			c.LearningRate)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("validate: max steps must be positive, got %d",
			c.MaxSteps)
	}
	return nil
}
