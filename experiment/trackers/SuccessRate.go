package trackers

import (
	"encoding/gob"
	"fmt"
	"os"
)

// SuccessRate tracks a series of success-probability estimates, one
// per evaluation checkpoint, and saves them to disk as a gob-encoded
// []float64
type SuccessRate struct {
	filename string
	rates    []float64
}

// NewSuccessRate creates and returns a new *SuccessRate Tracker which
// saves its data to filename
func NewSuccessRate(filename string) *SuccessRate {
	return &SuccessRate{filename: filename}
}

// Track caches one success-probability estimate
func (s *SuccessRate) Track(value float64) {
	s.rates = append(s.rates, value)
}

// Data returns the estimates tracked so far
func (s *SuccessRate) Data() []float64 {
	return s.rates
}

// Save saves the tracked estimates to disk
func (s *SuccessRate) Save() error {
	file, err := os.Create(s.filename)
	if err != nil {
		return fmt.Errorf("save: could not create save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err := en.Encode(s.rates); err != nil {
		return fmt.Errorf("save: could not encode success rates: %v", err)
	}
	return nil
}
