// Package trackers implements tracking and saving of scalar metric
// series generated while an experiment runs
package trackers

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Tracker tracks a scalar metric over the course of an experiment and
// saves the accumulated series to disk when the experiment finishes
type Tracker interface {
	Track(value float64)
	Save() error
}

// LoadData loads a metric series saved by a Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open data file: %v", err)
	}
	defer file.Close()

	var data []float64
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("loadData: could not decode data: %v", err)
	}
	return data, nil
}
