package model

import "fmt"

// Weather holds the global sensor readings, one value per time step.
// Readings are not tied to a node or an edge: the same sample applies to
// the whole network at a given step.
type Weather struct {
	Rainfall   []float64
	Wind       []float64
	Visibility []float64
	EarthShock []float64
}

// NewWeather validates that every series spans exactly horizon steps.
func NewWeather(horizon int, rainfall, wind, visibility, earthShock []float64) (*Weather, error) {
	series := map[string][]float64{
		"rainfall":    rainfall,
		"wind":        wind,
		"visibility":  visibility,
		"earth_shock": earthShock,
	}
	for name, s := range series {
		if len(s) != horizon {
			return nil, &ValidationError{Field: name, Reason: fmt.Sprintf("expected %d samples, got %d", horizon, len(s))}
		}
	}
	return &Weather{
		Rainfall:   rainfall,
		Wind:       wind,
		Visibility: visibility,
		EarthShock: earthShock,
	}, nil
}

// Horizon returns the number of time steps covered by the samples.
func (w *Weather) Horizon() int { return len(w.Rainfall) }
