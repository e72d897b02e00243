// Package scenarios runs end-to-end planning cases described in YAML
// files against the full evaluation pipeline.
package scenarios

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/routeplan/core/model"
)

type WeatherDef struct {
	Rainfall   []float64 `yaml:"rainfall"`
	Wind       []float64 `yaml:"wind"`
	Visibility []float64 `yaml:"visibility"`
	EarthShock []float64 `yaml:"earth_shock"`
}

type FleetDef struct {
	Trucks int `yaml:"trucks"`
	Drones int `yaml:"drones"`
}

type ObjectiveDef struct {
	Node     int     `yaml:"node"`
	Release  int     `yaml:"release"`
	Deadline int     `yaml:"deadline"`
	Points   float64 `yaml:"points"`
}

type Expected struct {
	Score     *float64         `yaml:"score"`
	Fulfilled *int             `yaml:"fulfilled"`
	Paths     map[string][]int `yaml:"paths"`
}

type Scenario struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description,omitempty"`
	Nodes       int                  `yaml:"nodes"`
	Horizon     int                  `yaml:"horizon"`
	Roads       [][]int              `yaml:"roads"`
	RoadWeights map[string][]float64 `yaml:"road_weights"`
	Weather     WeatherDef           `yaml:"weather"`
	StartNode   int                  `yaml:"start_node"`
	LatePenalty float64              `yaml:"late_penalty"`
	Fleet       FleetDef             `yaml:"fleet"`
	Objectives  []ObjectiveDef       `yaml:"objectives"`
	Expected    Expected             `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Build turns the scenario definition into validated planner inputs.
// Omitted weather series default to calm (all zero).
func (s *Scenario) Build() (*model.Graph, *model.Weather, []model.Objective, error) {
	weights := make(map[int][]float64, len(s.RoadWeights))
	for key, sched := range s.RoadWeights {
		rt, err := strconv.Atoi(key)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("scenario %s: road type key %q", s.Name, key)
		}
		weights[rt] = sched
	}
	g, err := model.NewGraph(s.Nodes, s.Horizon, s.Roads, weights)
	if err != nil {
		return nil, nil, nil, err
	}
	w, err := model.NewWeather(s.Horizon,
		orCalm(s.Weather.Rainfall, s.Horizon),
		orCalm(s.Weather.Wind, s.Horizon),
		orCalm(s.Weather.Visibility, s.Horizon),
		orCalm(s.Weather.EarthShock, s.Horizon),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	objs := make([]model.Objective, len(s.Objectives))
	for i, d := range s.Objectives {
		objs[i] = model.Objective{Node: model.NodeID(d.Node), Release: d.Release, Deadline: d.Deadline, Points: d.Points}
	}
	return g, w, objs, nil
}

func orCalm(series []float64, horizon int) []float64 {
	if series == nil {
		return make([]float64, horizon)
	}
	return series
}
