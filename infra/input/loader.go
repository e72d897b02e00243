// Package input loads and validates the three planner input documents:
// the road map, the sensor series and the objective list. All shape
// validation happens here, once; the planning core never re-validates.
package input

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/kilianp07/routeplan/core/model"
)

// MapFile mirrors the public map document. The adjacency matrix encodes
// -1 for no road, 0 for airspace and 1..5 for ground roads; weights are
// keyed by ground road type as decimal strings.
type MapFile struct {
	N           int                  `json:"N"`
	T           int                  `json:"T"`
	Map         [][]int              `json:"map"`
	RoadWeights map[string][]float64 `json:"road_weights"`
}

// SensorFile mirrors the sensor document: four global series, one sample
// per time step.
type SensorFile struct {
	Rainfall   []float64 `json:"rainfall"`
	Wind       []float64 `json:"wind"`
	Visibility []float64 `json:"visibility"`
	EarthShock []float64 `json:"earth_shock"`
}

// ObjectiveDef mirrors one entry of the objectives document.
type ObjectiveDef struct {
	Node     int     `json:"node"`
	Release  int     `json:"release"`
	Deadline int     `json:"deadline"`
	Points   float64 `json:"points"`
}

// ObjectivesFile mirrors the objectives document.
type ObjectivesFile struct {
	StartNode          int            `json:"start_node"`
	LatePenaltyPerStep float64        `json:"late_penalty_per_step"`
	Objectives         []ObjectiveDef `json:"objectives"`
}

// LoadGraph reads and validates the map document.
func LoadGraph(path string) (*model.Graph, error) {
	var mf MapFile
	if err := readJSON(path, &mf); err != nil {
		return nil, err
	}
	weights := make(map[int][]float64, len(mf.RoadWeights))
	for key, sched := range mf.RoadWeights {
		rt, err := strconv.Atoi(key)
		if err != nil {
			return nil, &model.ValidationError{Field: "road_weights", Reason: fmt.Sprintf("non-numeric road type key %q", key)}
		}
		weights[rt] = sched
	}
	g, err := model.NewGraph(mf.N, mf.T, mf.Map, weights)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// LoadWeather reads and validates the sensor document against the
// horizon.
func LoadWeather(path string, horizon int) (*model.Weather, error) {
	var sf SensorFile
	if err := readJSON(path, &sf); err != nil {
		return nil, err
	}
	w, err := model.NewWeather(horizon, sf.Rainfall, sf.Wind, sf.Visibility, sf.EarthShock)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// LoadObjectives reads the objectives document and validates every entry
// against the network size and horizon.
func LoadObjectives(path string, nodes, horizon int) (start model.NodeID, penalty float64, objs []model.Objective, err error) {
	var of ObjectivesFile
	if err = readJSON(path, &of); err != nil {
		return 0, 0, nil, err
	}
	if of.StartNode < 0 || of.StartNode >= nodes {
		return 0, 0, nil, &model.ValidationError{Field: "start_node", Reason: fmt.Sprintf("%d outside [0,%d)", of.StartNode, nodes)}
	}
	if of.LatePenaltyPerStep < 0 {
		return 0, 0, nil, &model.ValidationError{Field: "late_penalty_per_step", Reason: fmt.Sprintf("%v is negative", of.LatePenaltyPerStep)}
	}
	objs = make([]model.Objective, len(of.Objectives))
	for i, d := range of.Objectives {
		o := model.Objective{Node: model.NodeID(d.Node), Release: d.Release, Deadline: d.Deadline, Points: d.Points}
		if err = o.Validate(nodes, horizon); err != nil {
			return 0, 0, nil, fmt.Errorf("%s: objective %d: %w", path, i, err)
		}
		objs[i] = o
	}
	return model.NodeID(of.StartNode), of.LatePenaltyPerStep, objs, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
