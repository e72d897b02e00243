// Package output serializes planning solutions and validates them
// against the road network.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kilianp07/routeplan/core/model"
)

// Write stores the solution as a JSON object mapping vehicle IDs to node
// paths, the format consumed by the surrounding system.
func Write(path string, sol model.Solution) error {
	out := make(map[string][]int, len(sol.Paths))
	for id, p := range sol.Paths {
		nodes := make([]int, len(p))
		for i, n := range p {
			nodes[i] = int(n)
		}
		out[id] = nodes
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Read loads a solution file back into memory.
func Read(path string) (map[string][]model.NodeID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	paths := make(map[string][]model.NodeID, len(raw))
	for id, p := range raw {
		nodes := make([]model.NodeID, len(p))
		for i, n := range p {
			nodes[i] = model.NodeID(n)
		}
		paths[id] = nodes
	}
	return paths, nil
}

// Check validates vehicle paths against the network: exact horizon
// length, every hop over an existing edge, and no truck on an airspace
// road. Waiting in place is always valid. The returned slice is empty
// for a valid solution.
func Check(paths map[string][]model.NodeID, g *model.Graph) []string {
	var errs []string
	ids := make([]string, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := paths[id]
		class := model.ClassTruck
		if strings.HasPrefix(id, "drone") {
			class = model.ClassDrone
		}
		if len(p) != g.Horizon() {
			errs = append(errs, fmt.Sprintf("%s: path length %d != %d", id, len(p), g.Horizon()))
		}
		for t := 0; t+1 < len(p); t++ {
			from, to := p[t], p[t+1]
			if from == to {
				continue
			}
			e, ok := g.Edge(from, to)
			if !ok {
				errs = append(errs, fmt.Sprintf("%s at t=%d: no road from %d to %d", id, t, from, to))
				continue
			}
			if !class.CanUse(e.RoadType) {
				errs = append(errs, fmt.Sprintf("%s at t=%d: %s cannot use road type %d", id, t, class, e.RoadType))
			}
		}
	}
	return errs
}
