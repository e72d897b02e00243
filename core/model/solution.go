package model

// Solution is the final immutable output of a planning run: one path of
// exactly Horizon node IDs per vehicle, each starting at the common
// start node.
type Solution struct {
	Horizon int
	Start   NodeID
	Paths   map[string][]NodeID
}

// NewSolution snapshots the fleet paths. Callers are expected to have
// extended every path to the horizon first.
func NewSolution(horizon int, start NodeID, fleet []*Vehicle) Solution {
	paths := make(map[string][]NodeID, len(fleet))
	for _, v := range fleet {
		p := make([]NodeID, len(v.Path))
		copy(p, v.Path)
		paths[v.ID] = p
	}
	return Solution{Horizon: horizon, Start: start, Paths: paths}
}
