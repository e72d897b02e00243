package route

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/kilianp07/routeplan/core/model"
)

// heuristic is a static, weather-independent lower bound on the cost of
// reaching a target node. Every edge is priced at its cheapest possible
// unblocked cost over the whole horizon (zero for airspace); since
// weather only multiplies costs up, any shortest path in this relaxed
// graph under-estimates the true time-dependent cost for every vehicle
// class.
type heuristic struct {
	paths path.AllShortest
	ok    bool
}

func newHeuristic(g *model.Graph) *heuristic {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < g.Nodes(); i++ {
		wg.AddNode(simple.Node(i))
	}
	for i := 0; i < g.Nodes(); i++ {
		for _, e := range g.Neighbors(model.NodeID(i)) {
			if e.From == e.To {
				continue
			}
			w := 0.0
			if e.RoadType != model.RoadAirspace {
				w = minWeight(e.Weights) * float64(e.RoadType)
			}
			wg.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(e.From),
				T: simple.Node(e.To),
				W: w,
			})
		}
	}
	all, ok := path.FloydWarshall(wg)
	return &heuristic{paths: all, ok: ok}
}

// estimate returns the static lower bound from one node to another, or
// +Inf when no path exists at all.
func (h *heuristic) estimate(from, to model.NodeID) float64 {
	if !h.ok {
		return 0
	}
	if from == to {
		return 0
	}
	return h.paths.Weight(int64(from), int64(to))
}

func minWeight(ws []float64) float64 {
	m := math.Inf(1)
	for _, w := range ws {
		if w < m {
			m = w
		}
	}
	if math.IsInf(m, 1) {
		return 0
	}
	return m
}
