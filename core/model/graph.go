package model

import (
	"fmt"
	"sort"
)

// NodeID identifies a node of the road network. Nodes are numbered
// contiguously from 0.
type NodeID int

// Road type encodings used by the map input. NoRoad marks an absent edge
// in the adjacency matrix and never reaches a built Graph.
const (
	NoRoad       = -1
	RoadAirspace = 0
	RoadTypeMax  = 5
)

// Edge is a directed road between two nodes. Weights holds one base
// weight per time step; airspace edges carry no weights because their
// traversal is always free.
type Edge struct {
	From     NodeID
	To       NodeID
	RoadType int
	Weights  []float64
}

// Graph is the static road network. It is immutable after construction
// and safe for concurrent reads.
type Graph struct {
	nodes   int
	horizon int
	out     [][]Edge
	index   map[[2]NodeID]int
}

// NewGraph builds a Graph from an adjacency matrix of road types and
// per-road-type weight schedules, the encoding produced by the map
// loader. roadTypes[i][j] is NoRoad for an absent edge, RoadAirspace for
// a drone corridor or a ground type 1..5. Every ground type present in
// the matrix must come with a weight schedule of exactly horizon entries.
func NewGraph(nodes, horizon int, roadTypes [][]int, weights map[int][]float64) (*Graph, error) {
	if nodes <= 0 {
		return nil, &ValidationError{Field: "nodes", Reason: fmt.Sprintf("must be positive, got %d", nodes)}
	}
	if horizon <= 0 {
		return nil, &ValidationError{Field: "horizon", Reason: fmt.Sprintf("must be positive, got %d", horizon)}
	}
	if len(roadTypes) != nodes {
		return nil, &ValidationError{Field: "roadTypes", Reason: fmt.Sprintf("expected %d rows, got %d", nodes, len(roadTypes))}
	}
	g := &Graph{
		nodes:   nodes,
		horizon: horizon,
		out:     make([][]Edge, nodes),
		index:   make(map[[2]NodeID]int),
	}
	for i, row := range roadTypes {
		if len(row) != nodes {
			return nil, &ValidationError{Field: "roadTypes", Reason: fmt.Sprintf("row %d: expected %d columns, got %d", i, nodes, len(row))}
		}
		for j, rt := range row {
			if rt == NoRoad {
				continue
			}
			if rt < RoadAirspace || rt > RoadTypeMax {
				return nil, &ValidationError{Field: "roadTypes", Reason: fmt.Sprintf("edge %d->%d: unknown road type %d", i, j, rt)}
			}
			e := Edge{From: NodeID(i), To: NodeID(j), RoadType: rt}
			if rt != RoadAirspace {
				sched, ok := weights[rt]
				if !ok {
					return nil, &ValidationError{Field: "weights", Reason: fmt.Sprintf("road type %d: missing weight schedule", rt)}
				}
				if len(sched) != horizon {
					return nil, &ValidationError{Field: "weights", Reason: fmt.Sprintf("road type %d: expected %d weights, got %d", rt, horizon, len(sched))}
				}
				for t, w := range sched {
					if w < 0 {
						return nil, &ValidationError{Field: "weights", Reason: fmt.Sprintf("road type %d: negative weight at step %d", rt, t)}
					}
				}
				e.Weights = sched
			}
			g.out[i] = append(g.out[i], e)
		}
	}
	// Deterministic neighbor order regardless of input map iteration.
	for i := range g.out {
		sort.Slice(g.out[i], func(a, b int) bool { return g.out[i][a].To < g.out[i][b].To })
		for k, e := range g.out[i] {
			g.index[[2]NodeID{e.From, e.To}] = k
		}
	}
	return g, nil
}

// Nodes returns the node count.
func (g *Graph) Nodes() int { return g.nodes }

// Horizon returns the number of time steps T.
func (g *Graph) Horizon() int { return g.horizon }

// Neighbors returns the outgoing edges of node, ordered by target ID.
// The returned slice must not be modified.
func (g *Graph) Neighbors(node NodeID) []Edge {
	if node < 0 || int(node) >= g.nodes {
		return nil
	}
	return g.out[node]
}

// Edge returns the edge from one node to another, if any.
func (g *Graph) Edge(from, to NodeID) (Edge, bool) {
	k, ok := g.index[[2]NodeID{from, to}]
	if !ok {
		return Edge{}, false
	}
	return g.out[from][k], true
}
