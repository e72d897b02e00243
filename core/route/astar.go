// Package route implements time-dependent A* over (node, time step)
// states. Time advances by exactly one step per transition; a vehicle
// may wait in place for free or traverse an eligible edge at the cost
// model's departure-time price.
package route

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/kilianp07/routeplan/core/model"
)

// ErrUnreachable is the negative search outcome: the target cannot be
// reached within the remaining horizon. It is expected in sparse or
// heavily blocked networks and is not a fatal error.
var ErrUnreachable = errors.New("route: target unreachable within horizon")

// Step is one (node, time) state of a path.
type Step struct {
	Node model.NodeID
	Time int
}

// Path is a search result: the ordered states from the departure cursor
// to the target, its cumulative cost and the number of expanded states.
type Path struct {
	Steps      []Step
	Cost       float64
	Expansions int
}

// Arrival returns the time step of the final state.
func (p Path) Arrival() int {
	return p.Steps[len(p.Steps)-1].Time
}

// CostModel prices an edge traversal for a vehicle class at a departure
// step. Implemented by cost.Model.
type CostModel interface {
	Cost(e model.Edge, class model.VehicleClass, t int) (float64, error)
}

// Finder runs searches over a fixed graph and cost model. The static
// heuristic is computed once per graph; Find itself is pure, so a Finder
// may be shared by concurrent searches.
type Finder struct {
	graph *model.Graph
	costs CostModel
	h     *heuristic
}

// NewFinder builds a Finder and precomputes the static lower bounds.
func NewFinder(g *model.Graph, costs CostModel) *Finder {
	return &Finder{graph: g, costs: costs, h: newHeuristic(g)}
}

type state struct {
	node model.NodeID
	time int
}

type searchNode struct {
	state  state
	g      float64
	f      float64
	parent *searchNode
	seq    int
	index  int
}

// searchHeap orders by f, then arrival time, then node ID, then
// insertion order. The full ordering makes equal-cost searches
// reproducible across runs.
type searchHeap []*searchNode

func (h searchHeap) Len() int { return len(h) }
func (h searchHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].state.time != h[j].state.time {
		return h[i].state.time < h[j].state.time
	}
	if h[i].state.node != h[j].state.node {
		return h[i].state.node < h[j].state.node
	}
	return h[i].seq < h[j].seq
}
func (h searchHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *searchHeap) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *searchHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// Find searches for the cheapest path from (start, depart) to target
// arriving no later than step latest. latest is clamped to the last
// horizon step by the caller; states never leave [depart, latest], so
// the search is bounded by nodes x steps expansions.
func (f *Finder) Find(class model.VehicleClass, start model.NodeID, depart int, target model.NodeID, latest int) (Path, error) {
	horizon := f.graph.Horizon()
	if start < 0 || int(start) >= f.graph.Nodes() || target < 0 || int(target) >= f.graph.Nodes() {
		return Path{}, fmt.Errorf("route: node outside network: start %d target %d", start, target)
	}
	if depart < 0 || depart >= horizon {
		return Path{}, fmt.Errorf("route: departure step %d outside horizon %d", depart, horizon)
	}
	if latest >= horizon {
		latest = horizon - 1
	}
	if depart > latest {
		return Path{}, ErrUnreachable
	}

	open := &searchHeap{}
	heap.Init(open)
	seq := 0
	push := func(n *searchNode) {
		n.seq = seq
		seq++
		heap.Push(open, n)
	}

	h0 := f.h.estimate(start, target)
	if math.IsInf(h0, 1) {
		return Path{}, ErrUnreachable
	}
	push(&searchNode{state: state{node: start, time: depart}, g: 0, f: h0})

	best := make(map[state]float64)
	expansions := 0

	for open.Len() > 0 {
		cur := heap.Pop(open).(*searchNode)

		if cur.state.node == target {
			return reconstruct(cur, expansions), nil
		}
		if g, ok := best[cur.state]; ok && g <= cur.g {
			continue
		}
		best[cur.state] = cur.g
		expansions++

		if cur.state.time >= latest {
			continue
		}
		next := cur.state.time + 1

		// Wait in place, free.
		push(&searchNode{
			state:  state{node: cur.state.node, time: next},
			g:      cur.g,
			f:      cur.g + f.h.estimate(cur.state.node, target),
			parent: cur,
		})

		for _, e := range f.graph.Neighbors(cur.state.node) {
			if !class.CanUse(e.RoadType) {
				continue
			}
			c, err := f.costs.Cost(e, class, cur.state.time)
			if err != nil {
				return Path{}, err
			}
			hn := f.h.estimate(e.To, target)
			if math.IsInf(hn, 1) {
				continue
			}
			push(&searchNode{
				state:  state{node: e.To, time: next},
				g:      cur.g + c,
				f:      cur.g + c + hn,
				parent: cur,
			})
		}
	}
	return Path{}, ErrUnreachable
}

func reconstruct(n *searchNode, expansions int) Path {
	var count int
	for p := n; p != nil; p = p.parent {
		count++
	}
	steps := make([]Step, count)
	for p := n; p != nil; p = p.parent {
		count--
		steps[count] = Step{Node: p.state.node, Time: p.state.time}
	}
	return Path{Steps: steps, Cost: n.g, Expansions: expansions}
}
