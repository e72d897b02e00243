package scenarios

import (
	"math"
	"testing"

	"github.com/kilianp07/routeplan/core/model"
	"github.com/kilianp07/routeplan/core/plan"
)

// RunScenario executes the scenario through the full pipeline and checks
// every stated expectation.
func RunScenario(t *testing.T, sc *Scenario) {
	t.Helper()
	g, w, objs, err := sc.Build()
	if err != nil {
		t.Fatalf("build scenario: %v", err)
	}
	res, err := plan.Evaluate(g, w, objs, model.NodeID(sc.StartNode), sc.LatePenalty,
		plan.WithFleet(sc.Fleet.Trucks, sc.Fleet.Drones))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	for id, path := range res.Solution.Paths {
		if len(path) != sc.Horizon {
			t.Errorf("%s: path length %d, want %d", id, len(path), sc.Horizon)
		}
		if path[0] != model.NodeID(sc.StartNode) {
			t.Errorf("%s: starts at %d, want %d", id, path[0], sc.StartNode)
		}
	}
	if sc.Expected.Score != nil && math.Abs(res.Score-*sc.Expected.Score) > 1e-9 {
		t.Errorf("score %.4f, want %.4f", res.Score, *sc.Expected.Score)
	}
	if sc.Expected.Fulfilled != nil && res.Fulfilled != *sc.Expected.Fulfilled {
		t.Errorf("fulfilled %d, want %d", res.Fulfilled, *sc.Expected.Fulfilled)
	}
	for id, want := range sc.Expected.Paths {
		got, ok := res.Solution.Paths[id]
		if !ok {
			t.Errorf("missing vehicle %s in solution", id)
			continue
		}
		for i := range want {
			if i >= len(got) || got[i] != model.NodeID(want[i]) {
				t.Errorf("%s: path %v, want %v", id, got, want)
				break
			}
		}
	}
}
