package plan

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kilianp07/routeplan/core/model"
	"github.com/kilianp07/routeplan/internal/eventbus"
)

func calm(horizon int) *model.Weather {
	z := make([]float64, horizon)
	w, _ := model.NewWeather(horizon, z, z, z, z)
	return w
}

func chainGraph(t *testing.T, nodes, horizon int) *model.Graph {
	t.Helper()
	roads := make([][]int, nodes)
	for i := range roads {
		roads[i] = make([]int, nodes)
		for j := range roads[i] {
			roads[i][j] = model.NoRoad
		}
		if i+1 < nodes {
			roads[i][i+1] = 1
		}
	}
	sched := make([]float64, horizon)
	for i := range sched {
		sched[i] = 1
	}
	g, err := model.NewGraph(nodes, horizon, roads, map[int][]float64{1: sched})
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	return g
}

func TestEvaluateEndToEnd(t *testing.T) {
	g := chainGraph(t, 3, 4)
	objs := []model.Objective{{Node: 2, Release: 1, Deadline: 3, Points: 10}}

	res, err := Evaluate(g, calm(4), objs, 0, 0, WithFleet(1, 0))
	require.NoError(t, err)

	require.Equal(t, []model.NodeID{0, 1, 2, 2}, res.Solution.Paths["truck1"])
	require.InDelta(t, 8.0, res.Score, 1e-9)
	require.Equal(t, 1, res.Fulfilled)
	require.Equal(t, 0, res.Expired)
	require.InDelta(t, 2.0, res.TravelCost, 1e-9)
}

func TestEvaluateTruckWinsBenefitTie(t *testing.T) {
	// Ground-only chain: truck and drone candidates cost the same, so
	// the earlier fleet slot (truck1) takes the objective.
	g := chainGraph(t, 3, 4)
	objs := []model.Objective{{Node: 2, Release: 1, Deadline: 3, Points: 10}}

	res, err := Evaluate(g, calm(4), objs, 0, 0)
	require.NoError(t, err)
	require.Equal(t, []model.NodeID{0, 1, 2, 2}, res.Solution.Paths["truck1"])
	for _, id := range []string{"truck2", "truck3", "drone1", "drone2"} {
		require.Equal(t, []model.NodeID{0, 0, 0, 0}, res.Solution.Paths[id], id)
	}
}

func TestEvaluateWaitsForRelease(t *testing.T) {
	// The vehicle reaches the node on step 1 but the window opens at 3;
	// it holds there and banks the full points.
	g := chainGraph(t, 2, 5)
	objs := []model.Objective{{Node: 1, Release: 3, Deadline: 4, Points: 10}}

	res, err := Evaluate(g, calm(5), objs, 0, 2, WithFleet(1, 0))
	require.NoError(t, err)
	require.Equal(t, []model.NodeID{0, 1, 1, 1, 1}, res.Solution.Paths["truck1"])
	require.Equal(t, 1, res.Fulfilled)
	// Full points, no lateness: 10 - 1 travel.
	require.InDelta(t, 9.0, res.Score, 1e-9)
}

func TestEvaluateSkipsUnprofitable(t *testing.T) {
	// Travel cost exceeds the points on offer; the objective expires and
	// the fleet idles.
	g := chainGraph(t, 3, 4)
	objs := []model.Objective{{Node: 2, Release: 0, Deadline: 3, Points: 1}}

	res, err := Evaluate(g, calm(4), objs, 0, 0, WithFleet(1, 0))
	require.NoError(t, err)
	require.Equal(t, []model.NodeID{0, 0, 0, 0}, res.Solution.Paths["truck1"])
	require.Equal(t, 0, res.Fulfilled)
	require.Equal(t, 1, res.Expired)
	require.InDelta(t, 0.0, res.Score, 1e-9)
	require.Equal(t, model.Expired, res.Objectives[0].State)
}

func TestEvaluateGreedyChaining(t *testing.T) {
	// One truck serves two consecutive objectives across rounds: the
	// engine re-evaluates after each commit, so the second delivery is
	// planned from the updated cursor.
	g := chainGraph(t, 3, 6)
	objs := []model.Objective{
		{Node: 1, Release: 0, Deadline: 5, Points: 10},
		{Node: 2, Release: 0, Deadline: 5, Points: 10},
	}

	res, err := Evaluate(g, calm(6), objs, 0, 0, WithFleet(1, 0))
	require.NoError(t, err)
	require.Equal(t, []model.NodeID{0, 1, 2, 2, 2, 2}, res.Solution.Paths["truck1"])
	require.Equal(t, 2, res.Fulfilled)
	require.Equal(t, 2, res.Rounds)
	require.InDelta(t, 18.0, res.Score, 1e-9)
}

func TestEvaluatePublishesEvents(t *testing.T) {
	g := chainGraph(t, 3, 6)
	objs := []model.Objective{
		{Node: 1, Release: 0, Deadline: 5, Points: 10},
		{Node: 2, Release: 0, Deadline: 5, Points: 10},
	}
	bus := eventbus.New[Event]()
	ch := bus.Subscribe()

	_, err := Evaluate(g, calm(6), objs, 0, 0, WithFleet(1, 0), WithBus(bus))
	require.NoError(t, err)
	bus.Close()

	var started, committed, completed int
	for e := range ch {
		switch e.(type) {
		case RunStarted:
			started++
		case ObjectiveCommitted:
			committed++
		case RunCompleted:
			completed++
		}
	}
	require.Equal(t, 1, started)
	require.Equal(t, 2, committed)
	require.Equal(t, 1, completed)
}

func TestEvaluateDeterministic(t *testing.T) {
	g := chainGraph(t, 5, 8)
	objs := []model.Objective{
		{Node: 4, Release: 2, Deadline: 7, Points: 30},
		{Node: 2, Release: 0, Deadline: 4, Points: 12},
		{Node: 1, Release: 1, Deadline: 3, Points: 6},
	}

	first, err := Evaluate(g, calm(8), objs, 0, 1)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Evaluate(g, calm(8), objs, 0, 1)
		require.NoError(t, err)
		if !reflect.DeepEqual(first.Solution, again.Solution) {
			t.Fatalf("run %d diverged:\n%v\nvs\n%v", i, first.Solution, again.Solution)
		}
		require.Equal(t, first.Score, again.Score)
		require.Equal(t, first.Rounds, again.Rounds)
	}
}

func TestEvaluateDoesNotMutateInputs(t *testing.T) {
	g := chainGraph(t, 3, 4)
	objs := []model.Objective{{Node: 2, Release: 1, Deadline: 3, Points: 10}}

	_, err := Evaluate(g, calm(4), objs, 0, 0)
	require.NoError(t, err)
	require.Equal(t, model.Unassigned, objs[0].State, "caller's objectives must stay untouched")
}

func TestEvaluateValidation(t *testing.T) {
	g := chainGraph(t, 3, 4)

	_, err := Evaluate(g, calm(5), nil, 0, 0)
	require.Error(t, err, "weather horizon mismatch")

	_, err = Evaluate(g, calm(4), nil, 9, 0)
	require.Error(t, err, "start node out of range")

	_, err = Evaluate(g, calm(4), nil, 0, -1)
	require.Error(t, err, "negative penalty")

	_, err = Evaluate(g, calm(4), []model.Objective{{Node: 2, Release: 3, Deadline: 1, Points: 1}}, 0, 0)
	require.Error(t, err, "inverted window")

	_, err = Evaluate(g, calm(4), nil, 0, 0, WithFleet(0, 0))
	require.Error(t, err, "empty fleet")
}

func TestContributionFormula(t *testing.T) {
	e := &engine{penalty: 3}
	obj := &model.Objective{Node: 0, Release: 2, Deadline: 6, Points: 10}

	require.Equal(t, 0.0, e.contribution(obj, 1), "before release")
	require.Equal(t, 10.0, e.contribution(obj, 2), "at release")
	require.Equal(t, 4.0, e.contribution(obj, 4), "two steps late")
	// Penalty beyond the points is not clipped.
	require.Equal(t, -2.0, e.contribution(obj, 6), "at deadline, negative")
	require.Equal(t, 0.0, e.contribution(obj, 7), "past deadline")
}
