package plan

import (
	"testing"

	"github.com/kilianp07/routeplan/core/model"
)

func TestRankByUrgencyRatio(t *testing.T) {
	objs := []*model.Objective{
		{Node: 0, Release: 0, Deadline: 10, Points: 10}, // ratio 1
		{Node: 1, Release: 0, Deadline: 2, Points: 10},  // ratio 5
		{Node: 2, Release: 0, Deadline: 4, Points: 10},  // ratio 2.5
	}
	ranked := Rank(objs)
	want := []model.NodeID{1, 2, 0}
	for i, o := range ranked {
		if o.Node != want[i] {
			t.Fatalf("rank %d: node %d, want %d", i, o.Node, want[i])
		}
	}
}

func TestRankTieBreaks(t *testing.T) {
	// Equal ratios: earlier deadline wins, then lower node ID.
	objs := []*model.Objective{
		{Node: 4, Release: 2, Deadline: 4, Points: 10},
		{Node: 3, Release: 0, Deadline: 2, Points: 10},
		{Node: 1, Release: 2, Deadline: 4, Points: 10},
	}
	ranked := Rank(objs)
	want := []model.NodeID{3, 1, 4}
	for i, o := range ranked {
		if o.Node != want[i] {
			t.Fatalf("rank %d: node %d, want %d", i, o.Node, want[i])
		}
	}
}

func TestRankZeroWidthWindow(t *testing.T) {
	// deadline == release must not divide by zero; the window floors at 1.
	objs := []*model.Objective{
		{Node: 0, Release: 3, Deadline: 3, Points: 2},
		{Node: 1, Release: 0, Deadline: 1, Points: 1},
	}
	ranked := Rank(objs)
	if ranked[0].Node != 0 {
		t.Fatalf("expected point-dense zero-width window first, got node %d", ranked[0].Node)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	objs := []*model.Objective{
		{Node: 0, Release: 0, Deadline: 10, Points: 1},
		{Node: 1, Release: 0, Deadline: 1, Points: 9},
	}
	Rank(objs)
	if objs[0].Node != 0 || objs[1].Node != 1 {
		t.Fatal("input slice reordered")
	}
}
