package plan

import "github.com/kilianp07/routeplan/core/model"

// Event is published on the planner event bus while a run progresses.
// Consumers (metrics sink, log tail) receive RunStarted once, one
// ObjectiveCommitted per greedy commit, and RunCompleted once.
type Event interface{ isEvent() }

// RunStarted opens a planning run.
type RunStarted struct {
	RunID      string
	Objectives int
	Vehicles   int
	Horizon    int
}

// ObjectiveCommitted records a single greedy commit: the chosen vehicle,
// the objective node and window, and the accepted candidate economics.
type ObjectiveCommitted struct {
	RunID      string
	Round      int
	VehicleID  string
	Class      model.VehicleClass
	Node       model.NodeID
	Arrival    int
	TravelCost float64
	Points     float64
	Benefit    float64
	Expansions int
}

// RunCompleted closes a planning run with its final tally.
type RunCompleted struct {
	RunID      string
	Score      float64
	Fulfilled  int
	Expired    int
	TravelCost float64
	Rounds     int
}

func (RunStarted) isEvent()         {}
func (ObjectiveCommitted) isEvent() {}
func (RunCompleted) isEvent()       {}
