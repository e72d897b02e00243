package model

import "fmt"

// ObjectiveState tracks the lifecycle of a delivery objective. An
// objective is assigned at most once; it ends as Fulfilled only when the
// serving vehicle arrives inside the [Release, Deadline] window.
type ObjectiveState int

const (
	Unassigned ObjectiveState = iota
	Assigned
	Fulfilled
	Expired
)

func (s ObjectiveState) String() string {
	switch s {
	case Unassigned:
		return "unassigned"
	case Assigned:
		return "assigned"
	case Fulfilled:
		return "fulfilled"
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Objective is a delivery request at a node with a time window and a
// point value.
type Objective struct {
	Node     NodeID
	Release  int
	Deadline int
	Points   float64
	State    ObjectiveState
}

// Validate checks the objective against the network size and horizon.
func (o Objective) Validate(nodes, horizon int) error {
	if o.Node < 0 || int(o.Node) >= nodes {
		return &ValidationError{Field: "objective.node", Reason: fmt.Sprintf("%d outside [0,%d)", o.Node, nodes)}
	}
	if o.Release < 0 {
		return &ValidationError{Field: "objective.release", Reason: fmt.Sprintf("%d is negative", o.Release)}
	}
	if o.Deadline < o.Release {
		return &ValidationError{Field: "objective.deadline", Reason: fmt.Sprintf("%d before release %d", o.Deadline, o.Release)}
	}
	if o.Deadline >= horizon {
		return &ValidationError{Field: "objective.deadline", Reason: fmt.Sprintf("%d outside horizon %d", o.Deadline, horizon)}
	}
	if o.Points < 0 {
		return &ValidationError{Field: "objective.points", Reason: fmt.Sprintf("%v is negative", o.Points)}
	}
	return nil
}

// Window returns the width of the delivery window in steps. Used by the
// prioritizer as the urgency denominator, floored at one.
func (o Objective) Window() int {
	w := o.Deadline - o.Release
	if w < 1 {
		return 1
	}
	return w
}
