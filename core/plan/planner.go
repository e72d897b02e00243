// Package plan is the routing brain: it ranks delivery objectives,
// greedily pairs them with fleet vehicles using time-dependent A*
// searches, and scores the resulting solution. The whole computation is
// deterministic and side-effect free given identical inputs.
package plan

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kilianp07/routeplan/core/cost"
	"github.com/kilianp07/routeplan/core/logger"
	"github.com/kilianp07/routeplan/core/model"
	"github.com/kilianp07/routeplan/core/route"
	"github.com/kilianp07/routeplan/internal/eventbus"
)

// Default fleet composition of the surrounding system.
const (
	DefaultTrucks = 3
	DefaultDrones = 2
)

// Result is the outcome of one planning run.
type Result struct {
	RunID      string
	Solution   model.Solution
	Score      float64
	Points     float64
	TravelCost float64
	Fulfilled  int
	Expired    int
	Rounds     int
	Objectives []*model.Objective
	Fleet      []*model.Vehicle
}

type engine struct {
	graph   *model.Graph
	costs   *cost.Model
	finder  *route.Finder
	fleet   []*model.Vehicle
	ranked  []*model.Objective
	penalty float64
	start   model.NodeID
	log     logger.Logger
	bus     *eventbus.Bus[Event]
	runID   string
	rounds  int
}

func (e *engine) publish(ev Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}

// Option configures an evaluation.
type Option func(*engine)

// WithLogger routes planner logs to the given logger.
func WithLogger(l logger.Logger) Option {
	return func(e *engine) { e.log = l }
}

// WithBus publishes run events on the given bus.
func WithBus(b *eventbus.Bus[Event]) Option {
	return func(e *engine) { e.bus = b }
}

// WithFleet overrides the default fleet composition.
func WithFleet(trucks, drones int) Option {
	return func(e *engine) { e.fleet = model.NewFleet(trucks, drones, e.start) }
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

// Evaluate plans routes for the fleet over the graph's horizon and
// returns the scored solution. Inputs are treated as immutable; the
// passed objectives are copied before planning.
func Evaluate(g *model.Graph, w *model.Weather, objectives []model.Objective, start model.NodeID, latePenalty float64, opts ...Option) (*Result, error) {
	if w.Horizon() != g.Horizon() {
		return nil, &model.ValidationError{Field: "weather", Reason: fmt.Sprintf("horizon %d does not match graph horizon %d", w.Horizon(), g.Horizon())}
	}
	if start < 0 || int(start) >= g.Nodes() {
		return nil, &model.ValidationError{Field: "start_node", Reason: fmt.Sprintf("%d outside [0,%d)", start, g.Nodes())}
	}
	if latePenalty < 0 {
		return nil, &model.ValidationError{Field: "late_penalty", Reason: fmt.Sprintf("%v is negative", latePenalty)}
	}
	objs := make([]*model.Objective, len(objectives))
	for i, o := range objectives {
		o := o
		if err := o.Validate(g.Nodes(), g.Horizon()); err != nil {
			return nil, err
		}
		o.State = model.Unassigned
		objs[i] = &o
	}

	costs := cost.New(w)
	e := &engine{
		graph:   g,
		costs:   costs,
		finder:  route.NewFinder(g, costs),
		fleet:   model.NewFleet(DefaultTrucks, DefaultDrones, start),
		ranked:  nil,
		penalty: latePenalty,
		start:   start,
		log:     nopLogger{},
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if len(e.fleet) == 0 {
		return nil, &model.ValidationError{Field: "fleet", Reason: "at least one vehicle required"}
	}
	e.ranked = Rank(objs)

	e.publish(RunStarted{RunID: e.runID, Objectives: len(objs), Vehicles: len(e.fleet), Horizon: g.Horizon()})
	e.log.Infof("planning run %s: %d objectives, %d vehicles, horizon %d", e.runID, len(objs), len(e.fleet), g.Horizon())

	if err := e.run(); err != nil {
		return nil, err
	}

	for _, o := range objs {
		if o.State == model.Unassigned {
			o.State = model.Expired
		}
	}
	Extend(e.fleet, g.Horizon())

	score, points, travel, err := Score(g, costs, e.fleet)
	if err != nil {
		return nil, err
	}
	res := &Result{
		RunID:      e.runID,
		Solution:   model.NewSolution(g.Horizon(), start, e.fleet),
		Score:      score,
		Points:     points,
		TravelCost: travel,
		Rounds:     e.rounds,
		Objectives: objs,
		Fleet:      e.fleet,
	}
	for _, o := range objs {
		switch o.State {
		case model.Fulfilled:
			res.Fulfilled++
		case model.Expired:
			res.Expired++
		}
	}

	e.publish(RunCompleted{RunID: e.runID, Score: score, Fulfilled: res.Fulfilled, Expired: res.Expired, TravelCost: travel, Rounds: e.rounds})
	e.log.Infof("planning run %s done: score %.2f, %d/%d fulfilled in %d rounds", e.runID, score, res.Fulfilled, len(objs), e.rounds)
	return res, nil
}
