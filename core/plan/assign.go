package plan

import (
	"errors"

	"github.com/kilianp07/routeplan/core/model"
	"github.com/kilianp07/routeplan/core/route"
)

// candidate is one evaluated (objective, vehicle, path) pairing within a
// greedy round.
type candidate struct {
	obj     *model.Objective
	objRank int
	veh     *model.Vehicle
	vehIdx  int
	path    route.Path
	arrival int
	points  float64
	benefit float64
}

// better ranks candidates within a round: greatest net benefit first,
// then the higher-ranked objective, then the earlier fleet slot. Fleet
// order (truck1..truckN, drone1..droneM) matches the original system's
// vehicle iteration order.
func better(a, b *candidate) bool {
	if a.benefit != b.benefit {
		return a.benefit > b.benefit
	}
	if a.objRank != b.objRank {
		return a.objRank < b.objRank
	}
	return a.vehIdx < b.vehIdx
}

// run executes greedy rounds until no candidate with positive net
// benefit remains. Each round re-evaluates every still-unassigned
// objective against every vehicle cursor and commits exactly the best
// pairing, so an objective skipped early is reconsidered once cursors
// move.
func (e *engine) run() error {
	round := 0
	for {
		best, err := e.bestCandidate()
		if err != nil {
			return err
		}
		if best == nil {
			e.rounds = round
			return nil
		}
		round++
		e.commit(round, best)
	}
}

func (e *engine) bestCandidate() (*candidate, error) {
	var best *candidate
	for rank, obj := range e.ranked {
		if obj.State != model.Unassigned {
			continue
		}
		for idx, v := range e.fleet {
			if v.Step > obj.Deadline {
				continue
			}
			p, err := e.finder.Find(v.Class, v.Node, v.Step, obj.Node, obj.Deadline)
			if errors.Is(err, route.ErrUnreachable) {
				continue
			}
			if err != nil {
				return nil, err
			}
			arrival := p.Arrival()
			if arrival < obj.Release {
				// Hold at the delivery node until the window opens.
				for t := arrival + 1; t <= obj.Release; t++ {
					p.Steps = append(p.Steps, route.Step{Node: obj.Node, Time: t})
				}
				arrival = obj.Release
			}
			points := e.contribution(obj, arrival)
			benefit := points - p.Cost
			if benefit <= 0 {
				continue
			}
			c := &candidate{
				obj: obj, objRank: rank,
				veh: v, vehIdx: idx,
				path: p, arrival: arrival,
				points: points, benefit: benefit,
			}
			if best == nil || better(c, best) {
				best = c
			}
		}
	}
	return best, nil
}

// contribution is the scored value of fulfilling the objective at the
// given arrival step: full points at release, minus the late penalty per
// step after it. Not clipped at zero.
func (e *engine) contribution(obj *model.Objective, arrival int) float64 {
	if arrival < obj.Release || arrival > obj.Deadline {
		return 0
	}
	return obj.Points - e.penalty*float64(arrival-obj.Release)
}

// commit extends the chosen vehicle along the candidate path and settles
// the objective's final state.
func (e *engine) commit(round int, c *candidate) {
	v := c.veh
	for _, s := range c.path.Steps[1:] {
		v.Path = append(v.Path, s.Node)
	}
	v.Node = c.obj.Node
	v.Step = c.arrival
	v.TravelCost += c.path.Cost
	v.Points += c.points
	v.Served++

	c.obj.State = model.Assigned
	if c.arrival >= c.obj.Release && c.arrival <= c.obj.Deadline {
		c.obj.State = model.Fulfilled
	} else {
		c.obj.State = model.Expired
	}

	e.log.Debugw("objective committed", map[string]any{
		"run_id":  e.runID,
		"round":   round,
		"vehicle": v.ID,
		"node":    int(c.obj.Node),
		"arrival": c.arrival,
		"benefit": c.benefit,
	})
	e.publish(ObjectiveCommitted{
		RunID:      e.runID,
		Round:      round,
		VehicleID:  v.ID,
		Class:      v.Class,
		Node:       c.obj.Node,
		Arrival:    c.arrival,
		TravelCost: c.path.Cost,
		Points:     c.points,
		Benefit:    c.benefit,
		Expansions: c.path.Expansions,
	})
}
