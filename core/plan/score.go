package plan

import (
	"fmt"

	"github.com/kilianp07/routeplan/core/cost"
	"github.com/kilianp07/routeplan/core/model"
)

// Extend pads every vehicle path with waits at its last node until it
// spans exactly the horizon.
func Extend(fleet []*model.Vehicle, horizon int) {
	for _, v := range fleet {
		for len(v.Path) < horizon {
			v.Path = append(v.Path, v.Path[len(v.Path)-1])
		}
	}
}

// TravelCost re-derives the travel cost actually incurred by a final
// path: the cost of every traversed edge at its departure step, waits
// free. It is the authoritative cost side of the score and doubles as a
// consistency check on the engine's running totals.
func TravelCost(g *model.Graph, costs *cost.Model, v *model.Vehicle) (float64, error) {
	total := 0.0
	for t := 0; t+1 < len(v.Path); t++ {
		from, to := v.Path[t], v.Path[t+1]
		if from == to {
			continue
		}
		e, ok := g.Edge(from, to)
		if !ok {
			return 0, fmt.Errorf("plan: %s path uses missing edge %d->%d at step %d", v.ID, from, to, t)
		}
		c, err := costs.Cost(e, v.Class, t)
		if err != nil {
			return 0, err
		}
		total += c
	}
	return total, nil
}

// Score computes the final tally: delivered points minus travel costs
// across the whole fleet.
func Score(g *model.Graph, costs *cost.Model, fleet []*model.Vehicle) (score, points, travel float64, err error) {
	for _, v := range fleet {
		c, cerr := TravelCost(g, costs, v)
		if cerr != nil {
			return 0, 0, 0, cerr
		}
		travel += c
		points += v.Points
	}
	return points - travel, points, travel, nil
}
