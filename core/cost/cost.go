// Package cost encodes the traversal physics of the road network: base
// weights, weather-driven blocking and the final per-step edge costs.
package cost

import (
	"errors"
	"fmt"

	"github.com/kilianp07/routeplan/core/model"
)

// ErrOutOfHorizon reports a cost lookup at or beyond the last time step.
// No vehicle may depart at step T-1 or later, so hitting it means broken
// time bookkeeping in the caller; the computation must abort rather than
// clamp.
var ErrOutOfHorizon = errors.New("cost: time step outside planning horizon")

// Weather thresholds for the perfect-storm blocking rules. Both factors
// of a rule must exceed (or undercut) the limit for the edge to count as
// blocked; a blocked edge stays traversable at five times the cost.
const (
	truckShockLimit = 10.0
	truckRainLimit  = 30.0
	droneWindLimit  = 60.0
	droneVisFloor   = 6.0

	blockedFactor = 5.0
)

// Model computes per-class, per-step traversal costs from the static
// graph weights and the global weather samples. It is pure and safe for
// concurrent use.
type Model struct {
	weather *model.Weather
	horizon int
}

// New binds the cost model to a weather sample set.
func New(w *model.Weather) *Model {
	return &Model{weather: w, horizon: w.Horizon()}
}

// Blocked reports whether the edge is weather-blocked for the class when
// departing at step t. Airspace edges are never blocked.
func (m *Model) Blocked(e model.Edge, class model.VehicleClass, t int) (bool, error) {
	if t < 0 || t >= m.horizon {
		return false, fmt.Errorf("%w: step %d, horizon %d", ErrOutOfHorizon, t, m.horizon)
	}
	if e.RoadType == model.RoadAirspace {
		return false, nil
	}
	w := e.Weights[t]
	switch class {
	case model.ClassTruck:
		return w*m.weather.EarthShock[t] > truckShockLimit && w*m.weather.Rainfall[t] > truckRainLimit, nil
	case model.ClassDrone:
		return w*m.weather.Wind[t] > droneWindLimit && w*m.weather.Visibility[t] < droneVisFloor, nil
	default:
		return false, fmt.Errorf("cost: unknown vehicle class %v", class)
	}
}

// Cost returns the cost of traversing the edge when departing at step t:
// weight times road type, times five when blocked. Airspace is free for
// any class and any weather.
func (m *Model) Cost(e model.Edge, class model.VehicleClass, t int) (float64, error) {
	if t < 0 || t >= m.horizon {
		return 0, fmt.Errorf("%w: step %d, horizon %d", ErrOutOfHorizon, t, m.horizon)
	}
	if e.RoadType == model.RoadAirspace {
		return 0, nil
	}
	blocked, err := m.Blocked(e, class, t)
	if err != nil {
		return 0, err
	}
	c := e.Weights[t] * float64(e.RoadType)
	if blocked {
		c *= blockedFactor
	}
	return c, nil
}
