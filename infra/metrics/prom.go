// Package metrics records planning run events in Prometheus collectors
// and optionally exposes them over HTTP while a run executes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/routeplan/core/plan"
)

// PromSink records planner events in Prometheus metrics.
type PromSink struct {
	commits    *prometheus.CounterVec
	fulfilled  prometheus.Counter
	expired    prometheus.Counter
	score      prometheus.Gauge
	travelCost prometheus.Gauge
	expansions prometheus.Histogram
}

// register adds the collector to the registerer, reusing an existing
// instance when it is already registered.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(T), nil
		}
		var zero T
		return zero, err
	}
	return c, nil
}

// NewPromSink registers the planner metrics on the provided registerer.
// If reg is nil, the default registerer is used. Already registered
// collectors are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "routeplan_commits_total",
			Help: "Total number of objective commits",
		}, []string{"vehicle_id", "class"}),
		fulfilled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "routeplan_objectives_fulfilled_total",
			Help: "Objectives fulfilled across runs",
		}),
		expired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "routeplan_objectives_expired_total",
			Help: "Objectives expired across runs",
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "routeplan_last_score",
			Help: "Score of the most recent run",
		}),
		travelCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "routeplan_last_travel_cost",
			Help: "Travel cost of the most recent run",
		}),
		expansions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "routeplan_search_expansions",
			Help:    "States expanded per committed path search",
			Buckets: prometheus.ExponentialBuckets(16, 4, 8),
		}),
	}
	var err error
	if s.commits, err = register(reg, s.commits); err != nil {
		return nil, err
	}
	if s.fulfilled, err = register(reg, s.fulfilled); err != nil {
		return nil, err
	}
	if s.expired, err = register(reg, s.expired); err != nil {
		return nil, err
	}
	if s.score, err = register(reg, s.score); err != nil {
		return nil, err
	}
	if s.travelCost, err = register(reg, s.travelCost); err != nil {
		return nil, err
	}
	if s.expansions, err = register(reg, s.expansions); err != nil {
		return nil, err
	}
	return s, nil
}

// Record updates the collectors for a single planner event.
func (s *PromSink) Record(e plan.Event) {
	switch ev := e.(type) {
	case plan.ObjectiveCommitted:
		s.commits.WithLabelValues(ev.VehicleID, ev.Class.String()).Inc()
		s.expansions.Observe(float64(ev.Expansions))
	case plan.RunCompleted:
		s.fulfilled.Add(float64(ev.Fulfilled))
		s.expired.Add(float64(ev.Expired))
		s.score.Set(ev.Score)
		s.travelCost.Set(ev.TravelCost)
	}
}
