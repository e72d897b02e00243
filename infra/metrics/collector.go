package metrics

import (
	"github.com/kilianp07/routeplan/core/plan"
	"github.com/kilianp07/routeplan/internal/eventbus"
)

// Collect drains planner events from the bus into the sink until the bus
// is closed, then signals on the returned channel. Run it in its own
// goroutine alongside an evaluation.
func Collect(bus *eventbus.Bus[plan.Event], sink *PromSink) <-chan struct{} {
	done := make(chan struct{})
	ch := bus.Subscribe()
	go func() {
		defer close(done)
		for e := range ch {
			sink.Record(e)
		}
	}()
	return done
}
