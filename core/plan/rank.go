package plan

import (
	"sort"

	"github.com/kilianp07/routeplan/core/model"
)

// Rank orders objectives by descending urgency ratio points/window,
// breaking ties by earlier deadline and then lower node ID. The ordering
// is total, so the greedy assignment downstream is reproducible.
func Rank(objectives []*model.Objective) []*model.Objective {
	ranked := make([]*model.Objective, len(objectives))
	copy(ranked, objectives)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		ra := a.Points / float64(a.Window())
		rb := b.Points / float64(b.Window())
		if ra != rb {
			return ra > rb
		}
		if a.Deadline != b.Deadline {
			return a.Deadline < b.Deadline
		}
		return a.Node < b.Node
	})
	return ranked
}
