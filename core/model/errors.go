package model

import "fmt"

// ValidationError reports malformed input data: dimension mismatches,
// out-of-range identifiers, inconsistent schedule lengths. The planner
// refuses to run on invalid input and produces no partial solution.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
