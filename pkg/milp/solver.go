package milp

import "context"

// Status is the outcome of a solve attempt
type Status int

const (
	StatusNotSolved Status = iota
	StatusOptimal
	StatusInfeasible
	StatusUnbounded
	StatusUndefined
)

// String method for Status
func (s Status) String() string {
	switch s {
	case StatusNotSolved:
		return "NotSolved"
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusUndefined:
		return "Undefined"
	default:
		return "Unknown"
	}
}

// Solution is the result of one solve. Values holds one entry per model
// variable in declaration order and is only meaningful when Status is
// StatusOptimal.
type Solution struct {
	Status    Status
	Objective float64
	Values    []float64
}

// Solver turns a model into a solution. Implementations must treat the
// model as read-only, perform exactly one solve per call, and check the
// context before starting; mid-solve cancellation is not supported.
type Solver interface {
	Solve(ctx context.Context, model *Model) (*Solution, error)
}
