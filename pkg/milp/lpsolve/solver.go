// Package lpsolve adapts the lp_solve library (via the golp bindings) to the
// milp.Solver interface.
package lpsolve

import (
	"context"
	"fmt"

	"github.com/draffensperger/golp"

	"github.com/tkoide/grocer/pkg/milp"
)

// Solver solves MILP models with lp_solve's simplex + branch-and-bound
type Solver struct{}

// NewSolver creates an lp_solve-backed solver
func NewSolver() *Solver {
	return &Solver{}
}

// Verify interface compliance
var _ milp.Solver = (*Solver)(nil)

// Solve builds a fresh lp_solve problem from the model and solves it once.
// The context is only consulted before the solve starts; a cancelled context
// aborts the request without touching the backend.
func (s *Solver) Solve(ctx context.Context, model *milp.Model) (*milp.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lp := golp.NewLP(0, len(model.Variables))
	lp.SetVerboseLevel(golp.IMPORTANT)
	if model.Direction == milp.Maximize {
		lp.SetMaximize()
	}

	for i, v := range model.Variables {
		lp.SetColName(i, sanitizeName(v.Name))
		switch v.Kind {
		case milp.IntegerVar, milp.BinaryVar:
			lp.SetInt(i, true)
		}
	}

	// golp exposes no per-column bound setters, so bounds become rows.
	// lp_solve's default column domain is [0, +inf).
	for i, v := range model.Variables {
		upper := v.UpperBound
		if v.Kind == milp.BinaryVar {
			upper = 1
		}
		if err := s.addBoundRows(lp, i, v, upper); err != nil {
			return nil, err
		}
	}

	for _, c := range model.Constraints {
		entries := make([]golp.Entry, 0, len(c.Terms))
		for _, t := range c.Terms {
			if t.Coef == 0 {
				continue
			}
			entries = append(entries, golp.Entry{Col: t.Var, Val: t.Coef})
		}
		if err := lp.AddConstraintSparse(entries, relation(c.Relation), c.RHS); err != nil {
			return nil, fmt.Errorf("failed to add constraint %q: %w", c.Name, err)
		}
	}

	objective := make([]float64, len(model.Variables))
	for _, t := range model.Objective {
		objective[t.Var] += t.Coef
	}
	lp.SetObjFn(objective)

	solutionType := lp.Solve()
	solution := &milp.Solution{Status: status(solutionType)}
	if solution.Status == milp.StatusOptimal {
		solution.Objective = lp.Objective()
		values := lp.Variables()
		solution.Values = make([]float64, len(values))
		copy(solution.Values, values)
	}

	return solution, nil
}

// addBoundRows encodes the variable bounds as explicit constraint rows
func (s *Solver) addBoundRows(lp *golp.LP, col int, v milp.Variable, upper float64) error {
	entry := []golp.Entry{{Col: col, Val: 1}}
	if err := lp.AddConstraintSparse(entry, golp.LE, upper); err != nil {
		return fmt.Errorf("failed to bound variable %q above: %w", v.Name, err)
	}
	if v.LowerBound > 0 {
		if err := lp.AddConstraintSparse(entry, golp.GE, v.LowerBound); err != nil {
			return fmt.Errorf("failed to bound variable %q below: %w", v.Name, err)
		}
	}
	return nil
}

// relation maps a model relation onto a golp constraint type
func relation(r milp.Relation) golp.ConstraintType {
	switch r {
	case milp.LessEq:
		return golp.LE
	case milp.GreaterEq:
		return golp.GE
	default:
		return golp.EQ
	}
}

// status maps an lp_solve solution type onto a solver status
func status(t golp.SolutionType) milp.Status {
	switch t {
	case golp.OPTIMAL:
		return milp.StatusOptimal
	case golp.INFEASIBLE, golp.NOFEASFOUND:
		return milp.StatusInfeasible
	case golp.UNBOUNDED:
		return milp.StatusUnbounded
	case golp.SUBOPTIMAL, golp.FEASFOUND:
		return milp.StatusNotSolved
	default:
		return milp.StatusUndefined
	}
}

// sanitizeName makes a variable name acceptable to lp_solve: spaces become
// underscores, commas and parentheses are removed
func sanitizeName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch r {
		case ' ':
			out = append(out, '_')
		case ',', '(', ')':
			// dropped
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
