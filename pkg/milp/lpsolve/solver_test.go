package lpsolve

import (
	"context"
	"math"
	"testing"

	"github.com/tkoide/grocer/pkg/milp"
)

// smallModel minimizes 3x + 2y subject to x + y >= 4 with integer variables
// bounded [0, 10]; the optimum is x=0, y=4 at objective 8.
func smallModel() *milp.Model {
	m := milp.NewModel("small", milp.Minimize)
	x := m.AddVariable(milp.Variable{Name: "x", Kind: milp.IntegerVar, UpperBound: 10})
	y := m.AddVariable(milp.Variable{Name: "y", Kind: milp.IntegerVar, UpperBound: 10})
	m.SetObjective([]milp.Term{{Var: x, Coef: 3}, {Var: y, Coef: 2}})
	m.AddConstraint(milp.Constraint{
		Name:     "demand",
		Terms:    []milp.Term{{Var: x, Coef: 1}, {Var: y, Coef: 1}},
		Relation: milp.GreaterEq,
		RHS:      4,
	})
	return m
}

func TestSolver_Optimal(t *testing.T) {
	solution, err := NewSolver().Solve(context.Background(), smallModel())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if solution.Status != milp.StatusOptimal {
		t.Fatalf("status = %v, want Optimal", solution.Status)
	}
	if math.Abs(solution.Objective-8) > 1e-6 {
		t.Errorf("objective = %v, want 8", solution.Objective)
	}
	if len(solution.Values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(solution.Values))
	}
	if math.Abs(solution.Values[0]) > 1e-6 || math.Abs(solution.Values[1]-4) > 1e-6 {
		t.Errorf("values = %v, want [0 4]", solution.Values)
	}
}

func TestSolver_Infeasible(t *testing.T) {
	m := milp.NewModel("infeasible", milp.Minimize)
	x := m.AddVariable(milp.Variable{Name: "x", Kind: milp.IntegerVar, UpperBound: 3})
	m.SetObjective([]milp.Term{{Var: x, Coef: 1}})
	// Cap of 3 cannot reach the floor of 5
	m.AddConstraint(milp.Constraint{
		Name:     "floor",
		Terms:    []milp.Term{{Var: x, Coef: 1}},
		Relation: milp.GreaterEq,
		RHS:      5,
	})

	solution, err := NewSolver().Solve(context.Background(), m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if solution.Status != milp.StatusInfeasible {
		t.Errorf("status = %v, want Infeasible", solution.Status)
	}
}

func TestSolver_BinaryVariable(t *testing.T) {
	// Maximize a binary variable: the cap of 1 must hold even though the
	// declared upper bound is larger
	m := milp.NewModel("binary", milp.Maximize)
	b := m.AddVariable(milp.Variable{Name: "b", Kind: milp.BinaryVar, UpperBound: 99})
	m.SetObjective([]milp.Term{{Var: b, Coef: 1}})

	solution, err := NewSolver().Solve(context.Background(), m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if solution.Status != milp.StatusOptimal {
		t.Fatalf("status = %v, want Optimal", solution.Status)
	}
	if math.Abs(solution.Values[0]-1) > 1e-6 {
		t.Errorf("binary value = %v, want 1", solution.Values[0])
	}
}

func TestSolver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSolver().Solve(ctx, smallModel())
	if err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Chicken Breast 3lb", "Chicken_Breast_3lb"},
		{"Beans, Black (canned)", "Beans_Black_canned"},
		{"Has_Fruits", "Has_Fruits"},
	}

	for _, tt := range tests {
		if got := sanitizeName(tt.in); got != tt.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
