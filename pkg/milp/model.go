// Package milp defines a backend-neutral mixed-integer linear program and
// the solver abstraction over it. Model builders construct a Model, a Solver
// implementation turns it into a Solution; neither side depends on a
// particular optimization backend.
package milp

// Direction is the optimization sense of a model
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// VarKind restricts the domain of a decision variable
type VarKind int

const (
	ContinuousVar VarKind = iota
	IntegerVar
	BinaryVar
)

// String method for VarKind
func (k VarKind) String() string {
	switch k {
	case ContinuousVar:
		return "Continuous"
	case IntegerVar:
		return "Integer"
	case BinaryVar:
		return "Binary"
	default:
		return "Unknown"
	}
}

// Variable is one decision variable with inclusive bounds. Binary variables
// are bounded to {0,1} regardless of the declared bounds.
type Variable struct {
	Name       string
	Kind       VarKind
	LowerBound float64
	UpperBound float64
}

// Term is one coefficient of a linear expression, referencing a variable by
// its index in the model
type Term struct {
	Var  int
	Coef float64
}

// Relation is the comparison operator of a constraint
type Relation int

const (
	LessEq Relation = iota
	GreaterEq
	Equal
)

// Constraint is one linear constraint: Terms Relation RHS
type Constraint struct {
	Name     string
	Terms    []Term
	Relation Relation
	RHS      float64
}

// Model is a complete MILP instance. Variable order is significant: solvers
// must report values in the same order variables were added, and builders
// that need reproducible solver behavior must add variables
// deterministically.
type Model struct {
	Name        string
	Direction   Direction
	Variables   []Variable
	Objective   []Term
	Constraints []Constraint
}

// NewModel creates an empty model with the given name and direction
func NewModel(name string, direction Direction) *Model {
	return &Model{Name: name, Direction: direction}
}

// AddVariable appends a variable and returns its index
func (m *Model) AddVariable(v Variable) int {
	m.Variables = append(m.Variables, v)
	return len(m.Variables) - 1
}

// AddConstraint appends a constraint to the model
func (m *Model) AddConstraint(c Constraint) {
	m.Constraints = append(m.Constraints, c)
}

// SetObjective replaces the objective expression
func (m *Model) SetObjective(terms []Term) {
	m.Objective = terms
}
