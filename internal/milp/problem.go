// Package milp describes small mixed-integer linear programs in the shape
// the external solver consumes: variables with bounds and integrality,
// a linear objective, and linear upper-bound constraints.
package milp

import "math"

// Tolerance is the slack allowed when evaluating solved values, which
// come back from the solver as floating point.
const Tolerance = 1e-6

// Variable is one decision variable of a problem.
type Variable struct {
	Name    string
	Lower   float64
	Upper   float64
	Integer bool
}

// Constraint is a linear inequality: sum(Coeffs[i] * x[i]) <= Upper.
// Coeffs holds one coefficient per problem variable, in variable order.
type Constraint struct {
	Name   string
	Coeffs []float64
	Upper  float64
}

// Activity returns the left-hand side of the constraint at the given point.
func (c Constraint) Activity(values []float64) float64 {
	activity := 0.0
	for i, coeff := range c.Coeffs {
		activity += coeff * values[i]
	}
	return activity
}

// Satisfied reports whether the constraint holds at the given point.
func (c Constraint) Satisfied(values []float64) bool {
	return c.Activity(values) <= c.Upper+Tolerance
}

// Problem is one complete model: built once, solved once, never mutated.
type Problem struct {
	Variables   []Variable
	Objective   []float64
	Maximize    bool
	Constraints []Constraint
}

// ObjectiveValue evaluates the objective at the given point.
func (p Problem) ObjectiveValue(values []float64) float64 {
	value := 0.0
	for i, coeff := range p.Objective {
		value += coeff * values[i]
	}
	return value
}

// Feasible reports whether the given point respects every variable
// bound, integrality requirement, and constraint.
func (p Problem) Feasible(values []float64) bool {
	if len(values) != len(p.Variables) {
		return false
	}
	for i, v := range p.Variables {
		if values[i] < v.Lower-Tolerance || values[i] > v.Upper+Tolerance {
			return false
		}
		if v.Integer && math.Abs(values[i]-math.Round(values[i])) > Tolerance {
			return false
		}
	}
	for _, c := range p.Constraints {
		if !c.Satisfied(values) {
			return false
		}
	}
	return true
}

// Status is the outcome reported by a solver for one problem.
type Status int

const (
	// StatusUnknown indicates the solver terminated without a
	// conclusive answer.
	StatusUnknown Status = iota
	// StatusOptimal indicates an optimal feasible assignment was found.
	StatusOptimal
	// StatusInfeasible indicates no assignment satisfies the constraints.
	StatusInfeasible
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Solution carries the solver outcome. Values and Objective are only
// meaningful when Status is StatusOptimal.
type Solution struct {
	Status    Status
	Values    []float64
	Objective float64
}
