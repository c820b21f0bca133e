package solver

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/guttosm/production-planner/internal/milp"
)

// HiGHS solves problems with the HiGHS mixed-integer solver. It is a
// pass-through adapter: every numerical decision happens inside the
// external solver.
type HiGHS struct {
	timeLimit time.Duration
}

// NewHiGHS creates a HiGHS adapter. A non-positive time limit leaves
// the solver's own default in place.
func NewHiGHS(timeLimit time.Duration) *HiGHS {
	return &HiGHS{timeLimit: timeLimit}
}

// Solve submits the problem to HiGHS and blocks until the solver
// returns. HiGHS has no native cancellation, so the context is only
// consulted before submission; the configured time limit bounds the
// solve itself.
func (h *HiGHS) Solve(ctx context.Context, problem milp.Problem) (milp.Solution, error) {
	if err := ctx.Err(); err != nil {
		return milp.Solution{}, err
	}

	s, err := highs.NewSolver()
	if err != nil {
		return milp.Solution{}, fmt.Errorf("create solver: %w", err)
	}
	defer s.Close()

	if err := s.SetBoolOption("output_flag", false); err != nil {
		return milp.Solution{}, fmt.Errorf("silence solver output: %w", err)
	}
	if h.timeLimit > 0 {
		if err := s.SetFloatOption("time_limit", h.timeLimit.Seconds()); err != nil {
			return milp.Solution{}, fmt.Errorf("set time limit: %w", err)
		}
	}

	lower := make([]float64, len(problem.Variables))
	upper := make([]float64, len(problem.Variables))
	varTypes := make([]highs.VariableType, len(problem.Variables))
	for i, v := range problem.Variables {
		lower[i] = v.Lower
		upper[i] = v.Upper
		if v.Integer {
			varTypes[i] = highs.Integer
		}
	}

	if err := s.AddVars(lower, upper); err != nil {
		return milp.Solution{}, fmt.Errorf("add variables: %w", err)
	}
	if err := s.SetColCosts(problem.Objective); err != nil {
		return milp.Solution{}, fmt.Errorf("set objective: %w", err)
	}
	if err := s.SetIntegrality(varTypes); err != nil {
		return milp.Solution{}, fmt.Errorf("set integrality: %w", err)
	}
	if err := s.SetMaximize(problem.Maximize); err != nil {
		return milp.Solution{}, fmt.Errorf("set objective sense: %w", err)
	}

	for _, c := range problem.Constraints {
		index := make([]int, 0, len(c.Coeffs))
		value := make([]float64, 0, len(c.Coeffs))
		for i, coeff := range c.Coeffs {
			if coeff != 0 {
				index = append(index, i)
				value = append(value, coeff)
			}
		}
		if err := s.AddRow(math.Inf(-1), c.Upper, index, value); err != nil {
			return milp.Solution{}, fmt.Errorf("add constraint %q: %w", c.Name, err)
		}
	}

	result, err := s.Run()
	if err != nil {
		return milp.Solution{}, fmt.Errorf("run solver: %w", err)
	}

	solution := milp.Solution{Status: statusFrom(result.Status)}
	if solution.Status != milp.StatusOptimal {
		return solution, nil
	}

	values := make([]float64, len(result.ColValues))
	copy(values, result.ColValues)
	// MIP solutions come back as floats; snap integer columns.
	for i, v := range problem.Variables {
		if v.Integer {
			values[i] = math.Round(values[i])
		}
	}
	solution.Values = values
	solution.Objective = result.Objective
	return solution, nil
}

func statusFrom(status highs.ModelStatus) milp.Status {
	switch {
	case status.IsOptimal():
		return milp.StatusOptimal
	case status == highs.ModelStatusInfeasible:
		return milp.StatusInfeasible
	default:
		return milp.StatusUnknown
	}
}
