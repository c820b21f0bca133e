//go:build integration

package solver

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/production-planner/internal/milp"
)

// TestHiGHS_Solve_Optimal solves a small integer program against the
// real HiGHS library. Requires the HiGHS shared library to be installed.
func TestHiGHS_Solve_Optimal(t *testing.T) {
	problem := milp.Problem{
		Variables: []milp.Variable{
			{Name: "x", Lower: 0, Upper: math.Inf(1), Integer: true},
			{Name: "y", Lower: 0, Upper: math.Inf(1), Integer: true},
		},
		Objective: []float64{1, 2},
		Maximize:  true,
		Constraints: []milp.Constraint{
			{Name: "cap", Coeffs: []float64{1, 1}, Upper: 3},
		},
	}

	solution, err := NewHiGHS(10 * time.Second).Solve(context.Background(), problem)
	require.NoError(t, err)

	assert.Equal(t, milp.StatusOptimal, solution.Status)
	assert.Equal(t, []float64{0, 3}, solution.Values)
	assert.InDelta(t, 6.0, solution.Objective, milp.Tolerance)
	assert.True(t, problem.Feasible(solution.Values))
}

// TestHiGHS_Solve_Infeasible verifies that an unsatisfiable model comes
// back as a status, not an error.
func TestHiGHS_Solve_Infeasible(t *testing.T) {
	problem := milp.Problem{
		Variables: []milp.Variable{
			{Name: "x", Lower: 0, Upper: math.Inf(1), Integer: true},
		},
		Objective: []float64{1},
		Maximize:  true,
		Constraints: []milp.Constraint{
			{Name: "impossible", Coeffs: []float64{1}, Upper: -1},
		},
	}

	solution, err := NewHiGHS(10 * time.Second).Solve(context.Background(), problem)
	require.NoError(t, err)

	assert.Equal(t, milp.StatusInfeasible, solution.Status)
	assert.Nil(t, solution.Values)
}

// TestHiGHS_Solve_CancelledContext verifies the adapter refuses work on
// a dead context instead of submitting it.
func TestHiGHS_Solve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHiGHS(time.Second).Solve(ctx, milp.Problem{})
	assert.ErrorIs(t, err, context.Canceled)
}
