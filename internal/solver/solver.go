// Package solver integrates external mixed-integer linear programming
// solvers behind a single-operation interface.
package solver

import (
	"context"

	"github.com/guttosm/production-planner/internal/milp"
)

// Solver is the injected external solving capability. An error means
// the solver itself failed; an infeasible model is reported through the
// solution status. Implementations never retry.
type Solver interface {
	Solve(ctx context.Context, problem milp.Problem) (milp.Solution, error)
}
