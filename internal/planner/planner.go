// Package planner contains the business logic of the production planner:
// assembling the four-variable production model and deriving a plan from
// the solver's answer.
package planner

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/production-planner/config"
	"github.com/guttosm/production-planner/internal/domain/model"
	"github.com/guttosm/production-planner/internal/metrics"
	"github.com/guttosm/production-planner/internal/milp"
	"github.com/guttosm/production-planner/internal/solver"
)

// Planner defines the interface for planning operations.
type Planner interface {
	Plan(ctx context.Context, table model.TimeTable) (model.PlanResult, error)
}

// Service implements Planner. It assembles the model once, hands it to
// the injected solver once, and never re-solves within a run.
type Service struct {
	constants config.PlanConfig
	solver    solver.Solver
}

// NewService creates a planning service over the given constants and
// solving capability.
func NewService(constants config.PlanConfig, s solver.Solver) *Service {
	return &Service{constants: constants, solver: s}
}

// BuildProblem assembles the production model for one processing-time
// table: four non-negative integer quantities (Product X and Y at Site
// A, then Site B), a maximized profit objective, one capacity
// constraint per process and site, and the shared cloth supply
// constraint.
func (s *Service) BuildProblem(table model.TimeTable) milp.Problem {
	variables := make([]milp.Variable, 0, 4)
	objective := make([]float64, 0, 4)
	for _, site := range model.AllSites {
		for _, prod := range model.AllProducts {
			variables = append(variables, milp.Variable{
				Name:    fmt.Sprintf("%s@%s", prod, site),
				Lower:   0,
				Upper:   math.Inf(1),
				Integer: true,
			})
			objective = append(objective, float64(s.price(prod)))
		}
	}

	constraints := make([]milp.Constraint, 0, 5)
	for _, proc := range model.AllProcesses {
		for _, site := range model.AllSites {
			coeffs := make([]float64, 0, 4)
			for _, varSite := range model.AllSites {
				for _, prod := range model.AllProducts {
					if varSite == site {
						coeffs = append(coeffs, float64(table.At(proc, site, prod)))
					} else {
						coeffs = append(coeffs, 0)
					}
				}
			}
			constraints = append(constraints, milp.Constraint{
				Name:   fmt.Sprintf("%s@%s", proc, site),
				Coeffs: coeffs,
				Upper:  float64(s.capacity(proc, site)),
			})
		}
	}

	perUnit := float64(s.constants.ClothPerUnit)
	constraints = append(constraints, milp.Constraint{
		Name:   "cloth",
		Coeffs: []float64{perUnit, perUnit, perUnit, perUnit},
		Upper:  float64(s.constants.ClothSupply),
	})

	return milp.Problem{
		Variables:   variables,
		Objective:   objective,
		Maximize:    true,
		Constraints: constraints,
	}
}

// Plan builds the model for the table, solves it, and derives the plan
// result. Infeasibility is a result, not an error; errors mean the
// solver itself failed.
func (s *Service) Plan(ctx context.Context, table model.TimeTable) (model.PlanResult, error) {
	problem := s.BuildProblem(table)

	log.Debug().
		Int("variables", len(problem.Variables)).
		Int("constraints", len(problem.Constraints)).
		Msg("Production model assembled")

	start := time.Now()
	solution, err := s.solver.Solve(ctx, problem)
	if err != nil {
		metrics.RecordSolve(time.Since(start), "error")
		return model.PlanResult{}, fmt.Errorf("solve production model: %w", err)
	}
	metrics.RecordSolve(time.Since(start), solution.Status.String())

	if solution.Status != milp.StatusOptimal {
		log.Warn().
			Stringer("status", solution.Status).
			Msg("No feasible production plan")
		return model.Infeasible(), nil
	}

	result := s.buildResult(table, solution)
	log.Info().
		Int("profit", result.Profit).
		Int("units", result.Plan.TotalUnits()).
		Msg("Optimal production plan found")
	return result, nil
}

// buildResult derives the reportable figures from the solved
// quantities. Utilization, cloth use, and profit are recomputed from
// the plan rather than read back from the solver.
func (s *Service) buildResult(table model.TimeTable, solution milp.Solution) model.PlanResult {
	var units [4]int
	for i, v := range solution.Values {
		units[i] = int(v)
	}
	plan := model.NewPlan(units)

	var utilization [4]model.Utilization
	i := 0
	for _, proc := range model.AllProcesses {
		for _, site := range model.AllSites {
			used := 0
			for _, prod := range model.AllProducts {
				used += table.At(proc, site, prod) * plan.Units(site, prod)
			}
			utilization[i] = model.Utilization{
				Process:         proc,
				Site:            site,
				UsedMinutes:     used,
				CapacityMinutes: s.capacity(proc, site),
			}
			i++
		}
	}

	profit := 0
	for _, q := range plan.Quantities {
		profit += s.price(q.Product) * q.Units
	}

	return model.PlanResult{
		Feasible:    true,
		Plan:        plan,
		Utilization: utilization,
		Cloth: model.ClothUsage{
			Used:   plan.TotalUnits() * s.constants.ClothPerUnit,
			Supply: s.constants.ClothSupply,
		},
		Profit: profit,
	}
}

func (s *Service) price(prod model.Product) int {
	if prod == model.ProductX {
		return s.constants.PriceX
	}
	return s.constants.PriceY
}

func (s *Service) capacity(proc model.Process, site model.Site) int {
	switch {
	case proc == model.Cutting && site == model.SiteA:
		return s.constants.CuttingSiteA
	case proc == model.Sewing && site == model.SiteA:
		return s.constants.SewingSiteA
	case proc == model.Cutting && site == model.SiteB:
		return s.constants.CuttingSiteB
	default:
		return s.constants.SewingSiteB
	}
}
