// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/production-planner/config"
	"github.com/guttosm/production-planner/internal/generator"
	"github.com/guttosm/production-planner/internal/metrics"
	"github.com/guttosm/production-planner/internal/planner"
	"github.com/guttosm/production-planner/internal/report"
	"github.com/guttosm/production-planner/internal/solver"
)

// App holds the wired components of one planning run.
type App struct {
	cfg       config.Config
	generator *generator.Generator
	planner   planner.Planner
}

// InitializeApp creates and wires all application dependencies: the
// seeded table generator, the HiGHS solver adapter, and the planning
// service.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger()

	gen := generator.New(cfg.Generator.Seed, cfg.Generator.TimeMin, cfg.Generator.TimeMax)
	milpSolver := solver.NewHiGHS(cfg.Solver.TimeLimit)

	return &App{
		cfg:       cfg,
		generator: gen,
		planner:   planner.NewService(cfg.Plan, milpSolver),
	}
}

// New wires an App over an externally constructed planner. Used by
// tests to substitute the solving capability.
func New(cfg config.Config, gen *generator.Generator, p planner.Planner) *App {
	return &App{cfg: cfg, generator: gen, planner: p}
}

// Run executes the pipeline once: generate the table, build and solve
// the model, and write the report to w. The report is the only output
// on w; logs go to the global logger.
func (a *App) Run(ctx context.Context, w io.Writer) error {
	runLogger := log.With().Str("run_id", uuid.NewString()).Logger()
	runLogger.Info().
		Int64("seed", a.cfg.Generator.Seed).
		Msg("Planning run started")

	table := a.generator.Table()
	reporter := report.New(w)
	if err := reporter.WriteTable(table); err != nil {
		return err
	}

	result, err := a.planner.Plan(ctx, table)
	if err != nil {
		return err
	}
	if err := reporter.WriteResult(result); err != nil {
		return err
	}

	if url := a.cfg.Metrics.PushgatewayURL; url != "" {
		if err := metrics.Push(url); err != nil {
			runLogger.Warn().Err(err).Msg("Metrics push failed")
		}
	}

	runLogger.Info().
		Bool("feasible", result.Feasible).
		Int("profit", result.Profit).
		Msg("Planning run finished")
	return nil
}
