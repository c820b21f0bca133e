// Package main is the entry point for the production-planner CLI.
//
// The planner generates a seeded processing-time table for a two-site,
// two-product workshop, assembles a profit-maximization model over the
// configured capacities and cloth supply, solves it with HiGHS, and
// prints the optimal plan to stdout.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/production-planner/config"
	"github.com/guttosm/production-planner/internal/app"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	a := app.InitializeApp(cfg)
	if err := a.Run(context.Background(), os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Planning run failed")
	}
}
