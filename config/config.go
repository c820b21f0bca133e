// Package config provides configuration management for the production planner.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Generator GeneratorConfig
	Plan      PlanConfig
	Solver    SolverConfig
	Metrics   MetricsConfig
}

// GeneratorConfig holds the processing-time table generation settings.
type GeneratorConfig struct {
	Seed    int64
	TimeMin int
	TimeMax int
}

// PlanConfig holds the capacity, material, and price constants of one run.
type PlanConfig struct {
	// Capacity minutes per process and site.
	CuttingSiteA int
	SewingSiteA  int
	CuttingSiteB int
	SewingSiteB  int
	// Shared cloth supply and per-unit consumption.
	ClothSupply  int
	ClothPerUnit int
	// Unit prices, identical across sites.
	PriceX int
	PriceY int
}

// SolverConfig holds settings for the external MILP solver.
type SolverConfig struct {
	TimeLimit time.Duration
}

// MetricsConfig holds Prometheus delivery configuration.
type MetricsConfig struct {
	PushgatewayURL string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Generator: GeneratorConfig{
			Seed:    getEnvInt64("PLANNER_SEED", 42),
			TimeMin: getEnvInt("PLANNER_TIME_MIN", 1),
			TimeMax: getEnvInt("PLANNER_TIME_MAX", 10),
		},
		Plan: PlanConfig{
			CuttingSiteA: getEnvInt("PLANNER_CAPACITY_CUTTING_A", 80),
			SewingSiteA:  getEnvInt("PLANNER_CAPACITY_SEWING_A", 60),
			CuttingSiteB: getEnvInt("PLANNER_CAPACITY_CUTTING_B", 60),
			SewingSiteB:  getEnvInt("PLANNER_CAPACITY_SEWING_B", 75),
			ClothSupply:  getEnvInt("PLANNER_CLOTH_SUPPLY", 120),
			ClothPerUnit: getEnvInt("PLANNER_CLOTH_PER_UNIT", 4),
			PriceX:       getEnvInt("PLANNER_PRICE_X", 10),
			PriceY:       getEnvInt("PLANNER_PRICE_Y", 15),
		},
		Solver: SolverConfig{
			TimeLimit: getEnvDuration("PLANNER_SOLVER_TIME_LIMIT", 30*time.Second),
		},
		Metrics: MetricsConfig{
			PushgatewayURL: getEnv("PLANNER_PUSHGATEWAY_URL", ""),
		},
	}
}

// Validate reports the first configuration value that cannot describe a
// well-formed model.
func (c Config) Validate() error {
	if c.Generator.TimeMin < 1 {
		return fmt.Errorf("PLANNER_TIME_MIN must be at least 1, got %d", c.Generator.TimeMin)
	}
	if c.Generator.TimeMax < c.Generator.TimeMin {
		return fmt.Errorf("PLANNER_TIME_MAX (%d) must not be below PLANNER_TIME_MIN (%d)",
			c.Generator.TimeMax, c.Generator.TimeMin)
	}
	nonNegative := []struct {
		name  string
		value int
	}{
		{"PLANNER_CAPACITY_CUTTING_A", c.Plan.CuttingSiteA},
		{"PLANNER_CAPACITY_SEWING_A", c.Plan.SewingSiteA},
		{"PLANNER_CAPACITY_CUTTING_B", c.Plan.CuttingSiteB},
		{"PLANNER_CAPACITY_SEWING_B", c.Plan.SewingSiteB},
		{"PLANNER_CLOTH_SUPPLY", c.Plan.ClothSupply},
		{"PLANNER_CLOTH_PER_UNIT", c.Plan.ClothPerUnit},
		{"PLANNER_PRICE_X", c.Plan.PriceX},
		{"PLANNER_PRICE_Y", c.Plan.PriceY},
	}
	for _, v := range nonNegative {
		if v.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", v.name, v.value)
		}
	}
	if c.Solver.TimeLimit <= 0 {
		return fmt.Errorf("PLANNER_SOLVER_TIME_LIMIT must be positive, got %s", c.Solver.TimeLimit)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
