// Package generator produces the seeded per-unit processing-time table.
package generator

import (
	"math/rand"

	"github.com/guttosm/production-planner/internal/domain/model"
)

// Generator produces processing-time tables from an explicit seed. The
// seed is a configuration value rather than process-wide state, so two
// generators built with the same seed are independently reproducible
// within one process.
type Generator struct {
	seed int64
	min  int
	max  int
}

// New creates a Generator drawing minutes uniformly from [min, max].
func New(seed int64, min, max int) *Generator {
	return &Generator{seed: seed, min: min, max: max}
}

// Table returns the processing-time table for this generator's seed.
// Entries are drawn in process-major, site-major, product-minor order,
// so a fixed seed yields an identical table on every call.
func (g *Generator) Table() model.TimeTable {
	rng := rand.New(rand.NewSource(g.seed))

	var table model.TimeTable
	for _, proc := range model.AllProcesses {
		for _, site := range model.AllSites {
			for _, prod := range model.AllProducts {
				table.Set(proc, site, prod, g.min+rng.Intn(g.max-g.min+1))
			}
		}
	}
	return table
}
