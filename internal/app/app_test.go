package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/production-planner/config"
	"github.com/guttosm/production-planner/internal/domain/model"
	"github.com/guttosm/production-planner/internal/generator"
	"github.com/guttosm/production-planner/internal/mocks"
	"github.com/guttosm/production-planner/internal/report"
)

func testApp(p *mocks.MockPlanner) (*App, config.Config) {
	os.Clearenv()
	cfg := config.Load()
	gen := generator.New(cfg.Generator.Seed, cfg.Generator.TimeMin, cfg.Generator.TimeMax)
	return New(cfg, gen, p), cfg
}

func TestApp_Run_Feasible(t *testing.T) {
	result := model.PlanResult{
		Feasible: true,
		Plan:     model.NewPlan([4]int{0, 6, 1, 8}),
		Cloth:    model.ClothUsage{Used: 60, Supply: 120},
		Profit:   220,
	}
	p := new(mocks.MockPlanner)
	p.On("Plan", mock.Anything, mock.AnythingOfType("model.TimeTable")).Return(result, nil)

	a, _ := testApp(p)
	var buf bytes.Buffer
	require.NoError(t, a.Run(context.Background(), &buf))
	out := buf.String()

	assert.Contains(t, out, "Processing time per unit (minutes):")
	assert.Contains(t, out, "Total profit: 220")
	// The table precedes the plan.
	assert.Less(t,
		bytes.Index(buf.Bytes(), []byte("Processing time")),
		bytes.Index(buf.Bytes(), []byte("Production plan")))

	p.AssertExpectations(t)
}

func TestApp_Run_Infeasible(t *testing.T) {
	p := new(mocks.MockPlanner)
	p.On("Plan", mock.Anything, mock.AnythingOfType("model.TimeTable")).
		Return(model.Infeasible(), nil)

	a, _ := testApp(p)
	var buf bytes.Buffer
	require.NoError(t, a.Run(context.Background(), &buf))
	out := buf.String()

	assert.Contains(t, out, "Processing time per unit (minutes):")
	assert.Contains(t, out, report.InfeasibleMessage)
	assert.NotContains(t, out, "Total profit")
}

func TestApp_Run_PlannerError(t *testing.T) {
	p := new(mocks.MockPlanner)
	p.On("Plan", mock.Anything, mock.AnythingOfType("model.TimeTable")).
		Return(model.PlanResult{}, errors.New("solver unavailable"))

	a, _ := testApp(p)
	var buf bytes.Buffer
	err := a.Run(context.Background(), &buf)

	assert.ErrorContains(t, err, "solver unavailable")
	assert.NotContains(t, buf.String(), "Production plan")
}

func TestApp_Run_SameSeedSameTable(t *testing.T) {
	p := new(mocks.MockPlanner)
	p.On("Plan", mock.Anything, mock.AnythingOfType("model.TimeTable")).
		Return(model.Infeasible(), nil)

	a, _ := testApp(p)
	var first, second bytes.Buffer
	require.NoError(t, a.Run(context.Background(), &first))
	require.NoError(t, a.Run(context.Background(), &second))

	assert.Equal(t, first.String(), second.String())
}
