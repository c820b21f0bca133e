// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/production-planner/internal/milp"
)

type MockSolver struct {
	mock.Mock
}

func (m *MockSolver) Solve(ctx context.Context, problem milp.Problem) (milp.Solution, error) {
	args := m.Called(ctx, problem)
	return args.Get(0).(milp.Solution), args.Error(1)
}
