// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/production-planner/internal/domain/model"
)

type MockPlanner struct {
	mock.Mock
}

func (m *MockPlanner) Plan(ctx context.Context, table model.TimeTable) (model.PlanResult, error) {
	args := m.Called(ctx, table)
	return args.Get(0).(model.PlanResult), args.Error(1)
}
