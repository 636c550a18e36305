// Package mocks provides testify mocks of the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mixvenn.dev/pkg/mixvenn/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted
// when the test finishes.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Summary provides a mock function.
func (m *MockWorkflow) Summary(ctx context.Context, args domain.SummaryArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}

// Venn provides a mock function.
func (m *MockWorkflow) Venn(ctx context.Context, args domain.VennArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}

// Pairs provides a mock function.
func (m *MockWorkflow) Pairs(ctx context.Context, args domain.PairsArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}

// View provides a mock function.
func (m *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}
