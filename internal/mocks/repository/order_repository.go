package repository

import (
	"context"
	"testing"

	"garflex/internal/domain/entity"
	"garflex/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

var _ repository.OrderRepository = (*MockOrderRepository)(nil)

// NewMockOrderRepository creates a mock bound to the test's lifecycle.
func NewMockOrderRepository(t *testing.T) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, scope repository.OrderScope) ([]*entity.Order, error) {
	args := m.Called(ctx, scope)
	if orders, ok := args.Get(0).([]*entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, update repository.OrderStatusUpdate) error {
	args := m.Called(ctx, id, update)

	return args.Error(0)
}

func (m *MockOrderRepository) AppendTracking(ctx context.Context, id string, event entity.TrackingEvent) error {
	args := m.Called(ctx, id, event)

	return args.Error(0)
}

func (m *MockOrderRepository) DeletePendingByBuyer(ctx context.Context, id, buyerEmail string) error {
	args := m.Called(ctx, id, buyerEmail)

	return args.Error(0)
}
