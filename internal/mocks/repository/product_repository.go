package repository

import (
	"context"
	"testing"

	"garflex/internal/domain/entity"
	"garflex/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

var _ repository.ProductRepository = (*MockProductRepository)(nil)

// NewMockProductRepository creates a mock bound to the test's lifecycle.
func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, scope repository.ProductScope) ([]*entity.Product, error) {
	args := m.Called(ctx, scope)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, limit)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, update repository.ProductUpdate, ownedBy string) error {
	args := m.Called(ctx, id, update, ownedBy)

	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string, ownedBy string) error {
	args := m.Called(ctx, id, ownedBy)

	return args.Error(0)
}
