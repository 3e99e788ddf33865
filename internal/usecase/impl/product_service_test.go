package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"garflex/config"
	"garflex/internal/domain/entity"
	domainerrors "garflex/internal/domain/errors"
	"garflex/internal/domain/repository"
	mockRepo "garflex/internal/mocks/repository"
	"garflex/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Catalog: &config.CatalogConfig{RecentLimit: 5},
	}

	return productServiceFixtures{
		service:     NewProductService(productRepo, cfg, logger),
		productRepo: productRepo,
	}
}

func TestProductService_Create_StampsOwner(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	var created *entity.Product
	fx.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Product)
			created.ID = "prod-1"
		}).
		Return(nil)

	product, err := fx.service.Create(ctx, usecase.CreateProductInput{
		Name:      "Widget",
		Price:     9.99,
		Stock:     3,
		CreatedBy: "manager@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "prod-1", product.ID)
	assert.Equal(t, "manager@example.com", created.CreatedBy)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestProductService_Create_MissingName(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.Create(context.Background(), usecase.CreateProductInput{
		Price:     1,
		CreatedBy: "manager@example.com",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestProductService_ListRecent_UsesConfiguredLimit(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("ListRecent", ctx, 5).Return([]*entity.Product{{ID: "p"}}, nil)

	products, err := fx.service.ListRecent(ctx)

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_ListOwn_ScopesByCreator(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("List", ctx, repository.ProductScope{CreatedBy: "manager@example.com"}).
		Return([]*entity.Product{}, nil)

	products, err := fx.service.ListOwn(ctx, "manager@example.com")

	require.NoError(t, err)
	assert.Empty(t, products)
}

// A manager mutating a product they do not own matches zero documents; the
// response never distinguishes that from a missing product.
func TestProductService_Update_NotOwner(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("Update", ctx, "prod-1", mock.AnythingOfType("repository.ProductUpdate"), "other@example.com").
		Return(repository.ErrNotFound)

	err := fx.service.Update(ctx, "prod-1", usecase.UpdateProductInput{}, "other@example.com")

	assert.Equal(t, domainerrors.ErrNotFoundOrUnauthorized, err)
}

func TestProductService_Update_AdminMissing(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("Update", ctx, "prod-1", mock.AnythingOfType("repository.ProductUpdate"), "").
		Return(repository.ErrNotFound)

	err := fx.service.Update(ctx, "prod-1", usecase.UpdateProductInput{}, "")

	assert.Equal(t, domainerrors.ErrNotFound, err)
}

func TestProductService_Delete_NotOwner(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("Delete", ctx, "prod-1", "other@example.com").
		Return(repository.ErrNotFound)

	err := fx.service.Delete(ctx, "prod-1", "other@example.com")

	assert.Equal(t, domainerrors.ErrNotFoundOrUnauthorized, err)
}

func TestProductService_Get_InvalidID(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", ctx, "zzz").Return(nil, repository.ErrInvalidID)

	_, err := fx.service.Get(ctx, "zzz")

	assert.Equal(t, domainerrors.ErrInvalidID, err)
}
