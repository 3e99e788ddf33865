package impl

import (
	"context"
	"log/slog"
	"time"

	"garflex/config"
	"garflex/internal/domain/entity"
	domainerrors "garflex/internal/domain/errors"
	"garflex/internal/domain/repository"
	"garflex/internal/errors"
	"garflex/internal/usecase"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	recentLimit int
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		recentLimit: cfg.RecentProductLimit(),
		logger:      logger,
	}
}

// List returns the whole catalog, newest first.
func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductScope{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListRecent returns the most recently created products, capped at the
// configured limit.
func (srv *productService) ListRecent(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListRecent(ctx, srv.recentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent products")
	}

	return products, nil
}

// Get returns a single product by id.
func (srv *productService) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductLookupError(err, "")
	}

	return product, nil
}

// Create adds a product owned by the creating manager.
func (srv *productService) Create(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("product name is required")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("product price cannot be negative")
	}

	now := time.Now()
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("product created", slog.String("id", product.ID), slog.String("createdBy", product.CreatedBy))

	return product, nil
}

// ListOwn returns the products created by the given manager.
func (srv *productService) ListOwn(ctx context.Context, managerEmail string) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductScope{CreatedBy: managerEmail})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Update applies a partial mutation. A non-empty ownedBy restricts the
// mutation to the owning manager inside the persistence filter, so an
// ownership mismatch is indistinguishable from a missing product.
func (srv *productService) Update(ctx context.Context, id string, input usecase.UpdateProductInput, ownedBy string) error {
	update := repository.ProductUpdate{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
	}

	if err := srv.productRepo.Update(ctx, id, update, ownedBy); err != nil {
		return mapProductLookupError(err, ownedBy)
	}

	srv.logger.Info("product updated", slog.String("id", id))

	return nil
}

// Delete removes a product, with the same ownership scoping as Update.
func (srv *productService) Delete(ctx context.Context, id string, ownedBy string) error {
	if err := srv.productRepo.Delete(ctx, id, ownedBy); err != nil {
		return mapProductLookupError(err, ownedBy)
	}

	srv.logger.Info("product deleted", slog.String("id", id))

	return nil
}

// mapProductLookupError translates storage sentinels into the application
// error taxonomy. When the operation was ownership-scoped, not-found keeps
// the deliberately merged wording.
func mapProductLookupError(err error, ownedBy string) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return domainerrors.ErrInvalidID
	case errors.Is(err, repository.ErrNotFound):
		if ownedBy != "" {
			return domainerrors.ErrNotFoundOrUnauthorized
		}

		return domainerrors.ErrNotFound
	default:
		return errors.Wrap(err, "product persistence failed")
	}
}
