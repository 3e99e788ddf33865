package usecase

import (
	"context"

	"garflex/internal/domain/entity"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a catalog product.
// CreatedBy comes from the authenticated manager account.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	Stock       int
	CreatedBy   string
}

// UpdateProductInput defines a partial product mutation. Nil fields are left
// unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	ImageURL    *string
	Stock       *int
}

// ProductUsecase defines the interface for catalog operations. Mutations take
// an ownedBy email that scopes the change to the owning manager; an empty
// ownedBy is the unrestricted administrative form.
type ProductUsecase interface {
	// List returns the whole catalog, newest first.
	List(ctx context.Context) ([]*entity.Product, error)

	// ListRecent returns the most recently created products.
	ListRecent(ctx context.Context) ([]*entity.Product, error)

	// Get returns a single product by id.
	Get(ctx context.Context, id string) (*entity.Product, error)

	// Create adds a product owned by the creating manager.
	Create(ctx context.Context, input CreateProductInput) (*entity.Product, error)

	// ListOwn returns the products created by the given manager.
	ListOwn(ctx context.Context, managerEmail string) ([]*entity.Product, error)

	// Update applies a partial mutation, scoped to the owner when ownedBy is
	// non-empty.
	Update(ctx context.Context, id string, input UpdateProductInput, ownedBy string) error

	// Delete removes a product, with the same ownership scoping as Update.
	Delete(ctx context.Context, id string, ownedBy string) error
}
