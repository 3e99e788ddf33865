package repository

import (
	"context"

	"garflex/internal/domain/entity"
)

// ProductScope narrows a product query by ownership. The zero value is the
// unrestricted view used by public and admin reads.
type ProductScope struct {
	CreatedBy string // Restrict to products created by this manager.
}

// ProductUpdate carries a partial product mutation; nil fields are left
// untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	ImageURL    *string
	Stock       *int
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its storage identifier.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// List retrieves the products matching the scope, newest first.
	List(ctx context.Context, scope ProductScope) ([]*entity.Product, error)

	// ListRecent retrieves the most recently created products, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*entity.Product, error)

	// Update applies a partial mutation. A non-empty ownedBy is folded into
	// the update filter, so a non-owner mutation matches zero documents and
	// returns ErrNotFound rather than a distinct forbidden error.
	Update(ctx context.Context, id string, update ProductUpdate, ownedBy string) error

	// Delete removes a product, with the same ownedBy filter semantics as Update.
	Delete(ctx context.Context, id string, ownedBy string) error
}
