package usecase

import (
	"context"

	"garflex/internal/domain/entity"
)

// --- Input DTOs ---

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// PlaceOrderInput defines the data required to place a new order. The buyer
// email comes from the authenticated account, never from the body.
type PlaceOrderInput struct {
	BuyerEmail string
	Items      []OrderItemInput
}

// AddTrackingInput defines one fulfillment progress event.
type AddTrackingInput struct {
	Status   string
	Location string
	Note     string
}

// OrderUsecase defines the interface for order-related business operations,
// including the status transition rules and the role-scoped views.
type OrderUsecase interface {
	// Place creates a pending order for the buyer.
	Place(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)

	// ListForBuyer returns the buyer's own orders, newest first.
	ListForBuyer(ctx context.Context, buyerEmail string) ([]*entity.Order, error)

	// Cancel deletes the buyer's order if it is still pending. Any mismatch
	// (wrong owner, already processed, nonexistent id) is a single
	// undifferentiated cannot-cancel failure.
	Cancel(ctx context.Context, id, buyerEmail string) error

	// ListManagerQueue returns the manager's order queue for one status.
	ListManagerQueue(ctx context.Context, managerEmail, status string) ([]*entity.Order, error)

	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// Get returns a single order by id.
	Get(ctx context.Context, id string) (*entity.Order, error)

	// SetStatus applies one status transition, stamping the processing
	// timestamps.
	SetStatus(ctx context.Context, id, status string) error

	// AddTracking appends one tracking event to the order's history.
	AddTracking(ctx context.Context, id string, input AddTrackingInput) error
}
