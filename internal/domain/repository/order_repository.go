package repository

import (
	"context"
	"time"

	"garflex/internal/domain/entity"
)

// OrderScope narrows an order query by ownership and status. Zero-value
// fields are not applied, so the empty scope is the unrestricted admin view.
type OrderScope struct {
	BuyerEmail string // Restrict to orders placed by this buyer.
	Status     string // Restrict to orders currently in this status.
}

// OrderStatusUpdate carries the fields of one status transition. Nil
// timestamp fields are left untouched in the stored document, which keeps
// previously set transition timestamps intact.
type OrderStatusUpdate struct {
	Status      string     // New order status.
	ProcessedAt time.Time  // Transition time, set on every update.
	ApprovedAt  *time.Time // Set when the target status is approved.
	RejectedAt  *time.Time // Set when the target status is rejected.
}

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its storage identifier.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// List retrieves the orders matching the scope, newest first.
	List(ctx context.Context, scope OrderScope) ([]*entity.Order, error)

	// UpdateStatus applies one status transition to the order document.
	// Returns ErrNotFound when no order matches the id.
	UpdateStatus(ctx context.Context, id string, update OrderStatusUpdate) error

	// AppendTracking appends one tracking event to the order's history and
	// refreshes the current tracking status. The history is append-only;
	// existing events are never touched. Returns ErrNotFound when no order
	// matches the id.
	AppendTracking(ctx context.Context, id string, event entity.TrackingEvent) error

	// DeletePendingByBuyer removes the order only if it belongs to the given
	// buyer and is still pending. The ownership and status checks are part of
	// the delete filter itself; any mismatch surfaces as ErrNotFound.
	DeletePendingByBuyer(ctx context.Context, id, buyerEmail string) error
}
