package entity

import "time"

// OrderStatus names the canonical order states. Status transitions accept
// caller-supplied values, so Order.Status stays a plain string; these
// constants cover the states the rest of the system reasons about.
const (
	// OrderStatusPending is the initial state of every placed order.
	OrderStatusPending = "pending"
	// OrderStatusApproved is set when a manager approves the order.
	OrderStatusApproved = "approved"
	// OrderStatusRejected is set when a manager rejects the order.
	OrderStatusRejected = "rejected"
)

// OrderItem is one line of an order, a denormalized snapshot of the product
// at purchase time.
type OrderItem struct {
	ProductID string  // Storage identifier of the purchased product.
	Name      string  // Product name at purchase time.
	Price     float64 // Unit price at purchase time.
	Quantity  int     // Number of units ordered.
}

// TrackingEvent is one append-only record of fulfillment progress attached to
// an order. Events are never mutated or removed once appended.
type TrackingEvent struct {
	Status    string    // Fulfillment status reported by the caller.
	Location  string    // Optional free-form location.
	Note      string    // Optional free-form note.
	AppliedAt time.Time // Timestamp the event was appended.
}

// Order is a buyer's purchase. Status starts at pending and is transitioned
// by managers; ApprovedAt, RejectedAt and ProcessedAt are set once and never
// cleared by later transitions. TrackingHistory only ever grows.
type Order struct {
	ID                 string          // Storage identifier (ObjectID hex).
	BuyerEmail         string          // Email of the buyer who placed the order.
	Items              []OrderItem     // Ordered items.
	TotalPrice         float64         // Sum of item price * quantity.
	Status             string          // Current order status.
	CreatedAt          time.Time       // Timestamp the order was placed.
	ApprovedAt         *time.Time      // Set the first time the order is approved.
	RejectedAt         *time.Time      // Set the first time the order is rejected.
	ProcessedAt        *time.Time      // Set on every status transition.
	TrackingHistory    []TrackingEvent // Append-only fulfillment history.
	CurrentStatus      *string         // Status of the most recent tracking event.
	LastTrackingUpdate *time.Time      // Timestamp of the most recent tracking event.
}

// IsPending reports whether the order is still awaiting review. Only pending
// orders can be cancelled by their buyer.
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}
