package model

import (
	"time"

	"garflex/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// OrderItemModel mirrors one embedded order line.
type OrderItemModel struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	Price     float64 `bson:"price"`
	Quantity  int     `bson:"quantity"`
}

// TrackingEventModel mirrors one embedded tracking-history entry.
type TrackingEventModel struct {
	Status    string    `bson:"status"`
	Location  string    `bson:"location,omitempty"`
	Note      string    `bson:"note,omitempty"`
	AppliedAt time.Time `bson:"applied_at"`
}

// OrderModel mirrors one document of the 'orders' collection. The tracking
// history is an embedded array that is only ever appended to with $push.
type OrderModel struct {
	ID                 bson.ObjectID        `bson:"_id,omitempty"`
	BuyerEmail         string               `bson:"buyer_email"`
	Items              []OrderItemModel     `bson:"items"`
	TotalPrice         float64              `bson:"total_price"`
	Status             string               `bson:"status"`
	CreatedAt          time.Time            `bson:"created_at"`
	ApprovedAt         *time.Time           `bson:"approved_at,omitempty"`
	RejectedAt         *time.Time           `bson:"rejected_at,omitempty"`
	ProcessedAt        *time.Time           `bson:"processed_at,omitempty"`
	TrackingHistory    []TrackingEventModel `bson:"tracking_history,omitempty"`
	CurrentStatus      *string              `bson:"current_status,omitempty"`
	LastTrackingUpdate *time.Time           `bson:"last_tracking_update,omitempty"`
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *OrderModel) ToDomain() *entity.Order {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	var history []entity.TrackingEvent
	for _, event := range m.TrackingHistory {
		history = append(history, entity.TrackingEvent{
			Status:    event.Status,
			Location:  event.Location,
			Note:      event.Note,
			AppliedAt: event.AppliedAt,
		})
	}

	return &entity.Order{
		ID:                 m.ID.Hex(),
		BuyerEmail:         m.BuyerEmail,
		Items:              items,
		TotalPrice:         m.TotalPrice,
		Status:             m.Status,
		CreatedAt:          m.CreatedAt,
		ApprovedAt:         m.ApprovedAt,
		RejectedAt:         m.RejectedAt,
		ProcessedAt:        m.ProcessedAt,
		TrackingHistory:    history,
		CurrentStatus:      m.CurrentStatus,
		LastTrackingUpdate: m.LastTrackingUpdate,
	}
}

// OrderFromDomain maps a domain entity onto the persistence model.
func OrderFromDomain(order *entity.Order) (*OrderModel, error) {
	items := make([]OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemModel{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	var history []TrackingEventModel
	for _, event := range order.TrackingHistory {
		history = append(history, TrackingEventModel{
			Status:    event.Status,
			Location:  event.Location,
			Note:      event.Note,
			AppliedAt: event.AppliedAt,
		})
	}

	m := &OrderModel{
		BuyerEmail:         order.BuyerEmail,
		Items:              items,
		TotalPrice:         order.TotalPrice,
		Status:             order.Status,
		CreatedAt:          order.CreatedAt,
		ApprovedAt:         order.ApprovedAt,
		RejectedAt:         order.RejectedAt,
		ProcessedAt:        order.ProcessedAt,
		TrackingHistory:    history,
		CurrentStatus:      order.CurrentStatus,
		LastTrackingUpdate: order.LastTrackingUpdate,
	}

	if order.ID != "" {
		id, err := bson.ObjectIDFromHex(order.ID)
		if err != nil {
			return nil, err
		}
		m.ID = id
	}

	return m, nil
}
