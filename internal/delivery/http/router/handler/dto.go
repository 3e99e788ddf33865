package handler

import (
	"time"

	"garflex/internal/domain/entity"
)

// Response models. Entities are mapped here so the wire format stays stable
// independently of the domain structs.

type accountResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name,omitempty"`
	PhotoURL      string    `json:"photoURL,omitempty"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	SuspendReason *string   `json:"suspendReason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	LastLoginAt   time.Time `json:"lastLoginAt"`
}

func newAccountResponse(account *entity.Account) *accountResponse {
	return &accountResponse{
		ID:            account.ID,
		Email:         account.Email,
		Name:          account.Name,
		PhotoURL:      account.PhotoURL,
		Role:          account.Role.String(),
		Status:        account.Status.String(),
		SuspendReason: account.SuspendReason,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
		LastLoginAt:   account.LastLoginAt,
	}
}

func newAccountListResponse(accounts []*entity.Account) []*accountResponse {
	out := make([]*accountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, newAccountResponse(account))
	}

	return out
}

type orderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type trackingEventResponse struct {
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Note      string    `json:"note,omitempty"`
	AppliedAt time.Time `json:"appliedAt"`
}

type orderResponse struct {
	ID                 string                  `json:"id"`
	BuyerEmail         string                  `json:"buyerEmail"`
	Items              []orderItemResponse     `json:"items"`
	TotalPrice         float64                 `json:"totalPrice"`
	Status             string                  `json:"status"`
	CreatedAt          time.Time               `json:"createdAt"`
	ApprovedAt         *time.Time              `json:"approvedAt,omitempty"`
	RejectedAt         *time.Time              `json:"rejectedAt,omitempty"`
	ProcessedAt        *time.Time              `json:"processedAt,omitempty"`
	TrackingHistory    []trackingEventResponse `json:"trackingHistory,omitempty"`
	CurrentStatus      *string                 `json:"currentStatus,omitempty"`
	LastTrackingUpdate *time.Time              `json:"lastTrackingUpdate,omitempty"`
}

func newOrderResponse(order *entity.Order) *orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	var history []trackingEventResponse
	for _, event := range order.TrackingHistory {
		history = append(history, trackingEventResponse{
			Status:    event.Status,
			Location:  event.Location,
			Note:      event.Note,
			AppliedAt: event.AppliedAt,
		})
	}

	return &orderResponse{
		ID:                 order.ID,
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
}

func newOrderListResponse(orders []*entity.Order) []*orderResponse {
	out := make([]*orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, newOrderResponse(order))
	}

	return out
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Stock       int       `json:"stock"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newProductResponse(product *entity.Product) *productResponse {
	return &productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		Stock:       product.Stock,
		CreatedBy:   product.CreatedBy,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func newProductListResponse(products []*entity.Product) []*productResponse {
	out := make([]*productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, newProductResponse(product))
	}

	return out
}
