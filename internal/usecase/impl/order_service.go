package impl

import (
	"context"
	"log/slog"
	"time"

	"garflex/internal/domain/entity"
	domainerrors "garflex/internal/domain/errors"
	"garflex/internal/domain/repository"
	"garflex/internal/errors"
	"garflex/internal/usecase"
)

// orderService implements the OrderUsecase interface. It owns the order
// status transition rules and the role-scoped order views.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Place creates a pending order for the buyer. The total is computed here
// from the item lines, never trusted from the caller.
func (srv *orderService) Place(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("order must contain at least one item")
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	var total float64
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrInvalidInput.WithDetails("item quantity must be positive")
		}
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
		total += item.Price * float64(item.Quantity)
	}

	order := &entity.Order{
		BuyerEmail: input.BuyerEmail,
		Items:      items,
		TotalPrice: total,
		Status:     entity.OrderStatusPending,
		CreatedAt:  time.Now(),
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.logger.Info("order placed", slog.String("id", order.ID), slog.String("buyer", order.BuyerEmail))

	return order, nil
}

// ListForBuyer returns the buyer's own orders, newest first.
func (srv *orderService) ListForBuyer(ctx context.Context, buyerEmail string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, repository.OrderScope{BuyerEmail: buyerEmail})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Cancel deletes the buyer's order while it is still pending. The ownership
// and status checks live in the delete filter, so a wrong owner, an already
// processed order and a nonexistent id all collapse into the same
// cannot-cancel outcome and the stored order is untouched.
func (srv *orderService) Cancel(ctx context.Context, id, buyerEmail string) error {
	err := srv.orderRepo.DeletePendingByBuyer(ctx, id, buyerEmail)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return domainerrors.ErrInvalidID
		case errors.Is(err, repository.ErrNotFound):
			return domainerrors.ErrOrderCannotCancel
		default:
			return errors.Wrap(err, "failed to cancel order")
		}
	}

	srv.logger.Info("order cancelled", slog.String("id", id), slog.String("buyer", buyerEmail))

	return nil
}

// ListManagerQueue returns the manager's queue for one status.
//
// TODO: the queue is scoped by the manager's own email as the buyer email,
// which conflates the review queue with the manager's personal purchases.
// Kept until product decides what "a manager's pending orders" should mean.
func (srv *orderService) ListManagerQueue(ctx context.Context, managerEmail, status string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, repository.OrderScope{
		BuyerEmail: managerEmail,
		Status:     status,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListAll returns every order, newest first.
func (srv *orderService) ListAll(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, repository.OrderScope{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Get returns a single order by id.
func (srv *orderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapOrderLookupError(err)
	}

	return order, nil
}

// SetStatus applies one status transition. Every transition stamps
// processedAt; approving stamps approvedAt and rejecting stamps rejectedAt.
// Previously set transition timestamps are never cleared, and no guard
// prevents moving an order out of a terminal status.
func (srv *orderService) SetStatus(ctx context.Context, id, status string) error {
	if status == "" {
		return domainerrors.ErrInvalidInput.WithDetails("status is required")
	}

	now := time.Now()
	update := repository.OrderStatusUpdate{
		Status:      status,
		ProcessedAt: now,
	}
	switch status {
	case entity.OrderStatusApproved:
		update.ApprovedAt = &now
	case entity.OrderStatusRejected:
		update.RejectedAt = &now
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, update); err != nil {
		return mapOrderLookupError(err)
	}

	srv.logger.Info("order status updated", slog.String("id", id), slog.String("status", status))

	return nil
}

// AddTracking appends one tracking event to the order's history. Appending
// is independent of the order status and remains possible after terminal
// transitions.
func (srv *orderService) AddTracking(ctx context.Context, id string, input usecase.AddTrackingInput) error {
	if input.Status == "" {
		return domainerrors.ErrInvalidInput.WithDetails("tracking status is required")
	}

	event := entity.TrackingEvent{
		Status:    input.Status,
		Location:  input.Location,
		Note:      input.Note,
		AppliedAt: time.Now(),
	}

	if err := srv.orderRepo.AppendTracking(ctx, id, event); err != nil {
		return mapOrderLookupError(err)
	}

	return nil
}

// mapOrderLookupError translates storage sentinels into the application
// error taxonomy.
func mapOrderLookupError(err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return domainerrors.ErrInvalidID
	case errors.Is(err, repository.ErrNotFound):
		return domainerrors.ErrNotFound
	default:
		return errors.Wrap(err, "order persistence failed")
	}
}
