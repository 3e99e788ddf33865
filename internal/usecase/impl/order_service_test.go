package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"garflex/internal/domain/entity"
	domainerrors "garflex/internal/domain/errors"
	"garflex/internal/domain/repository"
	mockRepo "garflex/internal/mocks/repository"
	"garflex/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return orderServiceFixtures{
		service:   NewOrderService(orderRepo, logger),
		orderRepo: orderRepo,
	}
}

func TestOrderService_Place_ComputesTotal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	var created *entity.Order
	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Order)
			created.ID = "order-1"
		}).
		Return(nil)

	order, err := fx.service.Place(ctx, usecase.PlaceOrderInput{
		BuyerEmail: "buyer@example.com",
		Items: []usecase.OrderItemInput{
			{ProductID: "p1", Name: "Widget", Price: 10.5, Quantity: 2},
			{ProductID: "p2", Name: "Gadget", Price: 3, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, "buyer@example.com", created.BuyerEmail)
	assert.Equal(t, entity.OrderStatusPending, created.Status)
	assert.InDelta(t, 24.0, created.TotalPrice, 0.0001)
	assert.Len(t, created.Items, 2)
	assert.Nil(t, created.ApprovedAt)
	assert.Nil(t, created.RejectedAt)
	assert.Nil(t, created.ProcessedAt)
}

func TestOrderService_Place_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.Place(context.Background(), usecase.PlaceOrderInput{
		BuyerEmail: "buyer@example.com",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestOrderService_SetStatus_Approved(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	var captured repository.OrderStatusUpdate
	fx.orderRepo.On("UpdateStatus", ctx, "order-1", mock.AnythingOfType("repository.OrderStatusUpdate")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(repository.OrderStatusUpdate)
		}).
		Return(nil)

	err := fx.service.SetStatus(ctx, "order-1", entity.OrderStatusApproved)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusApproved, captured.Status)
	assert.False(t, captured.ProcessedAt.IsZero())
	require.NotNil(t, captured.ApprovedAt)
	assert.Equal(t, captured.ProcessedAt, *captured.ApprovedAt)
	assert.Nil(t, captured.RejectedAt)
}

func TestOrderService_SetStatus_Rejected(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	var captured repository.OrderStatusUpdate
	fx.orderRepo.On("UpdateStatus", ctx, "order-1", mock.AnythingOfType("repository.OrderStatusUpdate")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(repository.OrderStatusUpdate)
		}).
		Return(nil)

	err := fx.service.SetStatus(ctx, "order-1", entity.OrderStatusRejected)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusRejected, captured.Status)
	require.NotNil(t, captured.RejectedAt)
	assert.Nil(t, captured.ApprovedAt)
}

// Transitions accept caller-supplied statuses; only the canonical terminal
// states stamp their dedicated timestamps.
func TestOrderService_SetStatus_ArbitraryStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	var captured repository.OrderStatusUpdate
	fx.orderRepo.On("UpdateStatus", ctx, "order-1", mock.AnythingOfType("repository.OrderStatusUpdate")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(repository.OrderStatusUpdate)
		}).
		Return(nil)

	err := fx.service.SetStatus(ctx, "order-1", "shipped")

	require.NoError(t, err)
	assert.Equal(t, "shipped", captured.Status)
	assert.False(t, captured.ProcessedAt.IsZero())
	assert.Nil(t, captured.ApprovedAt)
	assert.Nil(t, captured.RejectedAt)
}

func TestOrderService_SetStatus_EmptyStatus(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.SetStatus(context.Background(), "order-1", "")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestOrderService_SetStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.On("UpdateStatus", ctx, "missing", mock.AnythingOfType("repository.OrderStatusUpdate")).
		Return(repository.ErrNotFound)

	err := fx.service.SetStatus(ctx, "missing", entity.OrderStatusApproved)

	assert.Equal(t, domainerrors.ErrNotFound, err)
}

func TestOrderService_AddTracking_AppendsEvent(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	var captured entity.TrackingEvent
	fx.orderRepo.On("AppendTracking", ctx, "order-1", mock.AnythingOfType("entity.TrackingEvent")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(entity.TrackingEvent)
		}).
		Return(nil)

	err := fx.service.AddTracking(ctx, "order-1", usecase.AddTrackingInput{
		Status:   "in transit",
		Location: "Zagreb",
		Note:     "left the warehouse",
	})

	require.NoError(t, err)
	assert.Equal(t, "in transit", captured.Status)
	assert.Equal(t, "Zagreb", captured.Location)
	assert.WithinDuration(t, time.Now(), captured.AppliedAt, time.Second)
}

func TestOrderService_AddTracking_MissingStatus(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.AddTracking(context.Background(), "order-1", usecase.AddTrackingInput{})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestOrderService_Cancel_Pending(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.On("DeletePendingByBuyer", ctx, "order-1", "buyer@example.com").Return(nil)

	err := fx.service.Cancel(ctx, "order-1", "buyer@example.com")

	require.NoError(t, err)
}

// Wrong owner, already processed and nonexistent id are one undifferentiated
// outcome: the scoped delete matched nothing.
func TestOrderService_Cancel_NoMatch(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.On("DeletePendingByBuyer", ctx, "order-1", "buyer@example.com").
		Return(repository.ErrNotFound)

	err := fx.service.Cancel(ctx, "order-1", "buyer@example.com")

	assert.Equal(t, domainerrors.ErrOrderCannotCancel, err)
}

func TestOrderService_Cancel_InvalidID(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.On("DeletePendingByBuyer", ctx, "not-an-id", "buyer@example.com").
		Return(repository.ErrInvalidID)

	err := fx.service.Cancel(ctx, "not-an-id", "buyer@example.com")

	assert.Equal(t, domainerrors.ErrInvalidID, err)
}

func TestOrderService_ListForBuyer_ScopesByBuyer(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.On("List", ctx, repository.OrderScope{BuyerEmail: "buyer@example.com"}).
		Return([]*entity.Order{{ID: "order-1"}}, nil)

	orders, err := fx.service.ListForBuyer(ctx, "buyer@example.com")

	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_ListManagerQueue_ScopesByManagerEmail(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.On("List", ctx, repository.OrderScope{
		BuyerEmail: "manager@example.com",
		Status:     entity.OrderStatusPending,
	}).Return([]*entity.Order{}, nil)

	orders, err := fx.service.ListManagerQueue(ctx, "manager@example.com", entity.OrderStatusPending)

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_ListAll_Unrestricted(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.On("List", ctx, repository.OrderScope{}).
		Return([]*entity.Order{{ID: "a"}, {ID: "b"}}, nil)

	orders, err := fx.service.ListAll(ctx)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
