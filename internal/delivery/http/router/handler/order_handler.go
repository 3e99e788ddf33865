package handler

import (
	"log/slog"
	"net/http"

	delivcontext "garflex/internal/delivery/context"
	"garflex/internal/delivery/http/response"
	"garflex/internal/domain/entity"
	domainerrors "garflex/internal/domain/errors"
	"garflex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type orderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
}

type placeOrderRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Place handles the buyer order placement request.
func (h *OrderHandler) Place(c echo.Context) error {
	buyer := delivcontext.GetAccount(c)
	if buyer == nil {
		return domainerrors.ErrForbidden
	}

	var input placeOrderRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	items := make([]usecase.OrderItemInput, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.uc.Place(c.Request().Context(), usecase.PlaceOrderInput{
		BuyerEmail: buyer.Email,
		Items:      items,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order), "Order placed successfully")
}

// MyOrders returns the calling buyer's own orders.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	buyer := delivcontext.GetAccount(c)
	if buyer == nil {
		return domainerrors.ErrForbidden
	}

	orders, err := h.uc.ListForBuyer(c.Request().Context(), buyer.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderListResponse(orders), "")
}

// Cancel handles the buyer cancellation request. Only the owning buyer's
// pending order can be cancelled; every mismatch is the same failure.
func (h *OrderHandler) Cancel(c echo.Context) error {
	buyer := delivcontext.GetAccount(c)
	if buyer == nil {
		return domainerrors.ErrForbidden
	}

	if err := h.uc.Cancel(c.Request().Context(), c.Param("id"), buyer.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order cancelled successfully")
}

// PendingOrders returns the manager's pending queue.
func (h *OrderHandler) PendingOrders(c echo.Context) error {
	return h.managerQueue(c, entity.OrderStatusPending)
}

// ApprovedOrders returns the manager's approved history.
func (h *OrderHandler) ApprovedOrders(c echo.Context) error {
	return h.managerQueue(c, entity.OrderStatusApproved)
}

func (h *OrderHandler) managerQueue(c echo.Context, status string) error {
	manager := delivcontext.GetAccount(c)
	if manager == nil {
		return domainerrors.ErrForbidden
	}

	orders, err := h.uc.ListManagerQueue(c.Request().Context(), manager.Email, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderListResponse(orders), "")
}

// AllOrders returns every order for the admin console.
func (h *OrderHandler) AllOrders(c echo.Context) error {
	orders, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderListResponse(orders), "")
}

// Get returns a single order by id.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order), "")
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetStatus handles the order status transition request.
func (h *OrderHandler) SetStatus(c echo.Context) error {
	var input setStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetStatus(c.Request().Context(), c.Param("id"), input.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated successfully")
}

type addTrackingRequest struct {
	Status   string `json:"status" validate:"required"`
	Location string `json:"location"`
	Note     string `json:"note"`
}

// AddTracking appends one tracking event to the order's history.
func (h *OrderHandler) AddTracking(c echo.Context) error {
	var input addTrackingRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.AddTracking(c.Request().Context(), c.Param("id"), usecase.AddTrackingInput{
		Status:   input.Status,
		Location: input.Location,
		Note:     input.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tracking event added successfully")
}
