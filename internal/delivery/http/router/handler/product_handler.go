package handler

import (
	"log/slog"
	"net/http"

	delivcontext "garflex/internal/delivery/context"
	"garflex/internal/delivery/http/response"
	domainerrors "garflex/internal/domain/errors"
	"garflex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the public catalog.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductListResponse(products), "")
}

// ListRecent returns the newest products.
func (h *ProductHandler) ListRecent(c echo.Context) error {
	products, err := h.uc.ListRecent(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductListResponse(products), "")
}

// Get returns a single product by id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product), "")
}

type createProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// Create handles the manager product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	manager := delivcontext.GetAccount(c)
	if manager == nil {
		return domainerrors.ErrForbidden
	}

	var input createProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Create(c.Request().Context(), usecase.CreateProductInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		CreatedBy:   manager.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(product), "Product created successfully")
}

// ListOwn returns the calling manager's own products.
func (h *ProductHandler) ListOwn(c echo.Context) error {
	manager := delivcontext.GetAccount(c)
	if manager == nil {
		return domainerrors.ErrForbidden
	}

	products, err := h.uc.ListOwn(c.Request().Context(), manager.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductListResponse(products), "")
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

// UpdateOwn handles the manager product mutation, scoped to the owner.
func (h *ProductHandler) UpdateOwn(c echo.Context) error {
	manager := delivcontext.GetAccount(c)
	if manager == nil {
		return domainerrors.ErrForbidden
	}

	return h.update(c, manager.Email)
}

// DeleteOwn handles the manager product deletion, scoped to the owner.
func (h *ProductHandler) DeleteOwn(c echo.Context) error {
	manager := delivcontext.GetAccount(c)
	if manager == nil {
		return domainerrors.ErrForbidden
	}

	if err := h.uc.Delete(c.Request().Context(), c.Param("id"), manager.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// ListAll returns the whole catalog for the admin console.
func (h *ProductHandler) ListAll(c echo.Context) error {
	return h.List(c)
}

// UpdateAny handles the unrestricted administrative product mutation.
func (h *ProductHandler) UpdateAny(c echo.Context) error {
	return h.update(c, "")
}

// DeleteAny handles the unrestricted administrative product deletion.
func (h *ProductHandler) DeleteAny(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id"), ""); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

func (h *ProductHandler) update(c echo.Context, ownedBy string) error {
	var input updateProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.Update(c.Request().Context(), c.Param("id"), usecase.UpdateProductInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
	}, ownedBy)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated successfully")
}
