// Package handler contains the HTTP handlers for the application.
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

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AccountUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role"`
}

// Register handles the account registration request. The email comes from
// the verified credential, never from the body.
func (h *UserHandler) Register(c echo.Context) error {
	principal := delivcontext.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrMissingCredential
	}

	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	account, err := h.uc.Register(c.Request().Context(), usecase.RegisterAccountInput{
		Principal: principal,
		Name:      input.Name,
		PhotoURL:  input.PhotoURL,
		Role:      input.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAccountResponse(account), "Account registered successfully")
}

// Login handles the login sync request, refreshing the account's login
// timestamp and display fields.
func (h *UserHandler) Login(c echo.Context) error {
	principal := delivcontext.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrMissingCredential
	}

	account, err := h.uc.SyncLogin(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account), "Login synced successfully")
}

// GoogleSignIn resolves a Google-verified principal to an account, creating
// one on first sign-in.
func (h *UserHandler) GoogleSignIn(c echo.Context) error {
	principal := delivcontext.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrMissingCredential
	}

	output, err := h.uc.GoogleSignIn(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Created {
		return response.Success(c, http.StatusCreated, newAccountResponse(output.Account), "Account created successfully")
	}

	return response.Success(c, http.StatusOK, newAccountResponse(output.Account), "Signed in successfully")
}

// Me returns the caller's own account.
func (h *UserHandler) Me(c echo.Context) error {
	principal := delivcontext.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrMissingCredential
	}

	account, err := h.uc.Me(c.Request().Context(), principal.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account), "")
}

// ManageUsers returns every account with a count, for the admin console.
func (h *UserHandler) ManageUsers(c echo.Context) error {
	output, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users": newAccountListResponse(output.Accounts),
		"count": output.Count,
	}, "")
}

type updateRoleStatusRequest struct {
	Role          *string `json:"role"`
	Status        *string `json:"status"`
	SuspendReason *string `json:"suspendReason"`
}

// UpdateRoleStatus handles the administrative role/status change.
func (h *UserHandler) UpdateRoleStatus(c echo.Context) error {
	var input updateRoleStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account update input")
	}

	account, err := h.uc.UpdateRoleStatus(c.Request().Context(), c.Param("id"), usecase.UpdateRoleStatusInput{
		Role:          input.Role,
		Status:        input.Status,
		SuspendReason: input.SuspendReason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account), "Account updated successfully")
}

// DeleteUser handles the administrative account deletion.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	caller := delivcontext.GetAccount(c)
	if caller == nil {
		return domainerrors.ErrForbidden
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), caller.ID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}
