package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"garflex/config"
	delivcontext "garflex/internal/delivery/context"
	"garflex/internal/domain/entity"
	domainerrors "garflex/internal/domain/errors"
	"garflex/internal/domain/repository"
	"garflex/internal/domain/service"
	"garflex/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides the authorization gate every protected route
// passes through: credential extraction, identity verification and, for
// role-scoped routes, account resolution.
type AuthMiddleware struct {
	verifier    service.IdentityVerifier
	accountRepo repository.AccountRepository
	logger      *slog.Logger
	debug       bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(
	verifier service.IdentityVerifier,
	accountRepo repository.AccountRepository,
	cfg *config.Config,
	logger *slog.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:    verifier,
		accountRepo: accountRepo,
		logger:      logger,
		debug:       cfg.Env.Debug,
	}
}

// Authenticate validates the bearer credential and attaches the verified
// Principal to the request context. It reads but never writes persistent
// state, so the same credential resolves to the same Principal until expiry.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrMissingCredential
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if token == authHeader {
			return domainerrors.ErrInvalidScheme
		}
		if token == "" {
			return domainerrors.ErrEmptyToken
		}

		principal, err := m.verifier.VerifyToken(c.Request().Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				return domainerrors.ErrTokenExpired
			case errors.Is(err, service.ErrTokenMalformed):
				return domainerrors.ErrTokenMalformed
			default:
				// Verification detail is surfaced only in diagnostic mode.
				if m.debug {
					return domainerrors.ErrTokenInvalid.WithDetails(err.Error())
				}

				return domainerrors.ErrTokenInvalid
			}
		}

		delivcontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireRole is a middleware factory that resolves the caller's account and
// checks it against the required role. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	mismatch := domainerrors.NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		requiredRole.String()+" access required",
		"",
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := delivcontext.GetPrincipal(c)
			if principal == nil {
				return domainerrors.ErrMissingCredential
			}

			account, err := m.accountRepo.FindByEmail(c.Request().Context(), principal.Email)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domainerrors.ErrAccountNotFound
				}

				return errors.Wrap(err, "failed to resolve account")
			}

			if account.Role != requiredRole {
				m.logger.Warn("role mismatch",
					slog.String("email", account.Email),
					slog.String("role", account.Role.String()),
					slog.String("required", requiredRole.String()),
				)

				return mismatch
			}

			delivcontext.SetAccount(c, account)

			return next(c)
		}
	}
}
