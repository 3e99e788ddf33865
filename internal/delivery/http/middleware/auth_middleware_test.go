package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"garflex/config"
	delivcontext "garflex/internal/delivery/context"
	"garflex/internal/domain/entity"
	domainerrors "garflex/internal/domain/errors"
	"garflex/internal/domain/repository"
	"garflex/internal/domain/service"
	mockRepo "garflex/internal/mocks/repository"
	mockSvc "garflex/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authFixtures holds all test dependencies for the authorization gate tests.
type authFixtures struct {
	middleware  *AuthMiddleware
	verifier    *mockSvc.MockIdentityVerifier
	accountRepo *mockRepo.MockAccountRepository
}

func createTestAuthMiddleware(t *testing.T, debug bool) authFixtures {
	verifier := mockSvc.NewMockIdentityVerifier(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return authFixtures{
		middleware:  NewAuthMiddleware(verifier, accountRepo, cfg, logger),
		verifier:    verifier,
		accountRepo: accountRepo,
	}
}

func newAuthTestContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func passthrough(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return nil
	}
}

func TestAuthenticate_MissingCredential(t *testing.T) {
	fx := createTestAuthMiddleware(t, false)

	var called bool
	err := fx.middleware.Authenticate(passthrough(&called))(newAuthTestContext(""))

	assert.Equal(t, domainerrors.ErrMissingCredential, err)
	assert.False(t, called)
	// The gate short-circuits before any verification or persistence call;
	// the mocks carry no expectations and would fail on use.
}

func TestAuthenticate_InvalidScheme(t *testing.T) {
	fx := createTestAuthMiddleware(t, false)

	var called bool
	err := fx.middleware.Authenticate(passthrough(&called))(newAuthTestContext("Basic dXNlcg=="))

	assert.Equal(t, domainerrors.ErrInvalidScheme, err)
	assert.False(t, called)
}

func TestAuthenticate_EmptyToken(t *testing.T) {
	fx := createTestAuthMiddleware(t, false)

	var called bool
	err := fx.middleware.Authenticate(passthrough(&called))(newAuthTestContext("Bearer "))

	assert.Equal(t, domainerrors.ErrEmptyToken, err)
	assert.False(t, called)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	fx := createTestAuthMiddleware(t, false)

	fx.verifier.On("VerifyToken", mock.Anything, "expired-token").
		Return(nil, service.ErrTokenExpired)

	var called bool
	err := fx.middleware.Authenticate(passthrough(&called))(newAuthTestContext("Bearer expired-token"))

	assert.Equal(t, domainerrors.ErrTokenExpired, err)
	assert.False(t, called)
}

func TestAuthenticate_MalformedToken(t *testing.T) {
	fx := createTestAuthMiddleware(t, false)

	fx.verifier.On("VerifyToken", mock.Anything, "garbage").
		Return(nil, service.ErrTokenMalformed)

	var called bool
	err := fx.middleware.Authenticate(passthrough(&called))(newAuthTestContext("Bearer garbage"))

	assert.Equal(t, domainerrors.ErrTokenMalformed, err)
	assert.False(t, called)
}

func TestAuthenticate_OtherFailureSuppressesDetail(t *testing.T) {
	fx := createTestAuthMiddleware(t, false)

	fx.verifier.On("VerifyToken", mock.Anything, "bad").
		Return(nil, errors.New("issuer mismatch"))

	err := fx.middleware.Authenticate(passthrough(new(bool)))(newAuthTestContext("Bearer bad"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "invalid token", appErr.Message())
	assert.Empty(t, appErr.Details())
}

func TestAuthenticate_OtherFailureDetailInDebug(t *testing.T) {
	fx := createTestAuthMiddleware(t, true)

	fx.verifier.On("VerifyToken", mock.Anything, "bad").
		Return(nil, errors.New("issuer mismatch"))

	err := fx.middleware.Authenticate(passthrough(new(bool)))(newAuthTestContext("Bearer bad"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "invalid token", appErr.Message())
	assert.Contains(t, appErr.Details(), "issuer mismatch")
}

func TestAuthenticate_AttachesPrincipal(t *testing.T) {
	fx := createTestAuthMiddleware(t, false)

	principal := &entity.Principal{UID: "uid-1", Email: "user@example.com"}
	fx.verifier.On("VerifyToken", mock.Anything, "good").Return(principal, nil)

	c := newAuthTestContext("Bearer good")
	var called bool
	err := fx.middleware.Authenticate(passthrough(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, principal, delivcontext.GetPrincipal(c))
}

// Verification is read-only: the same unexpired token resolves to the same
// principal every time.
func TestAuthenticate_Idempotent(t *testing.T) {
	fx := createTestAuthMiddleware(t, false)

	principal := &entity.Principal{UID: "uid-1", Email: "user@example.com"}
	fx.verifier.On("VerifyToken", mock.Anything, "good").Return(principal, nil).Twice()

	first := newAuthTestContext("Bearer good")
	second := newAuthTestContext("Bearer good")
	handler := fx.middleware.Authenticate(passthrough(new(bool)))

	require.NoError(t, handler(first))
	require.NoError(t, handler(second))
	assert.Equal(t, delivcontext.GetPrincipal(first), delivcontext.GetPrincipal(second))
}

func withPrincipal(c echo.Context, email string) echo.Context {
	delivcontext.SetPrincipal(c, &entity.Principal{UID: "uid-1", Email: email})

	return c
}

func TestRequireRole_AccountNotFound(t *testing.T) {
	fx := createTestAuthMiddleware(t, false)

	fx.accountRepo.On("FindByEmail", mock.Anything, "user@example.com").
		Return(nil, repository.ErrNotFound)

	c := withPrincipal(newAuthTestContext(""), "user@example.com")
	err := fx.middleware.RequireRole(entity.RoleAdmin)(passthrough(new(bool)))(c)

	assert.Equal(t, domainerrors.ErrAccountNotFound, err)
}

func TestRequireRole_RoleMismatch(t *testing.T) {
	fx := createTestAuthMiddleware(t, false)

	fx.accountRepo.On("FindByEmail", mock.Anything, "user@example.com").
		Return(&entity.Account{Email: "user@example.com", Role: entity.RoleBuyer}, nil)

	c := withPrincipal(newAuthTestContext(""), "user@example.com")
	var called bool
	err := fx.middleware.RequireRole(entity.RoleAdmin)(passthrough(&called))(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "admin access required", appErr.Message())
	assert.False(t, called)
}

func TestRequireRole_AttachesAccount(t *testing.T) {
	fx := createTestAuthMiddleware(t, false)

	account := &entity.Account{ID: "acc-1", Email: "user@example.com", Role: entity.RoleManager}
	fx.accountRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(account, nil)

	c := withPrincipal(newAuthTestContext(""), "user@example.com")
	var called bool
	err := fx.middleware.RequireRole(entity.RoleManager)(passthrough(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, account, delivcontext.GetAccount(c))
}

func TestRequireRole_NoPrincipal(t *testing.T) {
	fx := createTestAuthMiddleware(t, false)

	err := fx.middleware.RequireRole(entity.RoleBuyer)(passthrough(new(bool)))(newAuthTestContext(""))

	assert.Equal(t, domainerrors.ErrMissingCredential, err)
}
