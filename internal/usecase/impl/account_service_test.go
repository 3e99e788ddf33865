package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"garflex/internal/domain/entity"
	domainerrors "garflex/internal/domain/errors"
	"garflex/internal/domain/repository"
	mockRepo "garflex/internal/mocks/repository"
	"garflex/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return accountServiceFixtures{
		service:     NewAccountService(accountRepo, logger),
		accountRepo: accountRepo,
	}
}

func testPrincipal() *entity.Principal {
	return &entity.Principal{
		UID:      "uid-1",
		Email:    "user@example.com",
		Name:     "Test User",
		PhotoURL: "https://example.com/avatar.png",
	}
}

func TestAccountService_Register_Defaults(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	var created *entity.Account
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Account)
			created.ID = "acc-1"
		}).
		Return(nil)

	account, err := fx.service.Register(ctx, usecase.RegisterAccountInput{
		Principal: testPrincipal(),
	})

	require.NoError(t, err)
	assert.Equal(t, "user@example.com", account.Email)
	assert.Equal(t, entity.RoleBuyer, account.Role)
	assert.Equal(t, entity.AccountStatusApproved, account.Status)
	assert.Equal(t, "Test User", account.Name)
	assert.Nil(t, account.SuspendReason)
}

func TestAccountService_Register_ExplicitRole(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	account, err := fx.service.Register(ctx, usecase.RegisterAccountInput{
		Principal: testPrincipal(),
		Name:      "Store Manager",
		Role:      "manager",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, account.Role)
	assert.Equal(t, "Store Manager", account.Name)
}

func TestAccountService_Register_UnknownRole(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterAccountInput{
		Principal: testPrincipal(),
		Role:      "superuser",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateKey)

	_, err := fx.service.Register(ctx, usecase.RegisterAccountInput{Principal: testPrincipal()})

	assert.Equal(t, domainerrors.ErrAccountAlreadyExists, err)
}

func TestAccountService_SyncLogin_ExistingAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	existing := &entity.Account{
		ID:     "acc-1",
		Email:  "user@example.com",
		Name:   "Old Name",
		Role:   entity.RoleBuyer,
		Status: entity.AccountStatusApproved,
	}
	fx.accountRepo.On("FindByEmail", ctx, "user@example.com").Return(existing, nil)
	fx.accountRepo.On("Update", ctx, existing).Return(nil)

	account, err := fx.service.SyncLogin(ctx, testPrincipal())

	require.NoError(t, err)
	assert.Equal(t, "Test User", account.Name)
	assert.False(t, account.LastLoginAt.IsZero())
}

func TestAccountService_SyncLogin_FirstLoginCreates(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByEmail", ctx, "user@example.com").Return(nil, repository.ErrNotFound)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	account, err := fx.service.SyncLogin(ctx, testPrincipal())

	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, account.Role)
	assert.Equal(t, entity.AccountStatusApproved, account.Status)
}

func TestAccountService_GoogleSignIn_Existing(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	existing := &entity.Account{ID: "acc-1", Email: "user@example.com"}
	fx.accountRepo.On("FindByEmail", ctx, "user@example.com").Return(existing, nil)

	output, err := fx.service.GoogleSignIn(ctx, testPrincipal())

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, existing, output.Account)
}

func TestAccountService_GoogleSignIn_FirstSignIn(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByEmail", ctx, "user@example.com").Return(nil, repository.ErrNotFound)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	output, err := fx.service.GoogleSignIn(ctx, testPrincipal())

	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, "user@example.com", output.Account.Email)
}

// A writer losing the concurrent first sign-in race hits the unique email
// index and must resolve to the winner's account, never a second row.
func TestAccountService_GoogleSignIn_LosesCreationRace(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	winner := &entity.Account{ID: "acc-1", Email: "user@example.com"}
	fx.accountRepo.On("FindByEmail", ctx, "user@example.com").Return(nil, repository.ErrNotFound).Once()
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateKey)
	fx.accountRepo.On("FindByEmail", ctx, "user@example.com").Return(winner, nil).Once()

	output, err := fx.service.GoogleSignIn(ctx, testPrincipal())

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, winner, output.Account)
}

func TestAccountService_UpdateRoleStatus_ApproveClearsSuspendReason(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	reason := "payment fraud"
	suspended := &entity.Account{
		ID:            "acc-1",
		Email:         "user@example.com",
		Role:          entity.RoleBuyer,
		Status:        entity.AccountStatusSuspended,
		SuspendReason: &reason,
	}
	fx.accountRepo.On("FindByID", ctx, "acc-1").Return(suspended, nil)
	fx.accountRepo.On("Update", ctx, suspended).Return(nil)

	status := "approved"
	account, err := fx.service.UpdateRoleStatus(ctx, "acc-1", usecase.UpdateRoleStatusInput{
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusApproved, account.Status)
	assert.Nil(t, account.SuspendReason)
}

func TestAccountService_UpdateRoleStatus_SuspendSetsReason(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	existing := &entity.Account{
		ID:     "acc-1",
		Email:  "user@example.com",
		Role:   entity.RoleManager,
		Status: entity.AccountStatusApproved,
	}
	fx.accountRepo.On("FindByID", ctx, "acc-1").Return(existing, nil)
	fx.accountRepo.On("Update", ctx, existing).Return(nil)

	status := "suspended"
	reason := "terms violation"
	account, err := fx.service.UpdateRoleStatus(ctx, "acc-1", usecase.UpdateRoleStatusInput{
		Status:        &status,
		SuspendReason: &reason,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusSuspended, account.Status)
	require.NotNil(t, account.SuspendReason)
	assert.Equal(t, reason, *account.SuspendReason)
}

func TestAccountService_UpdateRoleStatus_InvalidID(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByID", ctx, "zzz").Return(nil, repository.ErrInvalidID)

	_, err := fx.service.UpdateRoleStatus(ctx, "zzz", usecase.UpdateRoleStatusInput{})

	assert.Equal(t, domainerrors.ErrInvalidID, err)
}

func TestAccountService_DeleteAccount_SelfDeleteForbidden(t *testing.T) {
	fx := createTestAccountService(t)

	err := fx.service.DeleteAccount(context.Background(), "acc-1", "acc-1")

	assert.Equal(t, domainerrors.ErrSelfDeleteForbidden, err)
	fx.accountRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAccountService_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("Delete", ctx, "acc-2").Return(repository.ErrNotFound)

	err := fx.service.DeleteAccount(ctx, "acc-1", "acc-2")

	assert.Equal(t, domainerrors.ErrNotFound, err)
}

func TestAccountService_ListAccounts_ReturnsCount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("List", ctx).Return([]*entity.Account{{ID: "a"}, {ID: "b"}}, nil)

	output, err := fx.service.ListAccounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	assert.Len(t, output.Accounts, 2)
}
