// Package impl contains the application-specific business rules implementations.
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	accountRepo repository.AccountRepository,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Register creates an account for an authenticated principal. The email
// always comes from the verified credential; the body may supply display
// fields and a role, which defaults to buyer.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterAccountInput) (*entity.Account, error) {
	role := entity.RoleBuyer
	if input.Role != "" {
		role = entity.Role(input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrInvalidInput.WithDetails("unknown role: " + input.Role)
		}
	}

	name := input.Name
	if name == "" {
		name = input.Principal.Name
	}

	photoURL := input.PhotoURL
	if photoURL == "" {
		photoURL = input.Principal.PhotoURL
	}

	now := time.Now()
	account := &entity.Account{
		Email:       input.Principal.Email,
		Name:        name,
		PhotoURL:    photoURL,
		Role:        role,
		Status:      entity.AccountStatusApproved,
		CreatedAt:   now,
		UpdatedAt:   now,
		LastLoginAt: now,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrAccountAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.logger.Info("account registered", slog.String("email", account.Email), slog.String("role", account.Role.String()))

	return account, nil
}

// SyncLogin refreshes the account's login timestamp and display fields. An
// account missing on first login is created with buyer defaults.
func (srv *accountService) SyncLogin(ctx context.Context, principal *entity.Principal) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return srv.createFromPrincipal(ctx, principal)
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	now := time.Now()
	account.LastLoginAt = now
	account.UpdatedAt = now
	if principal.Name != "" {
		account.Name = principal.Name
	}
	if principal.PhotoURL != "" {
		account.PhotoURL = principal.PhotoURL
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to sync login")
	}

	return account, nil
}

// GoogleSignIn resolves the principal to an account, creating one on first
// sign-in. The check-then-insert sequence is not atomic; a writer losing the
// race hits the unique email index and re-reads the winner's document.
func (srv *accountService) GoogleSignIn(ctx context.Context, principal *entity.Principal) (*usecase.GoogleSignInOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, principal.Email)
	if err == nil {
		return &usecase.GoogleSignInOutput{Account: account, Created: false}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, errors.Wrap(err, "failed to find account")
	}

	created, err := srv.createFromPrincipal(ctx, principal)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountAlreadyExists) {
			// Lost a concurrent first sign-in. The winner's document is the account.
			existing, findErr := srv.accountRepo.FindByEmail(ctx, principal.Email)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to find account after duplicate sign-in")
			}

			return &usecase.GoogleSignInOutput{Account: existing, Created: false}, nil
		}

		return nil, err
	}

	return &usecase.GoogleSignInOutput{Account: created, Created: true}, nil
}

// Me returns the account matching the caller's email.
func (srv *accountService) Me(ctx context.Context, email string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// ListAccounts returns every account, newest first, with a count.
func (srv *accountService) ListAccounts(ctx context.Context) (*usecase.ListAccountsOutput, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return &usecase.ListAccountsOutput{Accounts: accounts, Count: len(accounts)}, nil
}

// UpdateRoleStatus applies an administrative role/status change. Setting the
// status to approved or pending clears any suspend reason.
func (srv *accountService) UpdateRoleStatus(ctx context.Context, id string, input usecase.UpdateRoleStatusInput) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapAccountLookupError(err)
	}

	if input.Role != nil {
		role := entity.Role(*input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrInvalidInput.WithDetails("unknown role: " + *input.Role)
		}
		account.Role = role
	}

	if input.Status != nil {
		status := entity.AccountStatus(*input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrInvalidInput.WithDetails("unknown status: " + *input.Status)
		}
		account.ApplyStatus(status, input.SuspendReason)
	}

	account.UpdatedAt = time.Now()

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, mapAccountLookupError(err)
	}

	srv.logger.Info("account updated",
		slog.String("id", account.ID),
		slog.String("role", account.Role.String()),
		slog.String("status", account.Status.String()),
	)

	return account, nil
}

// DeleteAccount removes an account by id. Administrators cannot delete their
// own account.
func (srv *accountService) DeleteAccount(ctx context.Context, callerID, id string) error {
	if callerID == id {
		return domainerrors.ErrSelfDeleteForbidden
	}

	if err := srv.accountRepo.Delete(ctx, id); err != nil {
		return mapAccountLookupError(err)
	}

	srv.logger.Info("account deleted", slog.String("id", id))

	return nil
}

// createFromPrincipal creates a first-login account with buyer defaults.
func (srv *accountService) createFromPrincipal(ctx context.Context, principal *entity.Principal) (*entity.Account, error) {
	now := time.Now()
	account := &entity.Account{
		Email:       principal.Email,
		Name:        principal.Name,
		PhotoURL:    principal.PhotoURL,
		Role:        entity.RoleBuyer,
		Status:      entity.AccountStatusApproved,
		CreatedAt:   now,
		UpdatedAt:   now,
		LastLoginAt: now,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrAccountAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.logger.Info("account created on first login", slog.String("email", account.Email))

	return account, nil
}

// mapAccountLookupError translates storage sentinels into the application
// error taxonomy.
func mapAccountLookupError(err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return domainerrors.ErrInvalidID
	case errors.Is(err, repository.ErrNotFound):
		return domainerrors.ErrNotFound
	default:
		return errors.Wrap(err, "account persistence failed")
	}
}
