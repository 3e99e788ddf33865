// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"garflex/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterAccountInput defines the data required to register a new account.
// Email, and the fallback name and photo, come from the verified principal;
// the body can override the display fields and request a role.
type RegisterAccountInput struct {
	Principal *entity.Principal
	Name      string
	PhotoURL  string
	Role      string // Optional; defaults to buyer when empty.
}

// UpdateRoleStatusInput defines an administrative account mutation. Nil
// fields are left unchanged.
type UpdateRoleStatusInput struct {
	Role          *string
	Status        *string
	SuspendReason *string
}

// --- Output DTOs ---

// GoogleSignInOutput returns the resolved account together with whether this
// call created it, so the handler can pick the right status code.
type GoogleSignInOutput struct {
	Account *entity.Account
	Created bool
}

// ListAccountsOutput returns all accounts plus their count, matching the
// admin list response shape.
type ListAccountsOutput struct {
	Accounts []*entity.Account
	Count    int
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates an account for an authenticated principal.
	Register(ctx context.Context, input RegisterAccountInput) (*entity.Account, error)

	// SyncLogin refreshes the account's login timestamp and display fields,
	// creating the account on first login.
	SyncLogin(ctx context.Context, principal *entity.Principal) (*entity.Account, error)

	// GoogleSignIn resolves the principal to an existing account or creates
	// one on first sign-in.
	GoogleSignIn(ctx context.Context, principal *entity.Principal) (*GoogleSignInOutput, error)

	// Me returns the account matching the caller's email.
	Me(ctx context.Context, email string) (*entity.Account, error)

	// ListAccounts returns every account, newest first, with a count.
	ListAccounts(ctx context.Context) (*ListAccountsOutput, error)

	// UpdateRoleStatus applies an administrative role/status change.
	UpdateRoleStatus(ctx context.Context, id string, input UpdateRoleStatusInput) (*entity.Account, error)

	// DeleteAccount removes an account. Administrators cannot delete their
	// own account.
	DeleteAccount(ctx context.Context, callerID, id string) error
}
