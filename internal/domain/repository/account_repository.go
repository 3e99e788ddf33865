// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"garflex/internal/domain/entity"
)

// ErrNotFound is a domain-specific error returned when no document matches
// the given filter. For ownership-scoped mutations this deliberately covers
// both "absent" and "not yours".
var ErrNotFound = errors.New("document not found")

// ErrDuplicateKey is returned when an insert violates a unique index,
// e.g. two accounts sharing one email.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrInvalidID is returned when a caller-supplied identifier is not valid
// for the underlying store.
var ErrInvalidID = errors.New("invalid identifier")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// Create persists a new account. Returns ErrDuplicateKey when an account
	// with the same email already exists.
	Create(ctx context.Context, account *entity.Account) error

	// FindByEmail retrieves a single account by its unique email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID retrieves a single account by its storage identifier.
	FindByID(ctx context.Context, id string) (*entity.Account, error)

	// List retrieves all accounts, newest first.
	List(ctx context.Context) ([]*entity.Account, error)

	// Update replaces the stored account document. Fields cleared on the
	// entity (such as the suspend reason) are removed from the document.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account by its storage identifier.
	Delete(ctx context.Context, id string) error
}
