// Package service defines contracts for capabilities provided by the
// infrastructure layer.
package service

import (
	"context"
	"errors"

	"garflex/internal/domain/entity"
)

// ErrTokenExpired is reported by the verifier when the credential was valid
// but its lifetime has passed.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenMalformed is reported by the verifier when the credential is not a
// structurally valid token.
var ErrTokenMalformed = errors.New("token malformed")

// IdentityVerifier exchanges an opaque bearer token for a verified Principal.
// Verification is read-only and deterministic: the same unexpired token
// always resolves to the same Principal.
type IdentityVerifier interface {
	// VerifyToken validates the token with the external identity provider
	// and returns the verified subject. Failures are ErrTokenExpired,
	// ErrTokenMalformed, or a provider error for any other rejection.
	VerifyToken(ctx context.Context, token string) (*entity.Principal, error)
}
