// Package firebase provides the identity-verifier implementation backed by
// Firebase Authentication.
package firebase

import (
	"context"
	"log/slog"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"garflex/config"
	"garflex/internal/domain/entity"
	"garflex/internal/domain/service"

	"github.com/pkg/errors"
)

// verifier is a concrete implementation of the IdentityVerifier interface
// that delegates credential verification to Firebase Authentication.
type verifier struct {
	client *auth.Client
	logger *slog.Logger
}

// NewVerifier constructs the Firebase-backed identity verifier. It connects
// to the project configured under firebase.projectId, using the credentials
// file when one is configured and application-default credentials otherwise.
func NewVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase auth client")
	}

	return &verifier{client: client, logger: logger}, nil
}

// VerifyToken implements service.IdentityVerifier.
func (v *verifier) VerifyToken(ctx context.Context, token string) (*entity.Principal, error) {
	// A structurally broken credential never reaches the provider.
	if strings.Count(token, ".") != 2 {
		return nil, service.ErrTokenMalformed
	}

	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		if auth.IsIDTokenExpired(err) {
			return nil, service.ErrTokenExpired
		}

		v.logger.Warn("Token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify id token")
	}

	return principalFromToken(decoded), nil
}

// principalFromToken maps a verified Firebase token onto the domain Principal.
func principalFromToken(token *auth.Token) *entity.Principal {
	principal := &entity.Principal{
		UID:    token.UID,
		Claims: token.Claims,
	}

	if email, ok := token.Claims["email"].(string); ok {
		principal.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		principal.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		principal.PhotoURL = picture
	}

	return principal
}
