// Package firebase verifies identity tokens against Firebase Auth.
package firebase

import (
	"context"
	"log/slog"

	"chatter/config"
	"chatter/internal/domain/entity"
	domainerrors "chatter/internal/domain/errors"
	"chatter/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type verifier struct {
	client *auth.Client
	logger *slog.Logger
}

// NewVerifier creates an IdentityVerifier backed by a Firebase Auth client.
func NewVerifier(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &verifier{
		client: client,
		logger: logger,
	}, nil
}

// Verify checks the ID token signature and expiry with Firebase and maps the
// token claims onto the identity descriptor.
func (v *verifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		v.logger.Debug("ID token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("firebase rejected the token: " + err.Error())
	}

	return identityFromClaims(decoded.UID, decoded.Claims), nil
}

// identityFromClaims maps the provider's standard profile claims. Absent
// claims become empty strings.
func identityFromClaims(uid string, claims map[string]any) *entity.Identity {
	identity := &entity.Identity{ExternalID: uid}

	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if picture, ok := claims["picture"].(string); ok {
		identity.AvatarURL = picture
	}

	return identity
}
