// Package insecure provides a development-only identity verifier that parses
// bearer tokens as JWTs without checking their signature. It lets the service
// run locally without Firebase credentials and must never be enabled in
// production.
package insecure

import (
	"context"
	"log/slog"

	"chatter/internal/domain/entity"
	domainerrors "chatter/internal/domain/errors"
	"chatter/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

type verifier struct {
	logger *slog.Logger
}

// NewVerifier creates the unverified-claims parser.
func NewVerifier(logger *slog.Logger) service.IdentityVerifier {
	logger.Warn("Using insecure identity verifier, tokens are NOT signature-checked")

	return &verifier{logger: logger}
}

// Verify parses the token claims without signature validation and maps the
// standard OpenID profile claims onto the identity descriptor.
func (v *verifier) Verify(_ context.Context, token string) (*entity.Identity, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("malformed token: " + err.Error())
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token has no subject claim")
	}

	identity := &entity.Identity{ExternalID: sub}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if picture, ok := claims["picture"].(string); ok {
		identity.AvatarURL = picture
	}

	return identity, nil
}
