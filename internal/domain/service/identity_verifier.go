// Package service defines the interfaces for external capabilities consumed
// by the use case layer.
package service

import (
	"context"

	"chatter/internal/domain/entity"
)

// IdentityVerifier verifies a bearer token issued by the external identity
// provider and returns the identity descriptor it asserts. The provider owns
// the session lifecycle; this service only consumes the resulting token.
type IdentityVerifier interface {
	// Verify checks the token and extracts the identity descriptor.
	// Absent optional attributes (name, email, avatar) come back as empty
	// strings.
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}
