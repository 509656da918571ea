// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"chatter/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type ProfileUsecase interface {
	// SyncProfile reconciles an authenticated identity into exactly one
	// profile row. Repeat calls for the same identity are idempotent and
	// return the existing row unchanged; attribute updates on the provider
	// side are deliberately not propagated.
	SyncProfile(ctx context.Context, identity *entity.Identity) (*entity.Profile, error)

	// GetProfile returns the synchronized profile for the given external id.
	GetProfile(ctx context.Context, externalID string) (*entity.Profile, error)

	// ListCandidates returns every profile except the caller's own, for
	// counterpart selection during room creation. Single default page; not
	// designed for large directories.
	ListCandidates(ctx context.Context, excludeExternalID string) ([]*entity.Profile, error)
}
