// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"chatter/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when no profile
// matches the queried external id.
var ErrProfileNotFound = errors.New("profile not found")

// ErrDuplicateProfile is returned by Insert when the store's uniqueness
// constraint on the external id rejects the row. This is how the concurrent
// first-sign-in race surfaces to the synchronizer.
var ErrDuplicateProfile = errors.New("profile already exists for external id")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByExternalID retrieves the profile mirroring the given identity.
	// Returns ErrProfileNotFound when no row matches.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Profile, error)

	// Insert persists a new profile. The store assigns the row id and
	// timestamps and writes them back onto the entity. Returns
	// ErrDuplicateProfile when a row with the same external id already exists.
	Insert(ctx context.Context, profile *entity.Profile) error

	// ListExcluding returns all profiles whose external id differs from the
	// given one, in store order, bounded by the store's default page.
	ListExcluding(ctx context.Context, externalID string) ([]*entity.Profile, error)
}
