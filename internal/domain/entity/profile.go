package entity

import "time"

// Profile is the application-owned record mirroring an external Identity.
// Exactly one Profile exists per ExternalID; the synchronizer creates it on
// first sign-in and never mutates it afterwards, so Name/Email/AvatarURL are
// snapshots taken at synchronization time.
type Profile struct {
	ID         string    // Store-assigned row id, immutable once created.
	ExternalID string    // The identity provider's account id. Unique across profiles.
	Name       string    // Display name copied from the identity at sync time.
	Email      string    // Email copied from the identity at sync time.
	AvatarURL  string    // Avatar reference copied from the identity at sync time.
	CreatedAt  time.Time // Timestamp assigned by the store on insert.
	UpdatedAt  time.Time // Timestamp assigned by the store on insert.
}

// NewProfileFromIdentity builds the profile row inserted on first sign-in.
// Absent identity attributes are stored as empty strings.
func NewProfileFromIdentity(identity *Identity) *Profile {
	return &Profile{
		ExternalID: identity.ExternalID,
		Name:       identity.Name,
		Email:      identity.Email,
		AvatarURL:  identity.AvatarURL,
	}
}
