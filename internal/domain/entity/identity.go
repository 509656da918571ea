// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Identity is the descriptor of an externally authenticated account, as
// surfaced by the identity provider after sign-in. It is read-only to this
// service: the provider owns the account, we only mirror it.
type Identity struct {
	ExternalID string // The provider's stable unique id for the account (e.g., Firebase UID).
	Name       string // Display name reported by the provider. May be empty.
	Email      string // Email reported by the provider. May be empty.
	AvatarURL  string // Reference to the provider-hosted avatar image. May be empty.
}
