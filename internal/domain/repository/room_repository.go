package repository

import (
	"context"

	"chatter/internal/domain/entity"
)

// RoomRepository defines the standard operations for room persistence.
type RoomRepository interface {
	// Insert persists a new room in a single store write. The store assigns
	// the row id and timestamps and writes them back onto the entity.
	Insert(ctx context.Context, room *entity.Room) error

	// ListByParticipant returns rooms whose participants contain the given
	// external id and whose privacy flag matches, capped at limit rows.
	// Store insertion order is preserved; an empty result is not an error.
	ListByParticipant(ctx context.Context, externalID string, private bool, limit int) ([]*entity.Room, error)
}
