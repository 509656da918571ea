// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"chatter/internal/domain/entity"
)

// --- Input DTOs ---

// CreateRoomInput defines the data required to create a private room.
// OwnerExternalID comes from the verified identity, never from the request
// body.
type CreateRoomInput struct {
	Title                 string
	Description           string
	OwnerExternalID       string
	CounterpartExternalID string
}

// RoomUsecase defines the interface for room-related business operations.
type RoomUsecase interface {
	// CreateRoom validates the input and creates a private two-party room in
	// a single store write. Validation failures are raised before any store
	// call.
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*entity.Room, error)

	// ListVisibleRooms returns the private rooms whose membership contains
	// the given external id, in store order, capped at the configured page
	// size. An empty result is a valid outcome, not an error.
	ListVisibleRooms(ctx context.Context, currentExternalID string) ([]*entity.Room, error)
}
