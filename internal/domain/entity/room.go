package entity

import (
	"slices"
	"time"
)

// Room is a private two-party chat room. Participants holds exactly two
// distinct external identity ids. The pair is stored ordered (owner first)
// but membership is a set: visibility is decided by containment, never by
// position.
type Room struct {
	ID           string    // Store-assigned row id.
	Title        string    // Required, non-empty.
	Description  string    // Optional, bounded length.
	IsPrivate    bool      // Always true for rooms created by this service.
	Participants []string  // External identity ids of the two members.
	CreatedAt    time.Time // Timestamp assigned by the store on insert.
	UpdatedAt    time.Time // Timestamp assigned by the store on insert.
}

// HasParticipant reports whether the given external id is a member of the room.
func (r *Room) HasParticipant(externalID string) bool {
	return slices.Contains(r.Participants, externalID)
}
