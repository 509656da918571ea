package service

import (
	"context"
)

// Event kinds published by the core flows.
const (
	EventProfileCreated = "profile.created"
	EventRoomCreated    = "room.created"
)

// Event represents a domain event emitted after a successful store write.
// Publishing is fire-and-forget: a failed publish is logged by the caller and
// never fails the originating flow.
type Event struct {
	RequestID    string   `json:"request_id,omitempty"` // For distributed tracing
	Kind         string   `json:"kind"`                 // One of the Event* constants
	SubjectID    string   `json:"subject_id"`           // Row id of the created profile or room
	ExternalID   string   `json:"external_id,omitempty"`
	Participants []string `json:"participants,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish emits a domain event for async consumers.
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
