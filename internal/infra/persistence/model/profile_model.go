// Package model contains the persistence representations of the domain
// entities, kept separate so bson concerns never leak into the domain.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileModel is the document stored in the profiles collection. A unique
// index on externalId enforces the one-profile-per-identity invariant at the
// store level.
type ProfileModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ExternalID string             `bson:"externalId"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	AvatarURL  string             `bson:"avatarUrl"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}
