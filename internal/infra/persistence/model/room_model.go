package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoomModel is the document stored in the rooms collection. Participants is
// an ordered array of external identity ids; membership queries match by
// array containment, not position.
type RoomModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	IsPrivate    bool               `bson:"isPrivate"`
	Participants []string           `bson:"participants"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}
