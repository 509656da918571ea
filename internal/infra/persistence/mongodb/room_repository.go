package mongodb

import (
	"context"
	"time"

	"chatter/config"
	"chatter/internal/domain/entity"
	"chatter/internal/domain/repository"
	"chatter/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type roomRepository struct {
	collection *mongo.Collection
}

// NewRoomRepository creates a room repository backed by the rooms collection.
func NewRoomRepository(db *mongo.Database, cfg *config.Config) repository.RoomRepository {
	return &roomRepository{
		collection: db.Collection(roomsCollection(cfg)),
	}
}

func (r *roomRepository) Insert(ctx context.Context, room *entity.Room) error {
	now := time.Now().UTC()
	doc := model.RoomModel{
		Title:        room.Title,
		Description:  room.Description,
		IsPrivate:    room.IsPrivate,
		Participants: room.Participants,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result, err := r.collection.InsertOne(ctx, &doc)
	if err != nil {
		return errors.Wrap(err, "failed to insert room")
	}

	room.ID = insertedIDHex(result)
	room.CreatedAt = now
	room.UpdatedAt = now

	return nil
}

func (r *roomRepository) ListByParticipant(ctx context.Context, externalID string, private bool, limit int) ([]*entity.Room, error) {
	filter := bson.M{
		"participants": externalID,
		"isPrivate":    private,
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rooms by participant")
	}
	defer cursor.Close(ctx)

	var docs []model.RoomModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode rooms")
	}

	rooms := make([]*entity.Room, 0, len(docs))
	for i := range docs {
		rooms = append(rooms, roomToEntity(&docs[i]))
	}

	return rooms, nil
}

func roomToEntity(doc *model.RoomModel) *entity.Room {
	return &entity.Room{
		ID:           doc.ID.Hex(),
		Title:        doc.Title,
		Description:  doc.Description,
		IsPrivate:    doc.IsPrivate,
		Participants: doc.Participants,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

// insertedIDHex extracts the hex form of the ObjectID the store assigned on
// insert. Falls back to empty when the driver reports a different id type.
func insertedIDHex(result *mongo.InsertOneResult) string {
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}

	return ""
}
