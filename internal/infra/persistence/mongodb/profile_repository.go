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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listProfilesLimit = 100

type profileRepository struct {
	collection *mongo.Collection
}

// NewProfileRepository creates a profile repository backed by the profiles
// collection.
func NewProfileRepository(db *mongo.Database, cfg *config.Config) repository.ProfileRepository {
	return &profileRepository{
		collection: db.Collection(profilesCollection(cfg)),
	}
}

func (r *profileRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Profile, error) {
	var doc model.ProfileModel
	err := r.collection.FindOne(ctx, bson.M{"externalId": externalID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by external id")
	}

	return profileToEntity(&doc), nil
}

func (r *profileRepository) Insert(ctx context.Context, profile *entity.Profile) error {
	now := time.Now().UTC()
	doc := model.ProfileModel{
		ExternalID: profile.ExternalID,
		Name:       profile.Name,
		Email:      profile.Email,
		AvatarURL:  profile.AvatarURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result, err := r.collection.InsertOne(ctx, &doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateProfile
		}

		return errors.Wrap(err, "failed to insert profile")
	}

	profile.ID = insertedIDHex(result)
	profile.CreatedAt = now
	profile.UpdatedAt = now

	return nil
}

func (r *profileRepository) ListExcluding(ctx context.Context, externalID string) ([]*entity.Profile, error) {
	filter := bson.M{"externalId": bson.M{"$ne": externalID}}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(listProfilesLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}
	defer cursor.Close(ctx)

	var docs []model.ProfileModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode profiles")
	}

	profiles := make([]*entity.Profile, 0, len(docs))
	for i := range docs {
		profiles = append(profiles, profileToEntity(&docs[i]))
	}

	return profiles, nil
}

func profileToEntity(doc *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:         doc.ID.Hex(),
		ExternalID: doc.ExternalID,
		Name:       doc.Name,
		Email:      doc.Email,
		AvatarURL:  doc.AvatarURL,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
