// Package mongodb contains the concrete implementation of the persistence
// layer on top of the MongoDB document store.
package mongodb

import (
	"context"
	"log/slog"

	"chatter/config"
	"chatter/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	defaultProfilesCollection = "users"
	defaultRoomsCollection    = "chatrooms"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle and registers connect/disconnect
// with the application lifecycle. Index bootstrap runs on start, before the
// server begins accepting requests.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil {
		return nil, errors.New("mongo configuration is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			pingCtx, cancel := context.WithTimeout(startCtx, cfg.Timeout)
			defer cancel()

			if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(pingCtx, db, params.Config); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			disconnectCtx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(disconnectCtx), "failed to disconnect MongoDB")
		},
	})

	return db, nil
}

// ensureIndexes creates the indexes the repositories rely on. The unique
// index on externalId is the guard against two concurrent first sign-ins
// inserting two profiles for one identity.
func ensureIndexes(ctx context.Context, db *mongo.Database, cfg *config.Config) error {
	profiles := db.Collection(profilesCollection(cfg))
	_, err := profiles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "externalId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create unique externalId index")
	}

	rooms := db.Collection(roomsCollection(cfg))
	_, err = rooms.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "participants", Value: 1},
			{Key: "isPrivate", Value: 1},
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create room membership index")
	}

	return nil
}

func profilesCollection(cfg *config.Config) string {
	if cfg.Mongo != nil && cfg.Mongo.Collections.Profiles != "" {
		return cfg.Mongo.Collections.Profiles
	}

	return defaultProfilesCollection
}

func roomsCollection(cfg *config.Config) string {
	if cfg.Mongo != nil && cfg.Mongo.Collections.Rooms != "" {
		return cfg.Mongo.Collections.Rooms
	}

	return defaultRoomsCollection
}
