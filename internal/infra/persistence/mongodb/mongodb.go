// Package mongodb contains the concrete implementation of the
// persistence layer using the official MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"

	"pantry/config"
	"pantry/internal/domain/lifecycle"
	"pantry/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Client wraps the process-wide MongoDB client and database handle.
// It is opened once at startup and closed at shutdown.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	cfg    *config.Config
	logger *slog.Logger
}

// New creates the shared MongoDB client and registers its lifecycle hooks.
func New(params Params) (*Client, error) {
	connectCtx, cancel := context.WithTimeout(context.Background(), params.Config.Mongo.ConnectTimeout)
	defer cancel()

	mongoClient, err := mongo.Connect(connectCtx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	client := &Client{
		client: mongoClient,
		db:     mongoClient.Database(params.Config.Mongo.Database),
		cfg:    params.Config,
		logger: params.Logger,
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Closing MongoDB connection")

			return errors.Wrap(mongoClient.Disconnect(ctx), "failed to disconnect MongoDB")
		},
	})

	return client, nil
}

// FoodCollection returns the configured foods collection.
func (c *Client) FoodCollection() *mongo.Collection {
	return c.db.Collection(c.cfg.Mongo.FoodCollection)
}

// IngredientCollection returns the configured ingredients collection.
func (c *Client) IngredientCollection() *mongo.Collection {
	return c.db.Collection(c.cfg.Mongo.IngredientCollection)
}
