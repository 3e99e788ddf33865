// Package mongodb contains the concrete implementation of the persistence
// layer using the official MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"garflex/config"
	"garflex/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

// Collection names
const (
	ColAccounts = "accounts"
	ColProducts = "products"
	ColOrders   = "orders"
)

const connectTimeout = 10 * time.Second

// Params defines the dependencies for the database handle.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Database wraps the shared MongoDB client and database handle. It is
// constructed once at startup and injected into every repository, and is
// disconnected through the fx lifecycle on shutdown.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB, verifies the connection and ensures the indexes
// the domain relies on.
func New(params Params) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	database := &Database{
		client: client,
		db:     client.Database(params.Config.Mongo.Database),
	}

	if err := database.ensureIndexes(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to ensure indexes")
	}

	params.Logger.Info("Connected to MongoDB",
		slog.String("database", params.Config.Mongo.Database))

	params.Append(fx.Hook{
		OnStop: database.stop,
	})

	return database, nil
}

// Collection returns a handle to the named collection.
func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *Database) stop(ctx context.Context) error {
	disconnectCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	return errors.WithStack(d.client.Disconnect(disconnectCtx))
}

// ensureIndexes creates the indexes the queries depend on. The unique email
// index on accounts makes concurrent first-logins safe: the losing writer of
// a check-then-insert race gets a duplicate key error instead of creating a
// second account for the same email.
func (d *Database) ensureIndexes(ctx context.Context) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		{ColAccounts, bson.D{{Key: "email", Value: 1}}, true},

		{ColProducts, bson.D{{Key: "created_by", Value: 1}}, false},
		{ColProducts, bson.D{{Key: "created_at", Value: -1}}, false},

		{ColOrders, bson.D{{Key: "buyer_email", Value: 1}}, false},
		{ColOrders, bson.D{{Key: "status", Value: 1}}, false},
		{ColOrders, bson.D{{Key: "created_at", Value: -1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := d.Collection(i.col).Indexes().CreateOne(ctx, model); err != nil {
			return errors.Wrapf(err, "create index on %s", i.col)
		}
	}

	return nil
}
