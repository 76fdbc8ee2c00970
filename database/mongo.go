package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Mongo is the process-scoped connection handle. It is created once in main
// and passed down explicitly; nothing in this package holds global state.
type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect dials the deployment behind uri and verifies the connection with
// a ping before returning the handle.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect failed: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return &Mongo{
		client:   client,
		database: client.Database(dbName),
	}, nil
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
