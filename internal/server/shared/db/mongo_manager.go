package db

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoManager lazily opens a connection to the document store and memoizes
// the resulting collection handle for the lifetime of the process. The first
// Collection call connects; later calls return the cached handle without
// re-validation. A failed connect leaves the cache empty so the next call
// retries from scratch. There is no retry backoff and no circuit breaker.
type MongoManager struct {
	uri        string
	database   string
	collection string

	mu     sync.Mutex
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoManager constructs a manager for the given connection string and
// database/collection names. No connection is opened until Collection is
// called.
func NewMongoManager(uri, database, collection string) *MongoManager {
	return &MongoManager{uri: uri, database: database, collection: collection}
}

// Collection returns the memoized collection handle, connecting on first use.
func (m *MongoManager) Collection(ctx context.Context) (*mongo.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.coll != nil {
		return m.coll, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return nil, fmt.Errorf("db connect error: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	m.client = client
	m.coll = client.Database(m.database).Collection(m.collection)
	return m.coll, nil
}

// Close disconnects the underlying client if a connection was ever opened.
func (m *MongoManager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}

	err := m.client.Disconnect(ctx)
	m.client = nil
	m.coll = nil
	return err
}
