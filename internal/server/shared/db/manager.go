// Package db provides the connection manager for the document store.
package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionProvider hands out a live handle to the item collection.
// Implementations are expected to be safe for concurrent use and to reuse
// one connection across calls.
type CollectionProvider interface {
	Collection(ctx context.Context) (*mongo.Collection, error)
}
