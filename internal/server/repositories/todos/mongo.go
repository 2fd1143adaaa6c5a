// Package todos provides the Mongo-backed repository for item persistence.
package todos

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/scrapbook/internal/server/models"
	"github.com/dmitrijs2005/scrapbook/internal/server/shared/db"
)

// MongoRepository implements item storage over a lazily connected collection
// handle. The handle is acquired from the provider on every call; the
// provider memoizes it, so only the first call pays the connect cost.
type MongoRepository struct {
	provider db.CollectionProvider
}

// NewMongoRepository constructs a repository bound to the given provider.
func NewMongoRepository(provider db.CollectionProvider) *MongoRepository {
	return &MongoRepository{provider: provider}
}

// listFilter builds the List query filter. Category, when present, is the
// single supported field filter.
func listFilter(category string) bson.M {
	if category == "" {
		return bson.M{}
	}
	return bson.M{"category": category}
}

// listProjection limits returned fields to ones that are never large
// payloads. Image documents only ever hold a URL, so it is safe to include.
var listProjection = bson.M{
	"text":      1,
	"category":  1,
	"completed": 1,
	"image":     1,
	"createdAt": 1,
	"updatedAt": 1,
}

// setDocument builds the $set document for a partial update. Only fields
// present in the patch are included, so omitted fields keep their stored
// values. The updatedAt stamp is always refreshed.
func setDocument(patch *models.TodoPatch, updatedAt time.Time) bson.M {
	set := bson.M{"updatedAt": updatedAt}
	if patch.Text != nil {
		set["text"] = *patch.Text
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	return set
}

// List returns up to opts.Limit items starting at (opts.Page-1)*opts.Limit,
// in the store's natural insertion order. An empty page is not an error.
func (r *MongoRepository) List(ctx context.Context, opts ListOptions) ([]*models.Todo, error) {
	coll, err := r.provider.Collection(ctx)
	if err != nil {
		return nil, err
	}

	skip := (opts.Page - 1) * opts.Limit

	cursor, err := coll.Find(ctx, listFilter(opts.Category),
		options.Find().SetSkip(skip).SetLimit(opts.Limit).SetProjection(listProjection))
	if err != nil {
		return nil, fmt.Errorf("failed to select todos: %w", err)
	}
	defer cursor.Close(ctx)

	result := make([]*models.Todo, 0, opts.Limit)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode todos: %w", err)
	}
	return result, nil
}

// Create inserts the item and returns the store-assigned identifier.
func (r *MongoRepository) Create(ctx context.Context, todo *models.Todo) (primitive.ObjectID, error) {
	coll, err := r.provider.Collection(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	res, err := coll.InsertOne(ctx, todo)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert todo: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// Update applies the patch to the single document with the given id.
// Zero matches is reported through the result, not as an error.
func (r *MongoRepository) Update(ctx context.Context, id primitive.ObjectID, patch *models.TodoPatch, updatedAt time.Time) (*UpdateResult, error) {
	coll, err := r.provider.Collection(ctx)
	if err != nil {
		return nil, err
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": setDocument(patch, updatedAt)})
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return &UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// Delete removes the single document with the given id and returns the
// delete count.
func (r *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	coll, err := r.provider.Collection(ctx)
	if err != nil {
		return 0, err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete todo: %w", err)
	}
	return res.DeletedCount, nil
}
