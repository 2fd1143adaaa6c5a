package todos

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dmitrijs2005/scrapbook/internal/server/models"
)

// ListOptions narrows a List call. Page is 1-based; Limit is the page size.
// An empty Category means no category filter.
type ListOptions struct {
	Page     int64
	Limit    int64
	Category string
}

// UpdateResult reports how many documents an update matched and modified.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, patch *models.TodoPatch, updatedAt time.Time) (*UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
