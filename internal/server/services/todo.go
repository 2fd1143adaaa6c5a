// Package services implements the application logic of the scrapbook server:
// CRUD over the item collection with attached-media resolution.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dmitrijs2005/scrapbook/internal/common"
	"github.com/dmitrijs2005/scrapbook/internal/server/media"
	"github.com/dmitrijs2005/scrapbook/internal/server/models"
	"github.com/dmitrijs2005/scrapbook/internal/server/repositories/todos"
)

// maxPageSize caps caller-supplied limits.
const maxPageSize = 100

type TodoService struct {
	repo     todos.Repository
	uploader media.Uploader
	pageSize int64
	now      func() time.Time
}

func NewTodoService(repo todos.Repository, uploader media.Uploader, pageSize int64) *TodoService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &TodoService{
		repo:     repo,
		uploader: uploader,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// CreateParams carries the fields of a create request. Image, when present,
// is either an inline payload or an already-resolved URL.
type CreateParams struct {
	Text     string
	Category string
	Image    *string
}

// UpdateParams carries the fields of an update request. Nil fields are
// omitted from the stored mutation entirely.
type UpdateParams struct {
	ID        string
	Text      *string
	Category  *string
	Completed *bool
	Image     *string
}

// List returns one page of items in insertion order. Non-positive page
// values fall back to 1; non-positive limits fall back to the configured
// page size. An empty page signals "no more pages" to a paginating caller.
func (s *TodoService) List(ctx context.Context, page, limit int64, category string) ([]*models.Todo, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = s.pageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return s.repo.List(ctx, todos.ListOptions{Page: page, Limit: limit, Category: category})
}

// Create resolves the attached image (if any), builds the item with
// completed=false and fresh timestamps, and inserts it. The item is returned
// with its store-assigned identifier.
func (s *TodoService) Create(ctx context.Context, params CreateParams) (*models.Todo, error) {
	if strings.TrimSpace(params.Text) == "" {
		return nil, fmt.Errorf("%w: text is required", common.ErrValidation)
	}

	imageURL, err := s.resolveImage(ctx, params.Image)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	todo := &models.Todo{
		Text:      params.Text,
		Category:  params.Category,
		Completed: false,
		Image:     imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Create(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("error creating todo: %w", err)
	}

	todo.ID = id
	return todo, nil
}

// Update applies a partial update to the item with the given id. Only fields
// present in params reach the store; a zero-match update is not an error.
func (s *TodoService) Update(ctx context.Context, params UpdateParams) (*todos.UpdateResult, error) {
	id, err := parseID(params.ID)
	if err != nil {
		return nil, err
	}

	patch := &models.TodoPatch{
		Text:      params.Text,
		Category:  params.Category,
		Completed: params.Completed,
	}

	if params.Image != nil {
		imageURL, err := s.resolveImage(ctx, params.Image)
		if err != nil {
			return nil, err
		}
		patch.Image = imageURL
	}

	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", common.ErrValidation)
	}

	res, err := s.repo.Update(ctx, id, patch, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("error updating todo: %w", err)
	}
	return res, nil
}

// Delete removes the item with the given id and returns the delete count.
func (s *TodoService) Delete(ctx context.Context, rawID string) (int64, error) {
	id, err := parseID(rawID)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting todo: %w", err)
	}
	return n, nil
}

// resolveImage turns request image input into a stored value: nil stays nil,
// a resolved URL passes through verbatim, an inline payload is uploaded and
// replaced by the returned URL. The literal payload is never persisted.
func (s *TodoService) resolveImage(ctx context.Context, image *string) (*string, error) {
	if image == nil || *image == "" {
		return nil, nil
	}

	in, err := media.ParseImageInput(*image)
	if err != nil {
		return nil, err
	}

	if in.Kind == media.KindResolvedURL {
		return &in.URL, nil
	}

	url, err := s.uploader.Upload(ctx, in.Data, in.ContentType)
	if err != nil {
		return nil, fmt.Errorf("error uploading image: %w", err)
	}
	return &url, nil
}

// parseID validates the identifier format before any store access.
func parseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", common.ErrValidation, raw)
	}
	return id, nil
}
