// Package models contains the persisted entities of the scrapbook server.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Todo is a single user-created record: free text, an optional category,
// a completion flag, and an optional attached image.
//
// Image always holds a resolved, dereferenceable URL. Inline payloads are
// accepted only as request input and are uploaded before persistence.
type Todo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Text      string             `bson:"text" json:"text"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Completed bool               `bson:"completed" json:"completed"`
	Image     *string            `bson:"image" json:"image"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// TodoPatch describes a partial update. A nil field means "leave the stored
// value untouched"; only non-nil fields enter the store mutation.
type TodoPatch struct {
	Text      *string
	Category  *string
	Completed *bool
	Image     *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *TodoPatch) IsEmpty() bool {
	return p.Text == nil && p.Category == nil && p.Completed == nil && p.Image == nil
}
