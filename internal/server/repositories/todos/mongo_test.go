package todos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dmitrijs2005/scrapbook/internal/server/models"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestListFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, listFilter(""))
	assert.Equal(t, bson.M{"category": "travel"}, listFilter("travel"))
}

func TestSetDocument_OnlyPresentFields(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		patch    *models.TodoPatch
		expected bson.M
	}{
		{
			name:     "completed only",
			patch:    &models.TodoPatch{Completed: boolptr(true)},
			expected: bson.M{"completed": true, "updatedAt": now},
		},
		{
			name:     "text only",
			patch:    &models.TodoPatch{Text: strptr("A")},
			expected: bson.M{"text": "A", "updatedAt": now},
		},
		{
			name: "all fields",
			patch: &models.TodoPatch{
				Text:      strptr("A"),
				Category:  strptr("travel"),
				Completed: boolptr(false),
				Image:     strptr("https://cdn/x.jpg"),
			},
			expected: bson.M{
				"text":      "A",
				"category":  "travel",
				"completed": false,
				"image":     "https://cdn/x.jpg",
				"updatedAt": now,
			},
		},
		{
			name:     "empty patch still stamps updatedAt",
			patch:    &models.TodoPatch{},
			expected: bson.M{"updatedAt": now},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, setDocument(tt.patch, now))
		})
	}
}

func TestSetDocument_NeverEmitsOmittedFields(t *testing.T) {
	// the partial-update contract: an omitted field must never appear in the
	// mutation, not even as a null
	set := setDocument(&models.TodoPatch{Completed: boolptr(true)}, time.Now())

	assert.NotContains(t, set, "text")
	assert.NotContains(t, set, "image")
	assert.NotContains(t, set, "category")
}

func TestListProjection_ExcludesNothingLarge(t *testing.T) {
	for _, field := range []string{"text", "category", "completed", "image", "createdAt", "updatedAt"} {
		assert.Contains(t, listProjection, field)
	}
}
