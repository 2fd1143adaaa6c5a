package media

import "context"

// Uploader stores raw image bytes and returns a publicly dereferenceable
// URL. Implementations are fallible and potentially slow; callers must await
// the result before persisting anything derived from it.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}
