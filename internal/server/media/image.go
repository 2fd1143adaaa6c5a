// Package media resolves attached images: it classifies request input as an
// already-resolved URL or an inline payload, and uploads inline payloads to
// object storage in exchange for a durable URL.
package media

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/scrapbook/internal/common"
)

// ImageKind discriminates the two accepted image input shapes.
type ImageKind int

const (
	// KindResolvedURL is a dereferenceable address, stored verbatim.
	KindResolvedURL ImageKind = iota
	// KindInlinePayload is encoded image bytes that must be uploaded
	// before persistence.
	KindInlinePayload
)

// ImageInput is the parsed form of the image field of a request. Exactly one
// variant is populated: URL for KindResolvedURL, Data/ContentType for
// KindInlinePayload.
type ImageInput struct {
	Kind        ImageKind
	URL         string
	Data        []byte
	ContentType string
}

// defaultContentType is assumed for bare base64 payloads with no data-URI
// header.
const defaultContentType = "image/jpeg"

// ParseImageInput classifies s once, at the boundary.
//
// Accepted shapes:
//   - http:// or https:// URL -> KindResolvedURL
//   - data:<mime>;base64,<payload> -> KindInlinePayload with the declared type
//   - bare base64 -> KindInlinePayload with image/jpeg
//
// An undecodable payload is a validation error.
func ParseImageInput(s string) (*ImageInput, error) {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return &ImageInput{Kind: KindResolvedURL, URL: s}, nil
	}

	payload := s
	contentType := defaultContentType

	if strings.HasPrefix(s, "data:") {
		header, rest, found := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, fmt.Errorf("%w: unsupported data URI", common.ErrValidation)
		}
		if mime := strings.TrimSuffix(header, ";base64"); mime != "" {
			contentType = mime
		}
		payload = rest
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 image payload", common.ErrValidation)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image payload", common.ErrValidation)
	}

	return &ImageInput{Kind: KindInlinePayload, Data: data, ContentType: contentType}, nil
}
