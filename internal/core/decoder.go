package core

import (
	"context"

	"github.com/gecf-kip/insight/internal/models"
)

// DocumentDecoder turns a raw PDF document into its pages. Implementations
// return a DecodeError for malformed input; pages without a text layer carry
// an empty Text rather than an error.
type DocumentDecoder interface {
	Decode(ctx context.Context, doc *models.Document) ([]models.Page, error)
}
