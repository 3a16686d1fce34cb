package insight_engine

import (
	"errors"
	"log"
	"strings"

	"github.com/gecf-kip/insight/internal/core"
	"github.com/gecf-kip/insight/internal/models"
)

// pageSeparator joins page texts inside the assembled context.
const pageSeparator = "\n\n"

// Assembled is the prompt context plus the thumbnails accompanying the
// result.
type Assembled struct {
	Context    string
	Thumbnails []models.Thumbnail
}

// ContextAssembler concatenates relevant page text up to a character budget
// and optimizes up to maxThumbnails embedded images from those pages.
type ContextAssembler struct {
	maxChars      int
	maxThumbnails int
	optimizer     *ImageOptimizer
}

func NewContextAssembler(maxChars, maxThumbnails int, optimizer *ImageOptimizer) *ContextAssembler {
	return &ContextAssembler{maxChars: maxChars, maxThumbnails: maxThumbnails, optimizer: optimizer}
}

// Assemble builds the context from relevant pages in order. Truncation
// happens only at page boundaries: the first page that would push the context
// past the budget ends assembly. Zero relevant pages yield an empty context,
// which is a valid state, not an error.
func (a *ContextAssembler) Assemble(relevant []models.Page) Assembled {
	var (
		sb        strings.Builder
		assembled Assembled
	)

	for _, page := range relevant {
		need := len(page.Text)
		if sb.Len() > 0 {
			need += len(pageSeparator)
		}
		if sb.Len()+need > a.maxChars {
			break
		}
		if sb.Len() > 0 {
			sb.WriteString(pageSeparator)
		}
		sb.WriteString(page.Text)
	}
	assembled.Context = sb.String()

	// Thumbnails come from relevant pages only, in page order, capped at
	// maxThumbnails. A corrupt image is skipped, not fatal.
	for _, page := range relevant {
		for _, raw := range page.Images {
			if len(assembled.Thumbnails) >= a.maxThumbnails {
				return assembled
			}
			thumb, err := a.optimizer.Optimize(raw)
			if err != nil {
				var imgErr *core.ImageDecodeError
				if errors.As(err, &imgErr) {
					log.Printf("assembler: skipping image on page %d of %s: %v", raw.PageOrdinal, page.DocumentID, err)
					continue
				}
				log.Printf("assembler: unexpected optimizer error: %v", err)
				continue
			}
			assembled.Thumbnails = append(assembled.Thumbnails, *thumb)
		}
	}
	return assembled
}
