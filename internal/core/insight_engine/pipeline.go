package insight_engine

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gecf-kip/insight/internal/core"
	"github.com/gecf-kip/insight/internal/models"
)

// Pipeline runs the full decode → filter → assemble → summarize sequence for
// one request and packages the result. It holds no per-request state and is
// safe for concurrent use.
type Pipeline struct {
	decoder    core.DocumentDecoder
	filter     *RelevanceFilter
	assembler  *ContextAssembler
	summarizer *Summarizer
}

func NewPipeline(decoder core.DocumentDecoder, filter *RelevanceFilter, assembler *ContextAssembler, summarizer *Summarizer) *Pipeline {
	return &Pipeline{decoder: decoder, filter: filter, assembler: assembler, summarizer: summarizer}
}

// Process runs the pipeline over all documents of one request. A document
// that fails to decode is logged, recorded in the result, and does not abort
// its siblings; only when every document fails is the first DecodeError
// returned. Provider failures abort the request with a classified
// SummarizationError.
func (p *Pipeline) Process(ctx context.Context, docs []*models.Document) (*models.SummaryResult, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents to process")
	}

	var (
		allPages    []models.Page
		infos       []models.DocumentInfo
		firstDecErr *core.DecodeError
		decoded     int
	)

	for _, doc := range docs {
		pages, err := p.decoder.Decode(ctx, doc)
		if err != nil {
			var decErr *core.DecodeError
			if errors.As(err, &decErr) {
				log.Printf("pipeline: %v", decErr)
				if firstDecErr == nil {
					firstDecErr = decErr
				}
				infos = append(infos, models.DocumentInfo{
					ID:       doc.ID,
					FileName: doc.FileName,
					Heading:  doc.FileName,
					Source:   "Unknown",
					Error:    decErr.Err.Error(),
				})
				continue
			}
			return nil, err
		}
		decoded++
		allPages = append(allPages, pages...)
		infos = append(infos, models.DocumentInfo{
			ID:        doc.ID,
			FileName:  doc.FileName,
			Heading:   DetectHeading(pages, doc.FileName),
			Source:    DetectSource(pages),
			PageCount: len(pages),
		})
	}

	if decoded == 0 {
		return nil, firstDecErr
	}

	filtered := p.filter.Filter(allPages)
	assembled := p.assembler.Assemble(filtered.Pages)

	summary, err := p.summarizer.Summarize(ctx, assembled.Context, filtered.Entities)
	if err != nil {
		return nil, err
	}

	result := &models.SummaryResult{
		Summary:    summary,
		Entities:   filtered.Entities,
		Thumbnails: assembled.Thumbnails,
		Documents:  infos,
	}
	if result.Entities == nil {
		result.Entities = []string{}
	}
	if result.Thumbnails == nil {
		result.Thumbnails = []models.Thumbnail{}
	}
	return result, nil
}
