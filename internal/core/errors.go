package core

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SummarizationKind classifies provider failures.
type SummarizationKind string

const (
	SummarizationTimeout   SummarizationKind = "timeout"
	SummarizationAuth      SummarizationKind = "auth"
	SummarizationRateLimit SummarizationKind = "rate_limit"
	SummarizationMalformed SummarizationKind = "malformed_response"
)

// DecodeError reports a malformed or unreadable document. Fatal for that
// document only; sibling documents in the same batch continue.
type DecodeError struct {
	DocumentID string
	FileName   string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode document %s (%s): %v", e.DocumentID, e.FileName, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ImageDecodeError reports a corrupt or unsupported embedded image. Fatal for
// that image only; the page and document continue.
type ImageDecodeError struct {
	PageOrdinal int
	Err         error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("decode image on page %d: %v", e.PageOrdinal, e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }

// SummarizationError reports a provider failure. Fatal for the whole request;
// no partial summary is returned.
type SummarizationError struct {
	Kind SummarizationKind
	Err  error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization failed (%s): %v", e.Kind, e.Err)
}

func (e *SummarizationError) Unwrap() error { return e.Err }

// ClassifySummarization wraps a provider error with its sub-kind. The Gemini
// client surfaces gRPC status codes by default and googleapi errors over REST,
// so both are inspected.
func ClassifySummarization(err error) *SummarizationError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &SummarizationError{Kind: SummarizationTimeout, Err: err}
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 401, 403:
			return &SummarizationError{Kind: SummarizationAuth, Err: err}
		case 429:
			return &SummarizationError{Kind: SummarizationRateLimit, Err: err}
		}
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.DeadlineExceeded:
			return &SummarizationError{Kind: SummarizationTimeout, Err: err}
		case codes.Unauthenticated, codes.PermissionDenied:
			return &SummarizationError{Kind: SummarizationAuth, Err: err}
		case codes.ResourceExhausted:
			return &SummarizationError{Kind: SummarizationRateLimit, Err: err}
		}
	}

	return &SummarizationError{Kind: SummarizationMalformed, Err: err}
}
