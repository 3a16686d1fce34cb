package models

// Document represents one uploaded PDF held in memory for the lifetime of a
// single request.
type Document struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	Data     []byte `json:"-"`
}

// Page is one decoded page of a Document.
type Page struct {
	DocumentID string
	Ordinal    int // 1-based, document order
	Text       string
	Images     []RawImage
}

// RawImage is an embedded image as extracted from the PDF, prior to
// optimization. Width/Height are zero when the payload could not be probed.
type RawImage struct {
	PageOrdinal int
	Width       int
	Height      int
	Format      string // "jpg", "png", "tiff", ...
	Data        []byte
}

// Thumbnail is a bounded-dimension JPEG re-encoding of a RawImage, base64
// encoded for inline transport.
type Thumbnail struct {
	PageOrdinal int    `json:"page"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Data        string `json:"data"` // base64 JPEG
}

// DocumentInfo carries per-document metadata alongside the combined result.
type DocumentInfo struct {
	ID        string `json:"id"`
	FileName  string `json:"file_name"`
	Heading   string `json:"heading"`
	Source    string `json:"source"`
	PageCount int    `json:"page_count"`
	Error     string `json:"error,omitempty"` // set when this document failed to decode
}

// SummaryResult is the response bundle for one request.
type SummaryResult struct {
	Summary    string         `json:"summary"`
	Entities   []string       `json:"entities"`
	Thumbnails []Thumbnail    `json:"thumbnails"`
	Documents  []DocumentInfo `json:"documents"`
}
