package insight_engine

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/go-pdf/fpdf"
)

// makePDF builds a PDF with one line of text per page. Each line is written
// as a single cell so extracted text keeps its spaces.
func makePDF(t *testing.T, pageTexts ...string) []byte {
	t.Helper()
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, txt := range pageTexts {
		doc.AddPage()
		doc.CellFormat(0, 10, txt, "", 1, "L", false, 0, "")
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("building fixture pdf: %v", err)
	}
	return buf.Bytes()
}

// makeMultilinePDF writes several lines onto each page.
func makeMultilinePDF(t *testing.T, pages ...[]string) []byte {
	t.Helper()
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, lines := range pages {
		doc.AddPage()
		for _, line := range lines {
			doc.CellFormat(0, 10, line, "", 1, "L", false, 0, "")
		}
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("building fixture pdf: %v", err)
	}
	return buf.Bytes()
}

// makeSplitRowPDF writes each cell side by side on a single line of a
// one-page PDF, so the text reaches the decoder as separate text objects.
func makeSplitRowPDF(t *testing.T, cells ...string) []byte {
	t.Helper()
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	for i, cell := range cells {
		ln := 0
		if i == len(cells)-1 {
			ln = 1
		}
		doc.CellFormat(45, 10, cell, "", ln, "L", false, 0, "")
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("building fixture pdf: %v", err)
	}
	return buf.Bytes()
}

// makePDFWithImage builds a one-page PDF carrying the given JPEG.
func makePDFWithImage(t *testing.T, text string, jpegData []byte) []byte {
	t.Helper()
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.CellFormat(0, 10, text, "", 1, "L", false, 0, "")

	opts := fpdf.ImageOptions{ImageType: "JPG"}
	doc.RegisterImageOptionsReader("embedded", opts, bytes.NewReader(jpegData))
	doc.ImageOptions("embedded", 10, 40, 100, 0, false, opts, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("building fixture pdf: %v", err)
	}
	return buf.Bytes()
}

// makeJPEG renders a solid-color JPEG of the given size.
func makeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 0, G: 75, B: 153, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding fixture jpeg: %v", err)
	}
	return buf.Bytes()
}

// stubLLM is a deterministic LLMProvider for pipeline tests.
type stubLLM struct {
	calls  int
	system string
	user   string
	reply  string
	err    error
	block  bool
}

func (s *stubLLM) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	s.system = systemPrompt
	s.user = userPrompt
	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}
