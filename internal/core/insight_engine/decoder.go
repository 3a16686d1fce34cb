package insight_engine

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"math"
	"sort"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/gecf-kip/insight/internal/core"
	"github.com/gecf-kip/insight/internal/models"
)

// Embedded images smaller than this on either edge are decorative (icons,
// bullets, logos) and are not worth a thumbnail.
const (
	minImageWidth  = 100
	minImageHeight = 100
)

var _ core.DocumentDecoder = (*PDFDecoder)(nil)

// PDFDecoder extracts per-page text and embedded raster images from a PDF
// byte buffer. Pages without a text layer yield an empty string, never an
// error.
type PDFDecoder struct{}

func NewPDFDecoder() *PDFDecoder { return &PDFDecoder{} }

func (d *PDFDecoder) Decode(ctx context.Context, doc *models.Document) ([]models.Page, error) {
	if len(doc.Data) == 0 {
		return nil, &core.DecodeError{DocumentID: doc.ID, FileName: doc.FileName, Err: fmt.Errorf("empty document")}
	}

	r, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return nil, &core.DecodeError{DocumentID: doc.ID, FileName: doc.FileName, Err: fmt.Errorf("open pdf: %w", err)}
	}

	// Image extraction failures degrade to a text-only document.
	imagesByPage, err := d.extractImages(doc.Data)
	if err != nil {
		log.Printf("decoder: image extraction failed for %s (%s): %v", doc.ID, doc.FileName, err)
		imagesByPage = nil
	}

	pageCount := r.NumPage()
	pages := make([]models.Page, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := ""
		p := r.Page(i)
		if !p.V.IsNull() {
			text = pageText(doc.ID, i, p)
		}
		pages = append(pages, models.Page{
			DocumentID: doc.ID,
			Ordinal:    i,
			Text:       text,
			Images:     imagesByPage[i],
		})
	}
	return pages, nil
}

// pageText rebuilds a page's text layer with one line per baseline, so
// heading and source heuristics can reason about lines. Pages without a text
// layer yield "".
func pageText(docID string, ordinal int, p pdf.Page) (text string) {
	// Content panics on malformed page streams.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("decoder: text extraction failed for %s page %d: %v", docID, ordinal, r)
			text = ""
		}
	}()

	frags := p.Content().Text
	if len(frags) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, row := range groupTextRows(frags) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeTextRow(&sb, row)
	}
	return strings.TrimSpace(sb.String())
}

// groupTextRows buckets text fragments by baseline and orders them for
// reading: top of page first (PDF y axis points up), left to right within a
// row.
func groupTextRows(frags []pdf.Text) [][]pdf.Text {
	byY := make(map[int][]pdf.Text)
	var ys []int
	for _, t := range frags {
		y := int(math.Round(t.Y))
		if _, ok := byY[y]; !ok {
			ys = append(ys, y)
		}
		byY[y] = append(byY[y], t)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))

	rows := make([][]pdf.Text, 0, len(ys))
	for _, y := range ys {
		row := byY[y]
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
		rows = append(rows, row)
	}
	return rows
}

// writeTextRow joins one row's fragments. Fragments come back per glyph, so
// spaces inside a text run are real glyphs; a horizontal gap wider than a
// quarter of the font size marks a break between separate text objects and
// gets a space of its own.
func writeTextRow(sb *strings.Builder, row []pdf.Text) {
	lastEnd := math.Inf(-1)
	lastGlyph := ""
	for _, frag := range row {
		threshold := frag.FontSize * 0.25
		if threshold <= 0 {
			threshold = 1
		}
		if lastGlyph != "" && lastGlyph != " " && !strings.HasPrefix(frag.S, " ") && frag.X-lastEnd > threshold {
			sb.WriteByte(' ')
		}
		sb.WriteString(frag.S)
		lastEnd = frag.X + frag.W
		lastGlyph = frag.S
	}
}

// extractImages pulls embedded raster images out of the PDF, keyed by 1-based
// page number and kept in a stable object-number order.
func (d *PDFDecoder) extractImages(data []byte) (map[int][]models.RawImage, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pageImages, err := api.ExtractImagesRaw(bytes.NewReader(data), nil, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu extract: %w", err)
	}

	out := make(map[int][]models.RawImage)
	for _, byObjNr := range pageImages {
		objNrs := make([]int, 0, len(byObjNr))
		for objNr := range byObjNr {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			img := byObjNr[objNr]
			raw, err := io.ReadAll(img)
			if err != nil {
				log.Printf("decoder: reading image obj %d on page %d: %v", objNr, img.PageNr, err)
				continue
			}
			width, height := probeDimensions(raw)
			if width > 0 && (width < minImageWidth || height < minImageHeight) {
				continue
			}
			out[img.PageNr] = append(out[img.PageNr], models.RawImage{
				PageOrdinal: img.PageNr,
				Width:       width,
				Height:      height,
				Format:      img.FileType,
				Data:        raw,
			})
		}
	}
	return out, nil
}

// probeDimensions returns 0,0 when the payload is not a decodable raster
// image; the optimizer rejects such images later.
func probeDimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
