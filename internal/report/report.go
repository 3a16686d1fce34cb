// Package report renders selected summaries as a styled PDF for download.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Entry is one summarized document selected for the report.
type Entry struct {
	Title     string   `json:"title"`
	Countries []string `json:"countries"`
	Summary   string   `json:"summary"`
	Source    string   `json:"source"`
}

// Brand palette.
var (
	gecfBlue  = [3]int{0, 75, 153}
	textDark  = [3]int{19, 52, 59}
	textGray  = [3]int{98, 108, 113}
	lineColor = [3]int{220, 220, 220}
)

const fontFamily = "Helvetica"

// Builder assembles a report document.
type Builder struct {
	pdf *fpdf.Fpdf
	now func() time.Time
}

func NewBuilder() *Builder {
	return newBuilder(time.Now)
}

func newBuilder(now func() time.Time) *Builder {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(now())
	pdf.SetModificationDate(now())
	b := &Builder{pdf: pdf, now: now}

	pdf.SetHeaderFunc(func() {
		pageW, _ := pdf.GetPageSize()
		pdf.SetFillColor(gecfBlue[0], gecfBlue[1], gecfBlue[2])
		pdf.Rect(0, 0, pageW, 35, "F")
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont(fontFamily, "B", 16)
		pdf.SetXY(15, 9)
		pdf.CellFormat(0, 8, "GECF Knowledge Insight Platform", "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 10)
		pdf.SetXY(15, 17)
		pdf.CellFormat(0, 8, "Automated News Summary Report", "", 0, "L", false, 0, "")
		pdf.SetY(12.5)
		pdf.SetFont(fontFamily, "", 9)
		pdf.CellFormat(0, 10, "Generated: "+b.now().Format("2006-01-02"), "", 0, "R", false, 0, "")
		pdf.Ln(35)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.SetTextColor(textGray[0], textGray[1], textGray[2])
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	return b
}

// AddEntry appends one report section: title, countries/source line, summary
// body, separator rule.
func (b *Builder) AddEntry(e Entry) {
	pdf := b.pdf
	pageW, _ := pdf.GetPageSize()

	pdf.SetFont(fontFamily, "B", 14)
	pdf.SetTextColor(gecfBlue[0], gecfBlue[1], gecfBlue[2])
	pdf.MultiCell(0, 8, e.Title, "", "L", false)
	pdf.Ln(3)

	// Countries left, source right, on one line.
	pdf.SetFont(fontFamily, "B", 9)
	pdf.SetTextColor(textDark[0], textDark[1], textDark[2])
	countries := "None"
	if len(e.Countries) > 0 {
		countries = strings.Join(e.Countries, ", ")
	}
	pdf.CellFormat(pageW/2, 8, "GECF Countries: "+countries, "", 0, "L", false, 0, "")

	pdf.SetFont(fontFamily, "I", 9)
	pdf.SetTextColor(textGray[0], textGray[1], textGray[2])
	source := ""
	if e.Source != "" && e.Source != "Unknown" {
		source = "Source: " + e.Source
	}
	pdf.CellFormat(0, 8, source, "", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont(fontFamily, "", 11)
	pdf.SetTextColor(textDark[0], textDark[1], textDark[2])
	pdf.MultiCell(0, 6, e.Summary, "", "L", false)

	pdf.Ln(10)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.SetLineWidth(0.5)
	y := pdf.GetY()
	pdf.Line(pdf.GetX(), y, pageW-15, y)
	pdf.Ln(10)
}

// Output writes the finished PDF.
func (b *Builder) Output(w io.Writer) error {
	return b.pdf.Output(w)
}
