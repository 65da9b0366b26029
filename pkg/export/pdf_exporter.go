package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidthLandscape = 277.0
	defaultColumnWidth = 30.0
)

// PDFExporter renders a Table as a landscape A4 table.
type PDFExporter struct {
	now func() time.Time
}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{now: time.Now}
}

// ContentType is the media type of Render's output.
func (e *PDFExporter) ContentType() string { return "application/pdf" }

// Extension is the file extension of Render's output.
func (e *PDFExporter) Extension() string { return "pdf" }

// Render creates the PDF document. Columns without a width share what is left
// of the page after the fixed-width columns are placed.
func (e *PDFExporter) Render(t Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	widths := columnWidths(t.Columns)

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Arial", "I", 7)
		pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s  |  page %d", e.now().UTC().Format(time.RFC3339), pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	if t.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(t.Title), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	header := func() {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(230, 236, 245)
		for i, col := range t.Columns {
			title := col.Title
			if title == "" {
				title = col.Key
			}
			pdf.CellFormat(widths[i], 7, tr(title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 7)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range t.Rows {
		if pdf.GetY()+6 > pageHeight-bottom {
			pdf.AddPage()
			header()
		}
		for i, col := range t.Columns {
			pdf.CellFormat(widths[i], 6, tr(fit(pdf, row[col.Key], widths[i])), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func columnWidths(cols []Column) []float64 {
	widths := make([]float64, len(cols))
	fixed, flexible := 0.0, 0
	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			fixed += col.Width
			continue
		}
		flexible++
	}
	if flexible == 0 {
		return widths
	}
	share := (pageWidthLandscape - fixed) / float64(flexible)
	if share < 10 {
		share = defaultColumnWidth
	}
	for i := range widths {
		if widths[i] == 0 {
			widths[i] = share
		}
	}
	return widths
}

// fit truncates value with an ellipsis so it stays inside one cell.
func fit(pdf *gofpdf.Fpdf, value string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(value) <= limit {
		return value
	}
	runes := []rune(value)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
