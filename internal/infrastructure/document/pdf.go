// Package document renders printable PDFs: QR piece tags and shipping documents.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/skip2/go-qrcode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContentTypePDF is the MIME type of rendered documents
const ContentTypePDF = "application/pdf"

// A4 portrait geometry in millimetres
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 12.0
)

// Label sheet layout
const (
	labelCols = 2
	labelRows = 4
	labelGap  = 4.0
)

// Renderer renders labels and documents with gofpdf
type Renderer struct {
	title cases.Caser
}

// NewRenderer creates a new Renderer
func NewRenderer() *Renderer {
	return &Renderer{title: cases.Title(language.English)}
}

func (r *Renderer) newPDF(title string) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator("precast-erp", true)
	pdf.SetMargins(margin, margin, margin)
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

// RenderLabels prints labels eight to an A4 page, each with a QR code of its Code
func (r *Renderer) RenderLabels(title string, labels []common.Label) ([]byte, error) {
	pdf, tr := r.newPDF(title)
	pdf.SetAutoPageBreak(false, 0)

	labelW := (pageWidth - 2*margin - float64(labelCols-1)*labelGap) / labelCols
	labelH := (pageHeight - 2*margin - float64(labelRows-1)*labelGap) / labelRows
	qrSize := labelH * 0.6
	perPage := labelCols * labelRows

	if len(labels) == 0 {
		pdf.AddPage()
	}
	for i, label := range labels {
		if i%perPage == 0 {
			pdf.AddPage()
		}
		pos := i % perPage
		x := margin + float64(pos%labelCols)*(labelW+labelGap)
		y := margin + float64(pos/labelCols)*(labelH+labelGap)

		pdf.SetDrawColor(160, 160, 160)
		pdf.Rect(x, y, labelW, labelH, "D")

		png, err := qrcode.Encode(label.Code, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("failed to encode qr code for %s: %w", label.Code, err)
		}
		name := fmt.Sprintf("qr_%d", i)
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
		pdf.ImageOptions(name, x+3, y+(labelH-qrSize)/2, qrSize, qrSize, false, opts, 0, "")

		textX := x + qrSize + 6
		textW := labelW - qrSize - 9
		pdf.SetXY(textX, y+6)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(textW, 8, tr(label.Title), "", 2, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, line := range label.Lines {
			pdf.SetX(textX)
			pdf.CellFormat(textW, 5, tr(line), "", 2, "L", false, 0, "")
		}
		pdf.SetXY(x, y+labelH-6)
		pdf.SetFont("Courier", "", 7)
		pdf.CellFormat(labelW, 4, label.Code, "", 0, "C", false, 0, "")
	}
	return output(pdf)
}

// RenderDocument prints a form: title and number, header fields, the line table,
// totals, signature blocks and a footer
func (r *Renderer) RenderDocument(doc common.Document) ([]byte, error) {
	title := r.title.String(strings.ToLower(doc.Title))
	pdf, tr := r.newPDF(title)
	pdf.SetAutoPageBreak(true, margin)
	if doc.Footer != "" {
		pdf.SetFooterFunc(func() {
			pdf.SetY(-margin)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(0, 5, tr(doc.Footer), "", 0, "C", false, 0, "")
		})
	}
	pdf.AddPage()
	contentW := pageWidth - 2*margin

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW/2, 10, tr(title), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW/2, 10, tr(doc.Number), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	labelW := 40.0
	for _, f := range doc.Fields {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelW, 6, tr(f.Label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(contentW-labelW, 6, tr(f.Value), "", "L", false)
	}
	pdf.Ln(4)

	if len(doc.Table.Headers) > 0 {
		writeTable(pdf, tr, doc.Table, contentW)
	}

	if len(doc.Totals) > 0 {
		pdf.Ln(2)
		for _, f := range doc.Totals {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(contentW-40, 6, tr(f.Label), "", 0, "R", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(40, 6, tr(f.Value), "", 1, "R", false, 0, "")
		}
	}

	if len(doc.Signatures) > 0 {
		pdf.Ln(16)
		w := contentW / float64(len(doc.Signatures))
		y := pdf.GetY()
		for i, who := range doc.Signatures {
			x := margin + float64(i)*w
			pdf.Line(x+4, y, x+w-4, y)
			pdf.SetXY(x, y+1)
			pdf.SetFont("Helvetica", "", 9)
			pdf.CellFormat(w, 5, tr(who), "", 0, "C", false, 0, "")
		}
	}
	return output(pdf)
}

func writeTable(pdf *gofpdf.Fpdf, tr func(string) string, table common.Table, width float64) {
	colW := width / float64(len(table.Headers))
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range table.Headers {
		pdf.CellFormat(colW, 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range table.Rows {
		for i := range table.Headers {
			var cell string
			if i < len(row) && row[i] != nil {
				cell = fmt.Sprint(row[i])
			}
			pdf.CellFormat(colW, 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

var _ common.DocumentRenderer = (*Renderer)(nil)
