package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMarginMM    = 15.0
	pdfTitleSize   = 18.0
	pdfHeaderSize  = 10.0
	pdfBodySize    = 12.0
	pdfFooterSize  = 9.0
	pdfLineHeight  = 6.0
	pdfTitleHeight = 10.0
)

// PDFFormatter renders the document as a single-column A4 PDF with a
// title, a metadata header, the generated body and a footer line.
type PDFFormatter struct{}

// Format renders the document into PDF bytes
func (f *PDFFormatter) Format(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginMM, pdfMarginMM, pdfMarginMM)
	pdf.AddPage()

	// Core fonts are latin-1 only, so translate the UTF-8 input
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := doc.Title
	if title == "" {
		title = "Generated Text"
	}

	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.SetTextColor(31, 119, 180)
	pdf.CellFormat(0, pdfTitleHeight, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", pdfHeaderSize)
	pdf.SetTextColor(90, 90, 90)
	pdf.MultiCell(0, pdfLineHeight-1, tr(fmt.Sprintf("Prompt: %s", doc.Prompt)), "", "L", false)
	pdf.CellFormat(0, pdfLineHeight-1, tr(fmt.Sprintf("Sentiment: %s    Style: %s", doc.Sentiment, doc.Style)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", pdfBodySize)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, pdfLineHeight, tr(doc.Body), "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", pdfFooterSize)
	pdf.SetTextColor(128, 128, 128)
	footer := fmt.Sprintf("Generated on %s · %d words",
		doc.CreatedAt.Format("2006-01-02 15:04:05"), doc.WordCount)
	pdf.CellFormat(0, pdfLineHeight-1, tr(footer), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	return buf.Bytes(), nil
}

// ContentType returns the MIME type for PDF downloads
func (f *PDFFormatter) ContentType() string {
	return "application/pdf"
}

// Extension returns the file extension without the dot
func (f *PDFFormatter) Extension() string {
	return "pdf"
}
