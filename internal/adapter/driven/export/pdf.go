package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
)

const (
	pageMargin   = 14.0
	contentWidth = 210.0 - 2*pageMargin
	rowHeight    = 6.5
	pageHeight   = 297.0
	footerHeight = 15.0
	// bodyBottom é o limite inferior das linhas, acima do rodapé.
	bodyBottom = pageHeight - footerHeight
)

// compressPDF pode ser desligado em testes para inspecionar o conteúdo.
var compressPDF = true

var (
	headerFillColor = [3]int{45, 130, 120}
	headerTextColor = [3]int{255, 255, 255}
	titleColor      = [3]int{40, 40, 40}
	mutedTextColor  = [3]int{100, 100, 100}
	bodyTextColor   = [3]int{50, 50, 50}
	stripeColor     = [3]int{245, 245, 245}
	totalsFillColor = [3]int{240, 240, 240}
	lineColor       = [3]int{200, 200, 200}
)

// WritePDF renders the document as an A4 portrait PDF, one Document page per PDF page.
// A Document page taller than the printable area continues on extra PDF pages,
// so no row is ever drawn under the footer.
func (r *ExportRepositoryImpl) WritePDF(w io.Writer, doc entity.Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, 15, pageMargin)
	pdf.SetAutoPageBreak(false, footerHeight)
	pdf.SetCompression(compressPDF)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	generated := doc.GeneratedAt.Format("January 2, 2006 15:04")
	footerBrand := r.brand
	if footerBrand == "" {
		footerBrand = "POS Sales Dashboard"
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(contentWidth/2, 10, tr(fmt.Sprintf("Generated by %s | %s", footerBrand, doc.GeneratedAt.Format("2006-01-02"))), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth/2, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	widths := columnWidths(doc.Columns)

	drawTableHeader := func() {
		pdf.SetFillColor(headerFillColor[0], headerFillColor[1], headerFillColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.SetFont("Arial", "B", 9)
		for i, col := range doc.Columns {
			pdf.CellFormat(widths[i], rowHeight+1, tr(col.Header), "", 0, string(col.Align), true, 0, "")
		}
		pdf.Ln(-1)
	}

	drawContinued := func() {
		pdf.SetFont("Arial", "I", 9)
		pdf.SetTextColor(mutedTextColor[0], mutedTextColor[1], mutedTextColor[2])
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s | %s (continued)", doc.Title, doc.PeriodLabel)), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	bodyStyle := func() {
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.SetFillColor(stripeColor[0], stripeColor[1], stripeColor[2])
	}

	for pageIndex, rows := range doc.Pages() {
		pdf.AddPage()

		if pageIndex == 0 {
			pdf.SetFont("Arial", "B", 20)
			pdf.SetTextColor(titleColor[0], titleColor[1], titleColor[2])
			pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "L", false, 0, "")

			pdf.SetFont("Arial", "", 11)
			pdf.SetTextColor(mutedTextColor[0], mutedTextColor[1], mutedTextColor[2])
			pdf.CellFormat(0, 6, tr(fmt.Sprintf("Period: %s", doc.PeriodLabel)), "", 1, "L", false, 0, "")
			pdf.CellFormat(0, 6, tr(fmt.Sprintf("Generated: %s", generated)), "", 1, "L", false, 0, "")
			for _, note := range doc.Notes {
				pdf.CellFormat(0, 6, tr(note), "", 1, "L", false, 0, "")
			}
			pdf.Ln(3)

			if doc.HasTotals() {
				drawTotals(pdf, tr, doc.Totals)
			}
		} else {
			drawContinued()
		}

		drawTableHeader()
		bodyStyle()

		if len(rows) == 0 {
			pdf.SetFont("Arial", "I", 9)
			pdf.CellFormat(contentWidth, rowHeight, "No data for this period", "B", 1, "C", false, 0, "")
		}
		for i, row := range rows {
			if pdf.GetY()+rowHeight > bodyBottom {
				pdf.AddPage()
				drawContinued()
				drawTableHeader()
				bodyStyle()
			}
			for c := range doc.Columns {
				value := ""
				if c < len(row) {
					value = row[c]
				}
				pdf.CellFormat(widths[c], rowHeight, tr(value), "B", 0, string(doc.Columns[c].Align), i%2 == 1, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("error writing PDF file: %w", err)
	}
	return nil
}

func drawTotals(pdf *gofpdf.Fpdf, tr func(string) string, totals []entity.Field) {
	boxHeight := 16.0
	x, y := pdf.GetX(), pdf.GetY()
	pdf.SetFillColor(totalsFillColor[0], totalsFillColor[1], totalsFillColor[2])
	pdf.Rect(x, y, contentWidth, boxHeight, "F")

	cellWidth := contentWidth / float64(len(totals))
	pdf.SetXY(x, y+2)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(mutedTextColor[0], mutedTextColor[1], mutedTextColor[2])
	for _, f := range totals {
		pdf.CellFormat(cellWidth, 5, tr(f.Label), "", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetX(x)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(titleColor[0], titleColor[1], titleColor[2])
	for _, f := range totals {
		pdf.CellFormat(cellWidth, 7, tr(f.Value), "", 0, "C", false, 0, "")
	}
	pdf.SetXY(x, y+boxHeight+6)
}

// columnWidths distributes the printable width proportionally to Column.Width.
func columnWidths(cols []entity.Column) []float64 {
	total := 0.0
	for _, c := range cols {
		w := c.Width
		if w <= 0 {
			w = 1
		}
		total += w
	}
	widths := make([]float64, len(cols))
	for i, c := range cols {
		w := c.Width
		if w <= 0 {
			w = 1
		}
		widths[i] = contentWidth * w / total
	}
	return widths
}
