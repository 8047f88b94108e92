package entity

import "time"

// Alignment uses the same letters as the PDF engine.
type Alignment string

const (
	AlignLeft   Alignment = "L"
	AlignCenter Alignment = "C"
	AlignRight  Alignment = "R"
)

// DefaultRowsPerPage é usado quando o documento não define RowsPerPage.
const DefaultRowsPerPage = 30

// Column describes one column of a Document table. Width is relative to the other columns.
type Column struct {
	Header string
	Width  float64
	Align  Alignment
}

// Field is a label/value pair of the totals block.
type Field struct {
	Label string
	Value string
}

// Document is a paginated, titled, tabular layout with every cell already formatted.
// It carries no knowledge of the engine that will render it.
type Document struct {
	Title       string
	PeriodLabel string
	GeneratedAt time.Time
	Totals      []Field
	Notes       []string
	Columns     []Column
	Rows        [][]string
	RowsPerPage int
}

// HasTotals reports whether the document carries a totals block.
func (d Document) HasTotals() bool {
	return len(d.Totals) > 0
}

// Pages splits Rows into pages. An empty body still yields one empty page.
func (d Document) Pages() [][][]string {
	size := d.RowsPerPage
	if size <= 0 {
		size = DefaultRowsPerPage
	}
	if len(d.Rows) == 0 {
		return [][][]string{{}}
	}

	pages := make([][][]string, 0, TotalPages(len(d.Rows), size))
	for start := 0; start < len(d.Rows); start += size {
		end := start + size
		if end > len(d.Rows) {
			end = len(d.Rows)
		}
		pages = append(pages, d.Rows[start:end])
	}
	return pages
}

// Sheet is the spreadsheet flavour of an export: typed cells, no pagination.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}
