package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
)

const (
	SummaryTitle = "Transaction Summary Report"
	RecordsTitle = "Transaction Detail Report"

	documentDateLayout     = "Jan 2, 2006"
	documentDateTimeLayout = "Jan 2, 15:04"
)

// DocumentOptions carries the presentation choices of a Document.
// GeneratedAt is passed in so that building a document stays a pure function.
type DocumentOptions struct {
	Currency    string
	GeneratedAt time.Time
	RowsPerPage int
}

// SummaryToDocument builds the summary layout: totals block followed by one row per day.
func SummaryToDocument(summaries []entity.DailySummary, rangeLabel string, opts DocumentOptions) entity.Document {
	totals := ComputeTotals(summaries)

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Date.Format(documentDateLayout),
			strconv.Itoa(s.Count),
			FormatCurrency(opts.Currency, s.TotalAmount),
			FormatCurrency(opts.Currency, s.NetSales),
			FormatCurrency(opts.Currency, s.TotalTax),
		})
	}

	return entity.Document{
		Title:       SummaryTitle,
		PeriodLabel: rangeLabel,
		GeneratedAt: opts.GeneratedAt,
		Totals: []entity.Field{
			{Label: "Total Transactions", Value: strconv.Itoa(totals.Count)},
			{Label: "Total Amount", Value: FormatCurrency(opts.Currency, totals.TotalAmount)},
			{Label: "Net Sales", Value: FormatCurrency(opts.Currency, totals.NetSales)},
			{Label: "Total Tax", Value: FormatCurrency(opts.Currency, totals.TotalTax)},
		},
		Columns: []entity.Column{
			{Header: "Date", Width: 1.2, Align: entity.AlignLeft},
			{Header: "Transactions", Width: 1, Align: entity.AlignRight},
			{Header: "Total Amount", Width: 1.3, Align: entity.AlignRight},
			{Header: "Net Sales", Width: 1.3, Align: entity.AlignRight},
			{Header: "Tax", Width: 1.2, Align: entity.AlignRight},
		},
		Rows:        rows,
		RowsPerPage: opts.RowsPerPage,
	}
}

// RecordsToDocument builds the detail layout, one row per receipt.
func RecordsToDocument(records []entity.TransactionRecord, rangeLabel string, opts DocumentOptions) entity.Document {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ReceiptNumber,
			r.ReceiptDateTime.Format(documentDateTimeLayout),
			FormatCurrency(opts.Currency, r.InvoiceAmount),
			FormatCurrency(opts.Currency, r.TaxAmount),
			r.Status,
		})
	}

	return entity.Document{
		Title:       RecordsTitle,
		PeriodLabel: rangeLabel,
		GeneratedAt: opts.GeneratedAt,
		Notes:       []string{fmt.Sprintf("Total Transactions: %d", len(records))},
		Columns: []entity.Column{
			{Header: "Receipt #", Width: 1.4, Align: entity.AlignLeft},
			{Header: "Date & Time", Width: 1.2, Align: entity.AlignLeft},
			{Header: "Invoice", Width: 1.1, Align: entity.AlignRight},
			{Header: "Tax", Width: 1, Align: entity.AlignRight},
			{Header: "Status", Width: 0.9, Align: entity.AlignCenter},
		},
		Rows:        rows,
		RowsPerPage: opts.RowsPerPage,
	}
}

// SummaryToSheet returns the spreadsheet form of the summary, money as numbers rounded to cents.
func SummaryToSheet(summaries []entity.DailySummary) entity.Sheet {
	rows := make([][]interface{}, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []interface{}{
			s.Date.Format(entity.DateLayout),
			s.Count,
			s.TotalAmount.Round(2).InexactFloat64(),
			s.NetSales.Round(2).InexactFloat64(),
			s.TotalTax.Round(2).InexactFloat64(),
		})
	}
	return entity.Sheet{Name: "Summary", Header: summaryHeader, Rows: rows}
}

// RecordsToSheet returns the spreadsheet form of the receipt list.
func RecordsToSheet(records []entity.TransactionRecord) entity.Sheet {
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{
			r.ReceiptNumber,
			r.ReceiptDateTime.Format(entity.TimestampLayout),
			r.InvoiceAmount.Round(2).InexactFloat64(),
			r.TaxAmount.Round(2).InexactFloat64(),
			r.Status,
		})
	}
	return entity.Sheet{Name: "Transactions", Header: recordsHeader, Rows: rows}
}
