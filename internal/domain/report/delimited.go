package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
)

var (
	summaryHeader = []string{"Date", "Transaction Count", "Total Amount", "Net Sales", "Total Tax"}
	recordsHeader = []string{"Receipt Number", "Date & Time", "Invoice Amount", "Tax Amount", "Status"}
)

// SummaryRows returns the delimited-text rows of a summary collection, header excluded.
func SummaryRows(summaries []entity.DailySummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Date.Format(entity.DateLayout),
			strconv.Itoa(s.Count),
			FormatMoney(s.TotalAmount),
			FormatMoney(s.NetSales),
			FormatMoney(s.TotalTax),
		})
	}
	return rows
}

// RecordRows returns the delimited-text rows of a record collection, header excluded.
func RecordRows(records []entity.TransactionRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ReceiptNumber,
			r.ReceiptDateTime.Format(entity.TimestampLayout),
			FormatMoney(r.InvoiceAmount),
			FormatMoney(r.TaxAmount),
			r.Status,
		})
	}
	return rows
}

// WriteSummaryDelimited writes the summary CSV, quoting fields per RFC 4180.
func WriteSummaryDelimited(w io.Writer, summaries []entity.DailySummary) error {
	return writeDelimited(w, summaryHeader, SummaryRows(summaries))
}

// WriteRecordsDelimited writes the record CSV, quoting fields per RFC 4180.
func WriteRecordsDelimited(w io.Writer, records []entity.TransactionRecord) error {
	return writeDelimited(w, recordsHeader, RecordRows(records))
}

// SummaryToDelimitedText returns the summary CSV. An empty collection yields the header only.
func SummaryToDelimitedText(summaries []entity.DailySummary) string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = WriteSummaryDelimited(&b, summaries)
	return b.String()
}

// RecordsToDelimitedText returns the record CSV. An empty collection yields the header only.
func RecordsToDelimitedText(records []entity.TransactionRecord) string {
	var b strings.Builder
	_ = WriteRecordsDelimited(&b, records)
	return b.String()
}

func writeDelimited(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("error writing CSV record: %w", err)
	}
	return nil
}
