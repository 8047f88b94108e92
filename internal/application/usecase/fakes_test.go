package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

type fakeTxRepo struct {
	mu           sync.Mutex
	summaries    []entity.DailySummary
	records      []entity.TransactionRecord
	summaryErr   error
	reportErr    error
	summaryCalls int
	reportCalls  int
	ranges       []entity.DateRange
}

func (f *fakeTxRepo) GetTransactionSummary(_ context.Context, r entity.DateRange) ([]entity.DailySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaryCalls++
	f.ranges = append(f.ranges, r)
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	return f.summaries, nil
}

func (f *fakeTxRepo) GetTransactionReport(_ context.Context, r entity.DateRange) ([]entity.TransactionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reportCalls++
	f.ranges = append(f.ranges, r)
	if f.reportErr != nil {
		return nil, f.reportErr
	}
	return f.records, nil
}

func (f *fakeTxRepo) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.summaryCalls, f.reportCalls
}

type fakeExportRepo struct {
	pdfErr error
	saved  []entity.Artifact
	docs   []entity.Document
}

func (f *fakeExportRepo) WritePDF(w io.Writer, doc entity.Document) error {
	if f.pdfErr != nil {
		return f.pdfErr
	}
	f.docs = append(f.docs, doc)
	_, err := fmt.Fprintf(w, "%%PDF-fake %s rows=%d", doc.Title, len(doc.Rows))
	return err
}

func (f *fakeExportRepo) WriteXLSX(w io.Writer, sheet entity.Sheet) error {
	_, err := fmt.Fprintf(w, "xlsx %s rows=%d", sheet.Name, len(sheet.Rows))
	return err
}

func (f *fakeExportRepo) WriteJSON(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}

func (f *fakeExportRepo) SaveArtifact(dir string, a entity.Artifact) (string, error) {
	f.saved = append(f.saved, a)
	return dir + "/" + a.Name, nil
}

type fakeMailRepo struct {
	sent []entity.Email
	err  error
}

func (f *fakeMailRepo) Send(_ context.Context, email entity.Email) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, email)
	return fmt.Sprintf("<%d@test>", len(f.sent)), nil
}

type fakeCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if !ok {
		return nil, types.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}

// fakeConsole grava as mensagens para as asserções.
type fakeConsole struct {
	mu     sync.Mutex
	output []string
	errors []string
	warns  []string
	bars   []types.SalesBar
}

func (c *fakeConsole) add(dst *[]string, format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	*dst = append(*dst, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Print(a ...interface{})                 { c.add(&c.output, "%s", fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { c.add(&c.output, format, a...) }
func (c *fakeConsole) Println(a ...interface{})               { c.add(&c.output, "%s", fmt.Sprintln(a...)) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.add(&c.output, format, a...)
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) { c.add(&c.warns, format, a...) }
func (c *fakeConsole) LogError(format string, a ...interface{})   { c.add(&c.errors, format, a...) }
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) { c.add(&c.output, format, a...) }

func (c *fakeConsole) Status(string) types.StatusHandle { return nopHandle{} }
func (c *fakeConsole) ProgressWithTotal(int, string) types.ProgressHandle {
	return nopHandle{}
}

func (c *fakeConsole) CreateTable() types.TableInterface { return &fakeTable{} }

func (c *fakeConsole) DisplaySalesBars(_ string, bars []types.SalesBar) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bars = append(c.bars, bars...)
}

func (c *fakeConsole) joined() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.output, "\n")
}

type nopHandle struct{}

func (nopHandle) Update(string) {}
func (nopHandle) Increment()    {}
func (nopHandle) Stop()         {}

type fakeTable struct {
	rows [][]string
}

func (t *fakeTable) AddColumn(string, ...interface{}) {}

func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
}

func (t *fakeTable) Render() string {
	lines := make([]string, len(t.rows))
	for i, r := range t.rows {
		lines[i] = strings.Join(r, " | ")
	}
	return strings.Join(lines, "\n")
}

func testConfig() *types.Config {
	cfg := &types.Config{
		API:  types.APIConfig{Username: "viewer", Password: "secret", AppKey: "key"},
		Mail: types.MailConfig{Recipients: []string{"owner@example.com", "ops@example.com"}},
	}
	cfg.ApplyDefaults()
	return cfg
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func scenarioSummaries() []entity.DailySummary {
	return []entity.DailySummary{
		{BranchID: "B1", Date: entity.NewDate(2025, time.December, 1), Count: 3, TotalAmount: dec("100.50"), TotalTax: dec("5.00"), NetSales: dec("95.50")},
		{BranchID: "B1", Date: entity.NewDate(2025, time.December, 2), Count: 2, TotalAmount: dec("50.00"), TotalTax: dec("2.50"), NetSales: dec("47.50")},
	}
}

func scenarioRecords() []entity.TransactionRecord {
	at := func(day, hour int) entity.Timestamp {
		return entity.Timestamp{Time: time.Date(2025, time.December, day, hour, 15, 0, 0, time.UTC)}
	}
	return []entity.TransactionRecord{
		{BranchID: "B1", ReceiptNumber: "R-1003", ReceiptDateTime: at(2, 18), InvoiceAmount: dec("30.00"), TaxAmount: dec("1.50"), Status: entity.StatusSales},
		{BranchID: "B1", ReceiptNumber: "R-1002", ReceiptDateTime: at(1, 12), InvoiceAmount: dec("20.00"), TaxAmount: dec("1.00"), Status: entity.StatusRefund},
		{BranchID: "B1", ReceiptNumber: "R-1001", ReceiptDateTime: at(1, 9), InvoiceAmount: dec("70.50"), TaxAmount: dec("3.50"), Status: entity.StatusSales},
	}
}
