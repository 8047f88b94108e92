package entity

import (
	"github.com/shopspring/decimal"
)

// Status tokens commonly returned by the POS. The set is open-ended.
const (
	StatusSales  = "SALES"
	StatusRefund = "REFUND"
)

// DailySummary contains one day's aggregated transaction totals for a branch.
type DailySummary struct {
	BranchID    string          `json:"branchId"`
	Date        Date            `json:"date"`
	Count       int             `json:"count"`
	TotalTax    decimal.Decimal `json:"totalTax"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	NetSales    decimal.Decimal `json:"netSales"`
}

// TransactionRecord represents one individual receipt.
type TransactionRecord struct {
	BranchID        string          `json:"branchId"`
	ReceiptNumber   string          `json:"receiptNumber"`
	ReceiptDateTime Timestamp       `json:"receiptDateTime"`
	InvoiceAmount   decimal.Decimal `json:"invoiceAmount"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	Status          string          `json:"status"`
}

// Totals is the element-wise sum of a DailySummary collection. Never persisted.
type Totals struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalTax    decimal.Decimal `json:"totalTax"`
	NetSales    decimal.Decimal `json:"netSales"`
}

// ChartPoint é um ponto da série usada pelos gráficos do dashboard.
type ChartPoint struct {
	Label       string          `json:"label"`
	Date        Date            `json:"date"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	NetSales    decimal.Decimal `json:"netSales"`
	Count       int             `json:"count"`
}
