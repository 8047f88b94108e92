package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDailyReport(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	data := DailyReportData{
		Brand:         "The Burcurry",
		DashboardName: "The Burcurry Dashboard",
		Date:          "December 1, 2025",
		From:          "no-reply@absons.ae",
		GeneratedAt:   "10:00 +04",
		Totals:        Totals{TotalAmount: "AED 150.50", NetSales: "AED 143.00", TotalTax: "AED 7.50", Count: 5},
		Transactions: []TransactionRow{
			{Receipt: "R-<1>", Time: "Dec 1, 09:15", Amount: "AED 100.50", Tax: "AED 5.00", Status: "SALES"},
			{Receipt: "R-2", Time: "Dec 1, 11:40", Amount: "AED 50.00", Tax: "AED 2.50", Status: "REFUND", Refund: true},
		},
		TransactionCount: 2,
	}

	html, text, err := r.Render(DailyReport, data)
	require.NoError(t, err)

	assert.Contains(t, html, "Daily Sales Report - December 1, 2025")
	assert.Contains(t, html, "THE BURCURRY")
	assert.Contains(t, html, "AED 150.50")
	assert.Contains(t, html, "status-refund")
	assert.Contains(t, html, "Total: 2 transaction(s)")
	assert.Contains(t, html, "R-&lt;1&gt;")
	assert.NotContains(t, html, "No transactions recorded")

	assert.Contains(t, text, "THE BURCURRY - DAILY SALES REPORT\nDecember 1, 2025\n")
	assert.Contains(t, text, "Total Sales:      AED 150.50\n")
	assert.Contains(t, text, "Transactions:     5\n")
	assert.Contains(t, text, "2 transaction details are included in the HTML version of this email.")
	assert.Contains(t, text, "Sent by: no-reply@absons.ae")
}

func TestRenderDailyReportWithoutTransactions(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, _, err := r.Render(DailyReport, DailyReportData{Brand: "The Burcurry", Date: "December 1, 2025"})
	require.NoError(t, err)
	assert.Contains(t, html, "No transactions recorded for this day")
	assert.NotContains(t, html, "<tbody>")
}

func TestRenderTestEmail(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, text, err := r.Render(TestEmail, TestEmailData{
		Brand: "The Burcurry", Transport: "smtp", Host: "172.16.0.2", Port: 25, From: "no-reply@absons.ae", Recipients: 3,
	})
	require.NoError(t, err)
	assert.Contains(t, html, "<li>SMTP Host: 172.16.0.2</li>")
	assert.Contains(t, html, "<li>Recipients: 3</li>")
	assert.Contains(t, text, "- SMTP Port: 25")
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	_, _, err = r.Render("weekly_report", nil)
	assert.Error(t, err)
}
