// Package report holds the pure transforms that turn POS collections into totals,
// chart series, table pages and export encodings. Nothing here performs I/O.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
)

// ChartLabelLayout is the short date label used on chart axes.
const ChartLabelLayout = "Jan 2"

// ComputeTotals sums every DailySummary. Money is summed exactly; rounding happens only when formatting.
func ComputeTotals(summaries []entity.DailySummary) entity.Totals {
	totals := entity.Totals{
		TotalAmount: decimal.Zero,
		TotalTax:    decimal.Zero,
		NetSales:    decimal.Zero,
	}
	for _, s := range summaries {
		totals.Count += s.Count
		totals.TotalAmount = totals.TotalAmount.Add(s.TotalAmount)
		totals.TotalTax = totals.TotalTax.Add(s.TotalTax)
		totals.NetSales = totals.NetSales.Add(s.NetSales)
	}
	return totals
}

// ToChartSeries maps summaries to chart points in input order.
func ToChartSeries(summaries []entity.DailySummary) []entity.ChartPoint {
	points := make([]entity.ChartPoint, 0, len(summaries))
	for _, s := range summaries {
		points = append(points, entity.ChartPoint{
			Label:       s.Date.Format(ChartLabelLayout),
			Date:        s.Date,
			TotalAmount: s.TotalAmount,
			NetSales:    s.NetSales,
			Count:       s.Count,
		})
	}
	return points
}

// FormatMoney rounds half away from zero to exactly two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatCurrency prefixes the two-decimal amount with the currency code, e.g. "AED 150.50".
func FormatCurrency(currency string, d decimal.Decimal) string {
	if currency == "" {
		return FormatMoney(d)
	}
	return currency + " " + FormatMoney(d)
}
