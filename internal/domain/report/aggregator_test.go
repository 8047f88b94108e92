package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func summary(day int, count int, amount, tax, net string) entity.DailySummary {
	return entity.DailySummary{
		BranchID:    "B1",
		Date:        entity.NewDate(2025, time.December, day),
		Count:       count,
		TotalAmount: money(amount),
		TotalTax:    money(tax),
		NetSales:    money(net),
	}
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals([]entity.DailySummary{
		summary(1, 3, "100.50", "5.00", "95.50"),
		summary(2, 2, "50.00", "2.50", "47.50"),
	})

	assert.Equal(t, 5, totals.Count)
	assert.Equal(t, "150.50", FormatMoney(totals.TotalAmount))
	assert.Equal(t, "7.50", FormatMoney(totals.TotalTax))
	assert.Equal(t, "143.00", FormatMoney(totals.NetSales))
}

func TestComputeTotalsEmpty(t *testing.T) {
	for _, in := range [][]entity.DailySummary{nil, {}} {
		totals := ComputeTotals(in)
		assert.Equal(t, 0, totals.Count)
		assert.True(t, totals.TotalAmount.IsZero())
		assert.True(t, totals.TotalTax.IsZero())
		assert.True(t, totals.NetSales.IsZero())
	}
}

func TestComputeTotalsIsExact(t *testing.T) {
	// 0.1 added ten times drifts in float64; decimal sums stay exact.
	in := make([]entity.DailySummary, 10)
	for i := range in {
		in[i] = summary(1, 1, "0.10", "0.01", "0.09")
	}
	totals := ComputeTotals(in)
	assert.True(t, totals.TotalAmount.Equal(money("1")))
	assert.True(t, totals.TotalTax.Equal(money("0.1")))
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	in := []entity.DailySummary{
		summary(1, 3, "100.505", "5.001", "95.504"),
		summary(2, 2, "50.00", "2.50", "47.50"),
		summary(3, 7, "0.333", "0.033", "0.300"),
		summary(4, 1, "1999.99", "95.24", "1904.75"),
	}
	want := ComputeTotals(in)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]entity.DailySummary(nil), in...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := ComputeTotals(shuffled)
		assert.Equal(t, want.Count, got.Count)
		assert.True(t, want.TotalAmount.Equal(got.TotalAmount))
		assert.True(t, want.TotalTax.Equal(got.TotalTax))
		assert.True(t, want.NetSales.Equal(got.NetSales))
	}
}

func TestToChartSeries(t *testing.T) {
	assert.Empty(t, ToChartSeries(nil))
	assert.NotNil(t, ToChartSeries(nil))

	in := []entity.DailySummary{
		summary(2, 2, "50.00", "2.50", "47.50"),
		summary(1, 3, "100.50", "5.00", "95.50"),
	}
	series := ToChartSeries(in)
	require.Len(t, series, 2)

	assert.Equal(t, "Dec 2", series[0].Label)
	assert.Equal(t, "Dec 1", series[1].Label)
	assert.Equal(t, 3, series[1].Count)
	assert.Equal(t, "95.50", FormatMoney(series[1].NetSales))

	single := ToChartSeries(in[:1])
	require.Len(t, single, 1)
	assert.Equal(t, in[0].Date, single[0].Date)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", FormatMoney(decimal.Zero))
	assert.Equal(t, "100.50", FormatMoney(money("100.5")))
	assert.Equal(t, "2.68", FormatMoney(money("2.675")))
	assert.Equal(t, "-2.68", FormatMoney(money("-2.675")))
	assert.Equal(t, "AED 7.50", FormatCurrency("AED", money("7.5")))
	assert.Equal(t, "7.50", FormatCurrency("", money("7.5")))
}
