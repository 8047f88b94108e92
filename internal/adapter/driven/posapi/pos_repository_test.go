package posapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

var testRange = entity.DateRange{
	From: entity.NewDate(2025, time.December, 1),
	To:   entity.NewDate(2025, time.December, 2),
}

func newRepo(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *POSRepositoryImpl {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := types.APIConfig{
		BaseURL:  srv.URL + "/api/v6/Viewer/",
		Username: "user",
		Password: "s3cret",
		AppKey:   "app-key",
	}
	return NewPOSRepositoryWithClient(cfg, &http.Client{Timeout: timeout})
}

func TestGetTransactionSummary(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v6/Viewer/GetTransactionSummary", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "user", q.Get("username"))
		assert.Equal(t, "s3cret", q.Get("password"))
		assert.Equal(t, "app-key", q.Get("appKey"))
		assert.Equal(t, "2025-12-01", q.Get("from"))
		assert.Equal(t, "2025-12-02", q.Get("to"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"branchId":"B1","date":"2025-12-01T00:00:00","count":3,"totalTax":5.0,"totalAmount":100.5,"netSales":95.5}]`))
	}, time.Second)

	summaries, err := repo.GetTransactionSummary(context.Background(), testRange)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "B1", summaries[0].BranchID)
	assert.Equal(t, entity.NewDate(2025, time.December, 1), summaries[0].Date)
	assert.Equal(t, "100.50", summaries[0].TotalAmount.StringFixed(2))
}

func TestGetTransactionReport(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v6/Viewer/GetTransactionReport", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"branchId":"B1","receiptNumber":"R-2","receiptDateTime":"2025-12-01T18:00:00","invoiceAmount":20,"taxAmount":1,"status":"REFUND"},
			{"branchId":"B1","receiptNumber":"R-1","receiptDateTime":"2025-12-01T09:15:00","invoiceAmount":10.5,"taxAmount":0.5,"status":"SALES"}
		]`))
	}, time.Second)

	records, err := repo.GetTransactionReport(context.Background(), testRange)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "R-2", records[0].ReceiptNumber)
	assert.Equal(t, entity.StatusRefund, records[0].Status)
}

func TestNullBodyIsEmptyCollection(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}, time.Second)

	summaries, err := repo.GetTransactionSummary(context.Background(), testRange)
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)

	records, err := repo.GetTransactionReport(context.Background(), testRange)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestNonSuccessIsFetchError(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid app key", http.StatusUnauthorized)
	}, time.Second)

	_, err := repo.GetTransactionReport(context.Background(), testRange)
	require.Error(t, err)

	var fetchErr *types.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, types.SourceReport, fetchErr.Source)
	assert.Equal(t, http.StatusUnauthorized, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "invalid app key")
	assert.False(t, fetchErr.IsTimeout())
}

func TestMalformedBodyIsFetchError(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"not a list"}`))
	}, time.Second)

	_, err := repo.GetTransactionSummary(context.Background(), testRange)

	var fetchErr *types.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, types.SourceSummary, fetchErr.Source)
}

func TestTimeoutIsFetchErrorWithoutCredentials(t *testing.T) {
	release := make(chan struct{})
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)
	defer close(release)

	_, err := repo.GetTransactionSummary(context.Background(), testRange)

	var fetchErr *types.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.True(t, fetchErr.IsTimeout())
	assert.NotContains(t, err.Error(), "s3cret")
}
