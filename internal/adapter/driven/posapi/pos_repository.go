package posapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/repository"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

const (
	summaryEndpoint = "GetTransactionSummary"
	reportEndpoint  = "GetTransactionReport"

	// maxBodySize limita a resposta lida da API (32 MiB).
	maxBodySize = 32 << 20
)

// POSRepositoryImpl implementa o TransactionRepository sobre a API Viewer do POS.
type POSRepositoryImpl struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	appKey   string
}

// NewPOSRepository cria um repositório com um cliente HTTP limitado pelo timeout configurado.
func NewPOSRepository(cfg types.APIConfig) repository.TransactionRepository {
	return NewPOSRepositoryWithClient(cfg, &http.Client{Timeout: cfg.Timeout()})
}

// NewPOSRepositoryWithClient permite injetar o cliente HTTP (usado nos testes).
func NewPOSRepositoryWithClient(cfg types.APIConfig, client *http.Client) *POSRepositoryImpl {
	return &POSRepositoryImpl{
		client:   client,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		appKey:   cfg.AppKey,
	}
}

// GetTransactionSummary fetches one DailySummary per day of the range.
func (r *POSRepositoryImpl) GetTransactionSummary(ctx context.Context, dr entity.DateRange) ([]entity.DailySummary, error) {
	var summaries []entity.DailySummary
	if err := r.get(ctx, types.SourceSummary, summaryEndpoint, dr, &summaries); err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []entity.DailySummary{}
	}
	return summaries, nil
}

// GetTransactionReport fetches every receipt of the range.
func (r *POSRepositoryImpl) GetTransactionReport(ctx context.Context, dr entity.DateRange) ([]entity.TransactionRecord, error) {
	var records []entity.TransactionRecord
	if err := r.get(ctx, types.SourceReport, reportEndpoint, dr, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []entity.TransactionRecord{}
	}
	return records, nil
}

func (r *POSRepositoryImpl) buildURL(endpoint string, dr entity.DateRange) string {
	params := url.Values{}
	params.Set("username", r.username)
	params.Set("password", r.password)
	params.Set("appKey", r.appKey)
	params.Set("from", dr.From.Format(entity.DateLayout))
	params.Set("to", dr.To.Format(entity.DateLayout))
	return fmt.Sprintf("%s/%s?%s", r.baseURL, endpoint, params.Encode())
}

func (r *POSRepositoryImpl) get(ctx context.Context, source types.FetchSource, endpoint string, dr entity.DateRange, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.buildURL(endpoint, dr), nil)
	if err != nil {
		return &types.FetchError{Source: source, Err: redact(err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return &types.FetchError{Source: source, Err: redact(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &types.FetchError{Source: source, StatusCode: resp.StatusCode, Err: fmt.Errorf("error reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &types.FetchError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response %s: %s", resp.Status, snippet(body)),
		}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return &types.FetchError{Source: source, StatusCode: resp.StatusCode, Err: fmt.Errorf("error decoding response: %w", err)}
	}
	return nil
}

// redact remove a query string (com as credenciais) das mensagens de erro do net/http.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
			u.RawQuery = ""
			urlErr.URL = u.String()
		} else {
			urlErr.URL = "<redacted>"
		}
	}
	return err
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	if s == "" {
		return "empty body"
	}
	return s
}
