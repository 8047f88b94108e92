package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/pos-sales-dashboard-go/internal/adapter/driven/cache"
	"github.com/diillson/pos-sales-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/pos-sales-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/pos-sales-dashboard-go/internal/application/usecase"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

type stubTxRepo struct{}

func (stubTxRepo) GetTransactionSummary(context.Context, entity.DateRange) ([]entity.DailySummary, error) {
	return []entity.DailySummary{{
		BranchID:    "B1",
		Date:        entity.NewDate(2025, time.December, 1),
		Count:       3,
		TotalAmount: decimal.RequireFromString("100.50"),
		TotalTax:    decimal.RequireFromString("5.00"),
		NetSales:    decimal.RequireFromString("95.50"),
	}}, nil
}

func (stubTxRepo) GetTransactionReport(context.Context, entity.DateRange) ([]entity.TransactionRecord, error) {
	return []entity.TransactionRecord{}, nil
}

type stubMail struct {
	mu   sync.Mutex
	sent []entity.Email
}

func (m *stubMail) Send(_ context.Context, email entity.Email) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, email)
	return fmt.Sprintf("<%d@test>", len(m.sent)), nil
}

type harness struct {
	app    *CLIApp
	mail   *stubMail
	closed bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{mail: &stubMail{}}
	build := func(cfg *types.Config, out types.ConsoleInterface) (*Services, error) {
		exportRepo := export.NewExportRepository(cfg.BrandName)
		return &Services{
			Dashboard: usecase.NewDashboardUseCase(stubTxRepo{}, exportRepo, cache.NopCache{}, out, cfg),
			Report:    usecase.NewDailyReportUseCase(stubTxRepo{}, exportRepo, h.mail, out, cfg),
			Close: func() error {
				h.closed = true
				return nil
			},
		}, nil
	}
	h.app = NewCLIApp("1.0.0-dev", config.NewConfigRepository(), build)
	return h
}

func (h *harness) run(ctx context.Context, args ...string) error {
	h.app.rootCmd.SetArgs(args)
	return h.app.rootCmd.ExecuteContext(ctx)
}

func writeConfig(t *testing.T, withRecipients bool) string {
	t.Helper()
	content := "api:\n  username: viewer\n  password: secret\n  app_key: key\ncache:\n  backend: none\n"
	if withRecipients {
		content += "mail:\n  recipients:\n    - owner@example.com\n    - ops@example.com\n"
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func baseArgs(t *testing.T, withRecipients bool, cmd ...string) []string {
	args := append([]string{}, cmd...)
	return append(args,
		"--config-file", writeConfig(t, withRecipients),
		"--env-file", filepath.Join(t.TempDir(), "missing.env"),
		"--log-format", "json",
	)
}

func TestExportCommandWritesFiles(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()

	args := baseArgs(t, false, "export", "--from", "2025-12-01", "--to", "2025-12-02", "--kind", "summary", "--format", "csv,json", "--dir", dir)
	require.NoError(t, h.run(context.Background(), args...))

	assert.FileExists(t, filepath.Join(dir, "transaction-summary-Dec-1---Dec-2--2025.csv"))
	assert.FileExists(t, filepath.Join(dir, "transaction-summary-Dec-1---Dec-2--2025.json"))
	assert.True(t, h.closed)
}

func TestSendReportCommandWithDate(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(context.Background(), baseArgs(t, true, "send-report", "--date", "2025-12-01")...))

	require.Len(t, h.mail.sent, 1)
	assert.Equal(t, "The Burcurry Daily Sales Report - December 1, 2025", h.mail.sent[0].Subject)
	assert.Len(t, h.mail.sent[0].Attachments, 2)
}

func TestSendReportCommandRejectsBadDate(t *testing.T) {
	h := newHarness(t)

	err := h.run(context.Background(), baseArgs(t, true, "send-report", "--date", "01/12/2025")...)
	assert.ErrorContains(t, err, "invalid --date")
	assert.Empty(t, h.mail.sent)
}

func TestTestEmailCommand(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(context.Background(), baseArgs(t, true, "test-email")...))

	require.Len(t, h.mail.sent, 1)
	assert.Equal(t, []string{"owner@example.com"}, h.mail.sent[0].To)
}

func TestMailCommandsRequireRecipients(t *testing.T) {
	for _, cmd := range []string{"send-report", "test-email", "schedule"} {
		t.Run(cmd, func(t *testing.T) {
			h := newHarness(t)
			err := h.run(context.Background(), baseArgs(t, false, cmd)...)
			assert.ErrorIs(t, err, types.ErrNoRecipients)
			assert.Empty(t, h.mail.sent)
		})
	}
}

func TestServeStopsWhenContextIsCancelled(t *testing.T) {
	h := newHarness(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.run(ctx, baseArgs(t, false, "serve", "--addr", "127.0.0.1:0")...) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestUnsupportedLogFormat(t *testing.T) {
	h := newHarness(t)

	args := []string{"summary", "--config-file", writeConfig(t, false), "--log-format", "xml"}
	err := h.run(context.Background(), args...)
	assert.ErrorContains(t, err, "unsupported log format")
}

func TestParseArgsMakesDirAbsolute(t *testing.T) {
	h := newHarness(t)
	cmd, _, err := h.app.rootCmd.Find([]string{"export"})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags([]string{"--dir", "reports", "--kind", "report"}))

	args, err := parseArgs(cmd)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(args.Dir))
	assert.Equal(t, []string{"report"}, args.Kinds)
	assert.Empty(t, args.Addr)
}
