package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/diillson/pos-sales-dashboard-go/internal/application/usecase/templates"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/report"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/repository"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

const (
	subjectDateLayout    = "January 2, 2006"
	emailTimeLayout      = "Jan 2, 15:04"
	generatedClockLayout = "15:04 MST"
)

// DailyReportUseCase is the scheduled job: yesterday's sales, emailed to the fixed recipient list.
type DailyReportUseCase struct {
	txRepo    repository.TransactionRepository
	mailRepo  repository.MailRepository
	console   types.ConsoleInterface
	cfg       *types.Config
	artifacts artifactBuilder
	renderer  *templates.Renderer
	loc       *time.Location
	now       func() time.Time
	newRunID  func() string
}

// NewDailyReportUseCase creates the daily report job.
func NewDailyReportUseCase(
	txRepo repository.TransactionRepository,
	exportRepo repository.ExportRepository,
	mailRepo repository.MailRepository,
	console types.ConsoleInterface,
	cfg *types.Config,
) *DailyReportUseCase {
	return &DailyReportUseCase{
		txRepo:    txRepo,
		mailRepo:  mailRepo,
		console:   console,
		cfg:       cfg,
		artifacts: newArtifactBuilder(exportRepo, cfg),
		renderer:  templates.MustNewRenderer(),
		loc:       location(cfg),
		now:       time.Now,
		newRunID:  func() string { return uuid.NewString() },
	}
}

// RunResult resume uma execução do relatório diário.
type RunResult struct {
	RunID       string        `json:"runId"`
	Date        entity.Date   `json:"date"`
	Subject     string        `json:"subject"`
	MessageID   string        `json:"messageId"`
	Recipients  int           `json:"recipients"`
	SummaryRows int           `json:"summaryRows"`
	RecordRows  int           `json:"recordRows"`
	Totals      entity.Totals `json:"totals"`
	Duration    time.Duration `json:"duration"`
}

// Run reports on the day before now, in the configured timezone.
func (uc *DailyReportUseCase) Run(ctx context.Context, now time.Time) (RunResult, error) {
	return uc.RunForDate(ctx, entity.Yesterday(now.In(uc.loc)).From)
}

// RunNow is Run with the current time.
func (uc *DailyReportUseCase) RunNow(ctx context.Context) (RunResult, error) {
	return uc.Run(ctx, uc.now())
}

// RunForDate fetches, renders and emails the report for a single day.
// Any fetch failure abandons the run; nothing is sent.
func (uc *DailyReportUseCase) RunForDate(ctx context.Context, day entity.Date) (RunResult, error) {
	started := uc.now()
	result := RunResult{RunID: uc.newRunID(), Date: day}

	recipients := uc.cfg.Mail.Recipients
	if len(recipients) == 0 {
		return result, types.ErrNoRecipients
	}

	displayDate := day.Format(subjectDateLayout)
	uc.console.LogInfo("[%s] Fetching transaction data for %s...", result.RunID, displayDate)

	r := entity.SingleDay(day)
	var summaries []entity.DailySummary
	var records []entity.TransactionRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := uc.txRepo.GetTransactionSummary(gctx, r)
		summaries = rows
		return err
	})
	g.Go(func() error {
		rows, err := uc.txRepo.GetTransactionReport(gctx, r)
		records = rows
		return err
	})
	if err := g.Wait(); err != nil {
		uc.console.LogError("[%s] Daily report for %s abandoned: %s", result.RunID, displayDate, err)
		return result, err
	}

	if len(summaries) == 0 && len(records) == 0 {
		uc.console.LogWarning("[%s] No data available for %s, sending the empty report", result.RunID, displayDate)
	}

	totals := report.ComputeTotals(summaries)
	result.Totals = totals
	result.SummaryRows = len(summaries)
	result.RecordRows = len(records)
	uc.console.LogInfo("[%s] Total Sales: %s | Transactions: %d", result.RunID, report.FormatCurrency(uc.cfg.Currency, totals.TotalAmount), totals.Count)

	email, err := uc.buildReportEmail(day, r, summaries, records, totals, started)
	if err != nil {
		uc.console.LogError("[%s] Failed to build the report email: %s", result.RunID, err)
		return result, err
	}
	result.Subject = email.Subject
	result.Recipients = len(email.To)

	uc.console.LogInfo("[%s] Sending email to %d recipient(s)...", result.RunID, len(email.To))
	messageID, err := uc.mailRepo.Send(ctx, email)
	result.Duration = uc.now().Sub(started)
	if err != nil {
		uc.console.LogError("[%s] Failed to send email after %.2fs: %s", result.RunID, result.Duration.Seconds(), err)
		return result, err
	}

	result.MessageID = messageID
	uc.console.LogSuccess("[%s] Email sent successfully in %.2fs (Message ID: %s)", result.RunID, result.Duration.Seconds(), messageID)
	uc.console.LogInfo("[%s] Recipients: %s", result.RunID, strings.Join(email.To, ", "))
	return result, nil
}

func (uc *DailyReportUseCase) buildReportEmail(
	day entity.Date,
	r entity.DateRange,
	summaries []entity.DailySummary,
	records []entity.TransactionRecord,
	totals entity.Totals,
	generatedAt time.Time,
) (entity.Email, error) {
	currency := uc.cfg.Currency
	displayDate := day.Format(subjectDateLayout)

	rows := make([]templates.TransactionRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, templates.TransactionRow{
			Receipt: rec.ReceiptNumber,
			Time:    rec.ReceiptDateTime.Format(emailTimeLayout),
			Amount:  report.FormatCurrency(currency, rec.InvoiceAmount),
			Tax:     report.FormatCurrency(currency, rec.TaxAmount),
			Status:  rec.Status,
			Refund:  rec.Status != entity.StatusSales,
		})
	}

	html, text, err := uc.renderer.Render(templates.DailyReport, templates.DailyReportData{
		Brand:         uc.cfg.BrandName,
		DashboardName: uc.cfg.Mail.FromName,
		Date:          displayDate,
		From:          uc.cfg.Mail.From,
		GeneratedAt:   generatedAt.In(uc.loc).Format(generatedClockLayout),
		Totals: templates.Totals{
			TotalAmount: report.FormatCurrency(currency, totals.TotalAmount),
			NetSales:    report.FormatCurrency(currency, totals.NetSales),
			TotalTax:    report.FormatCurrency(currency, totals.TotalTax),
			Count:       totals.Count,
		},
		Transactions:     rows,
		TransactionCount: len(records),
	})
	if err != nil {
		return entity.Email{}, err
	}

	summaryPDF, err := uc.artifacts.summary(entity.FormatPDF, r, summaries, generatedAt.In(uc.loc))
	if err != nil {
		return entity.Email{}, err
	}
	recordsCSV, err := uc.artifacts.records(entity.FormatCSV, r, records, generatedAt.In(uc.loc))
	if err != nil {
		return entity.Email{}, err
	}

	return entity.Email{
		To:          append([]string(nil), uc.cfg.Mail.Recipients...),
		Subject:     fmt.Sprintf("%s Daily Sales Report - %s", uc.cfg.BrandName, displayDate),
		HTML:        html,
		Text:        text,
		Attachments: []entity.Artifact{summaryPDF, recordsCSV},
	}, nil
}

// SendTest envia um e-mail de teste ao primeiro destinatário, com a configuração em uso.
func (uc *DailyReportUseCase) SendTest(ctx context.Context) (string, error) {
	recipients := uc.cfg.Mail.Recipients
	if len(recipients) == 0 {
		return "", types.ErrNoRecipients
	}

	uc.console.LogInfo("Sending test email to %s...", recipients[0])

	html, text, err := uc.renderer.Render(templates.TestEmail, templates.TestEmailData{
		Brand:      uc.cfg.BrandName,
		Transport:  uc.cfg.Mail.Transport,
		Host:       uc.cfg.Mail.Host,
		Port:       uc.cfg.Mail.Port,
		From:       uc.cfg.Mail.From,
		Recipients: len(recipients),
	})
	if err != nil {
		return "", err
	}

	messageID, err := uc.mailRepo.Send(ctx, entity.Email{
		To:      []string{recipients[0]},
		Subject: fmt.Sprintf("TEST: %s Email Service", uc.cfg.BrandName),
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send test email: %w", err)
	}

	uc.console.LogSuccess("Test email sent: %s", messageID)
	return messageID, nil
}
