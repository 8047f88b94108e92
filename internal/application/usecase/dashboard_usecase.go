package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/report"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/repository"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// DashboardUseCase handles the on-demand dashboard: fetch, aggregate, table and exports.
type DashboardUseCase struct {
	txRepo     repository.TransactionRepository
	exportRepo repository.ExportRepository
	cache      repository.CacheRepository
	console    types.ConsoleInterface
	cfg        *types.Config
	artifacts  artifactBuilder
	loc        *time.Location
	now        func() time.Time
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	txRepo repository.TransactionRepository,
	exportRepo repository.ExportRepository,
	cache repository.CacheRepository,
	console types.ConsoleInterface,
	cfg *types.Config,
) *DashboardUseCase {
	return &DashboardUseCase{
		txRepo:     txRepo,
		exportRepo: exportRepo,
		cache:      cache,
		console:    console,
		cfg:        cfg,
		artifacts:  newArtifactBuilder(exportRepo, cfg),
		loc:        location(cfg),
		now:        time.Now,
	}
}

// SummarySection é a metade do dashboard alimentada por GetTransactionSummary.
type SummarySection struct {
	Rows   []entity.DailySummary `json:"rows"`
	Totals entity.Totals         `json:"totals"`
	Chart  []entity.ChartPoint   `json:"chart"`
	Empty  bool                  `json:"empty"`
	Error  string                `json:"error,omitempty"`
	Err    error                 `json:"-"`
}

// RecordsSection é a metade alimentada por GetTransactionReport.
type RecordsSection struct {
	Rows  []entity.TransactionRecord `json:"rows"`
	Empty bool                       `json:"empty"`
	Error string                     `json:"error,omitempty"`
	Err   error                      `json:"-"`
}

// DashboardView carries whatever each fetch delivered. A failed side has Err set
// and empty rows; the other side is still populated.
type DashboardView struct {
	Range     entity.DateRange `json:"range"`
	Label     string           `json:"label"`
	Summary   SummarySection   `json:"summary"`
	Records   RecordsSection   `json:"records"`
	FetchedAt time.Time        `json:"fetchedAt"`
}

// Failed reports whether both fetches failed.
func (v DashboardView) Failed() bool {
	return v.Summary.Err != nil && v.Records.Err != nil
}

// PresetRange is one entry of the date picker.
type PresetRange struct {
	Preset entity.Preset    `json:"preset"`
	Title  string           `json:"title"`
	Range  entity.DateRange `json:"range"`
	Label  string           `json:"label"`
}

// Now returns the current time in the configured timezone.
func (uc *DashboardUseCase) Now() time.Time {
	return uc.now().In(uc.loc)
}

// Presets evaluates every preset against now.
func (uc *DashboardUseCase) Presets(now time.Time) []PresetRange {
	now = now.In(uc.loc)
	presets := make([]PresetRange, 0, len(entity.Presets))
	for _, p := range entity.Presets {
		r, err := p.Range(now)
		if err != nil {
			continue
		}
		presets = append(presets, PresetRange{Preset: p, Title: p.Title(), Range: r, Label: r.Label()})
	}
	return presets
}

// ResolveRange interprets the range arguments shared by the CLI and the HTTP API:
// explicit from/to wins, then a preset; with neither the range is today.
// A lone from or to is a single-day range.
func (uc *DashboardUseCase) ResolveRange(preset, from, to string) (entity.DateRange, error) {
	if from != "" || to != "" {
		if from == "" {
			from = to
		}
		if to == "" {
			to = from
		}
		fromDate, err := entity.ParseDate(from)
		if err != nil {
			return entity.DateRange{}, fmt.Errorf("invalid 'from' date %q: %w", from, err)
		}
		toDate, err := entity.ParseDate(to)
		if err != nil {
			return entity.DateRange{}, fmt.Errorf("invalid 'to' date %q: %w", to, err)
		}
		return entity.NewDateRange(fromDate, toDate)
	}

	if preset == "" {
		return entity.Today(uc.Now()), nil
	}
	p, err := entity.ParsePreset(preset)
	if err != nil {
		return entity.DateRange{}, err
	}
	return p.Range(uc.Now())
}

// Load runs both fetches concurrently. Each side fails on its own: a failed fetch
// leaves its section with Err set and never discards the other side's data.
func (uc *DashboardUseCase) Load(ctx context.Context, r entity.DateRange) DashboardView {
	view := DashboardView{Range: r, Label: r.Label()}

	var g errgroup.Group
	g.Go(func() error {
		rows, err := uc.summaries(ctx, r)
		view.Summary = newSummarySection(rows, err)
		return nil
	})
	g.Go(func() error {
		rows, err := uc.records(ctx, r)
		view.Records = newRecordsSection(rows, err)
		return nil
	})
	_ = g.Wait()

	view.FetchedAt = uc.Now()
	return view
}

// Refresh invalida os resultados em cache do intervalo e busca de novo.
func (uc *DashboardUseCase) Refresh(ctx context.Context, r entity.DateRange) DashboardView {
	if err := uc.cache.Delete(ctx, summaryCacheKey(r), reportCacheKey(r)); err != nil {
		uc.console.LogWarning("Failed to invalidate cached results for %s: %s", r.Label(), err)
	}
	return uc.Load(ctx, r)
}

// Table returns the filtered, clamped and paginated transaction table.
func (uc *DashboardUseCase) Table(ctx context.Context, r entity.DateRange, state entity.FilterState) (report.TableView, error) {
	records, err := uc.records(ctx, r)
	if err != nil {
		return report.TableView{}, err
	}
	return report.View(records, state)
}

// Export builds one artifact. Fetch failures are returned as *types.FetchError,
// encoding failures as *types.ExportError.
func (uc *DashboardUseCase) Export(ctx context.Context, kind entity.ArtifactKind, format entity.ExportFormat, r entity.DateRange) (entity.Artifact, error) {
	generatedAt := uc.Now()

	switch kind {
	case entity.KindSummary:
		rows, err := uc.summaries(ctx, r)
		if err != nil {
			return entity.Artifact{}, err
		}
		return uc.artifacts.summary(format, r, rows, generatedAt)
	case entity.KindReport:
		rows, err := uc.records(ctx, r)
		if err != nil {
			return entity.Artifact{}, err
		}
		return uc.artifacts.records(format, r, rows, generatedAt)
	}
	return entity.Artifact{}, &types.ExportError{Kind: string(kind), Format: string(format), Err: fmt.Errorf("unknown export kind")}
}

func (uc *DashboardUseCase) summaries(ctx context.Context, r entity.DateRange) ([]entity.DailySummary, error) {
	return cached(ctx, uc, summaryCacheKey(r), func(ctx context.Context) ([]entity.DailySummary, error) {
		return uc.txRepo.GetTransactionSummary(ctx, r)
	})
}

func (uc *DashboardUseCase) records(ctx context.Context, r entity.DateRange) ([]entity.TransactionRecord, error) {
	return cached(ctx, uc, reportCacheKey(r), func(ctx context.Context) ([]entity.TransactionRecord, error) {
		return uc.txRepo.GetTransactionReport(ctx, r)
	})
}

// cached serve a coleção do cache ou busca e armazena. Falhas do cache nunca
// impedem a busca; falhas da busca nunca são armazenadas.
func cached[T any](ctx context.Context, uc *DashboardUseCase, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	data, err := uc.cache.Get(ctx, key)
	if err == nil {
		var rows []T
		if jsonErr := json.Unmarshal(data, &rows); jsonErr == nil {
			return rows, nil
		}
		uc.console.LogWarning("Discarding unreadable cache entry %s", key)
	} else if !errors.Is(err, types.ErrCacheMiss) {
		uc.console.LogWarning("Cache read failed for %s: %s", key, err)
	}

	rows, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}

	if encoded, err := json.Marshal(rows); err == nil {
		if err := uc.cache.Set(ctx, key, encoded, uc.cfg.Cache.TTL()); err != nil {
			uc.console.LogWarning("Cache write failed for %s: %s", key, err)
		}
	}
	return rows, nil
}

func newSummarySection(rows []entity.DailySummary, err error) SummarySection {
	if err != nil {
		return SummarySection{
			Rows:   []entity.DailySummary{},
			Totals: report.ComputeTotals(nil),
			Chart:  []entity.ChartPoint{},
			Error:  err.Error(),
			Err:    err,
		}
	}
	return SummarySection{
		Rows:   rows,
		Totals: report.ComputeTotals(rows),
		Chart:  report.ToChartSeries(rows),
		Empty:  len(rows) == 0,
	}
}

func newRecordsSection(rows []entity.TransactionRecord, err error) RecordsSection {
	if err != nil {
		return RecordsSection{Rows: []entity.TransactionRecord{}, Error: err.Error(), Err: err}
	}
	return RecordsSection{Rows: rows, Empty: len(rows) == 0}
}

func summaryCacheKey(r entity.DateRange) string {
	return string(types.SourceSummary) + ":" + r.Key()
}

func reportCacheKey(r entity.DateRange) string {
	return string(types.SourceReport) + ":" + r.Key()
}

func location(cfg *types.Config) *time.Location {
	loc, err := cfg.Location()
	if err != nil {
		return time.UTC
	}
	return loc
}
