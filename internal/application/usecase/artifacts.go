package usecase

import (
	"bytes"
	"fmt"
	"time"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/report"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/repository"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// artifactBuilder turns a fetched collection into a named, typed file.
type artifactBuilder struct {
	exportRepo  repository.ExportRepository
	currency    string
	rowsPerPage int
}

func newArtifactBuilder(exportRepo repository.ExportRepository, cfg *types.Config) artifactBuilder {
	return artifactBuilder{
		exportRepo:  exportRepo,
		currency:    cfg.Currency,
		rowsPerPage: cfg.Export.RowsPerPage,
	}
}

func (b artifactBuilder) options(generatedAt time.Time) report.DocumentOptions {
	return report.DocumentOptions{
		Currency:    b.currency,
		GeneratedAt: generatedAt,
		RowsPerPage: b.rowsPerPage,
	}
}

type summaryExport struct {
	Range  entity.DateRange      `json:"range"`
	Label  string                `json:"label"`
	Totals entity.Totals         `json:"totals"`
	Rows   []entity.DailySummary `json:"rows"`
}

type recordsExport struct {
	Range entity.DateRange           `json:"range"`
	Label string                     `json:"label"`
	Count int                        `json:"count"`
	Rows  []entity.TransactionRecord `json:"rows"`
}

func (b artifactBuilder) summary(format entity.ExportFormat, r entity.DateRange, rows []entity.DailySummary, generatedAt time.Time) (entity.Artifact, error) {
	var buf bytes.Buffer
	var err error

	switch format {
	case entity.FormatCSV:
		err = report.WriteSummaryDelimited(&buf, rows)
	case entity.FormatPDF:
		err = b.exportRepo.WritePDF(&buf, report.SummaryToDocument(rows, r.Label(), b.options(generatedAt)))
	case entity.FormatXLSX:
		err = b.exportRepo.WriteXLSX(&buf, report.SummaryToSheet(rows))
	case entity.FormatJSON:
		err = b.exportRepo.WriteJSON(&buf, summaryExport{
			Range:  r,
			Label:  r.Label(),
			Totals: report.ComputeTotals(rows),
			Rows:   nonNil(rows),
		})
	default:
		err = fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, format)
	}

	return b.finish(entity.KindSummary, format, r, &buf, err)
}

func (b artifactBuilder) records(format entity.ExportFormat, r entity.DateRange, rows []entity.TransactionRecord, generatedAt time.Time) (entity.Artifact, error) {
	var buf bytes.Buffer
	var err error

	switch format {
	case entity.FormatCSV:
		err = report.WriteRecordsDelimited(&buf, rows)
	case entity.FormatPDF:
		err = b.exportRepo.WritePDF(&buf, report.RecordsToDocument(rows, r.Label(), b.options(generatedAt)))
	case entity.FormatXLSX:
		err = b.exportRepo.WriteXLSX(&buf, report.RecordsToSheet(rows))
	case entity.FormatJSON:
		err = b.exportRepo.WriteJSON(&buf, recordsExport{
			Range: r,
			Label: r.Label(),
			Count: len(rows),
			Rows:  nonNil(rows),
		})
	default:
		err = fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, format)
	}

	return b.finish(entity.KindReport, format, r, &buf, err)
}

func (b artifactBuilder) finish(kind entity.ArtifactKind, format entity.ExportFormat, r entity.DateRange, buf *bytes.Buffer, err error) (entity.Artifact, error) {
	if err != nil {
		return entity.Artifact{}, &types.ExportError{Kind: string(kind), Format: string(format), Err: err}
	}
	return entity.Artifact{
		Name:        report.ArtifactName(kind, r.Label(), format),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
