package entity

import (
	"fmt"
	"strings"

	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// ArtifactKind selects which collection an export is built from.
type ArtifactKind string

const (
	KindSummary ArtifactKind = "summary"
	KindReport  ArtifactKind = "report"
)

// ExportFormat is the file format of an export artifact.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatPDF  ExportFormat = "pdf"
	FormatXLSX ExportFormat = "xlsx"
	FormatJSON ExportFormat = "json"
)

var contentTypes = map[ExportFormat]string{
	FormatCSV:  "text/csv; charset=utf-8",
	FormatPDF:  "application/pdf",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatJSON: "application/json",
}

// ParseArtifactKind accepts "summary" or "report".
func ParseArtifactKind(s string) (ArtifactKind, error) {
	switch k := ArtifactKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSummary, KindReport:
		return k, nil
	}
	return "", fmt.Errorf("unknown export kind %q", s)
}

// ParseExportFormat accepts csv, pdf, xlsx or json.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := contentTypes[f]; !ok {
		return "", fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, s)
	}
	return f, nil
}

// ContentType returns the MIME type served for the format.
func (f ExportFormat) ContentType() string {
	return contentTypes[f]
}

// Artifact is a rendered export ready to be downloaded, attached or saved.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// Email is a message handed to the mail transport.
type Email struct {
	To          []string
	Subject     string
	HTML        string
	Text        string
	Attachments []Artifact
}
