package repository

import (
	"io"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
)

// ExportRepository renders already-shaped exports into concrete file formats.
type ExportRepository interface {
	WritePDF(w io.Writer, doc entity.Document) error
	WriteXLSX(w io.Writer, sheet entity.Sheet) error
	WriteJSON(w io.Writer, v interface{}) error

	// SaveArtifact writes the artifact under dir and returns its absolute path.
	SaveArtifact(dir string, artifact entity.Artifact) (string, error)
}
