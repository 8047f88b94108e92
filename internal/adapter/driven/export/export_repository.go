package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	brand string
}

// NewExportRepository cria uma nova implementação do ExportRepository.
// brand aparece no rodapé dos PDFs.
func NewExportRepository(brand string) repository.ExportRepository {
	return &ExportRepositoryImpl{brand: brand}
}

// WriteJSON grava v como JSON indentado.
func (r *ExportRepositoryImpl) WriteJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("error encoding JSON data: %w", err)
	}
	return nil
}

// SaveArtifact grava o artefato no diretório, criando-o se necessário.
func (r *ExportRepositoryImpl) SaveArtifact(dir string, artifact entity.Artifact) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}

	outputFilename := filepath.Join(dir, artifact.Name)
	if err := os.WriteFile(outputFilename, artifact.Data, 0644); err != nil {
		return "", fmt.Errorf("error writing %s: %w", artifact.Name, err)
	}
	return filepath.Abs(outputFilename)
}
