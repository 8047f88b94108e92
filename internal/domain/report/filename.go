package report

import (
	"fmt"
	"regexp"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
)

var unsafeLabelChars = regexp.MustCompile(`[^A-Za-z0-9-]`)

// SanitizeLabel replaces every character outside [A-Za-z0-9-] with '-'.
func SanitizeLabel(label string) string {
	return unsafeLabelChars.ReplaceAllString(label, "-")
}

// ArtifactName returns transaction-{kind}-{sanitized label}.{ext}.
func ArtifactName(kind entity.ArtifactKind, rangeLabel string, format entity.ExportFormat) string {
	return fmt.Sprintf("transaction-%s-%s.%s", kind, SanitizeLabel(rangeLabel), format)
}
