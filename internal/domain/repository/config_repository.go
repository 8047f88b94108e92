package repository

import (
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading and validating configuration.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	Load(filePath, envFile string) (*types.Config, error)
	Validate(cfg *types.Config, requireMail bool) error
}
