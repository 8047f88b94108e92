package types

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	ErrInvalidDateRange   = errors.New("invalid date range: 'from' must not be after 'to'")
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrPageOutOfRange     = errors.New("page index out of range")
	ErrNoRecipients       = errors.New("no email recipients configured. Please set EMAIL_RECIPIENTS")
	ErrMissingCredentials = errors.New("POS API credentials are not configured")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrUnknownPreset      = errors.New("unknown date range preset")
	ErrCacheMiss          = errors.New("cache miss")
)

// FetchSource identifica qual das duas consultas à API falhou.
type FetchSource string

const (
	SourceSummary FetchSource = "summary"
	SourceReport  FetchSource = "report"
)

// FetchError is returned when the POS API could not deliver one of the two collections.
type FetchError struct {
	Source     FetchSource
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s (status %d): %v", e.Source, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsTimeout reports whether the fetch gave up because its bounded wait elapsed.
func (e *FetchError) IsTimeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// ExportError wraps a failure while encoding or writing an export artifact.
type ExportError struct {
	Kind   string
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export %s as %s: %v", e.Kind, e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// ConfigError aggrega todos os problemas de configuração encontrados na inicialização.
type ConfigError struct {
	Problems []string
	Errs     []error
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

func (e *ConfigError) Unwrap() []error { return e.Errs }

// Add registra um problema; err pode ser nil quando só há a mensagem.
func (e *ConfigError) Add(problem string, err error) {
	e.Problems = append(e.Problems, problem)
	if err != nil {
		e.Errs = append(e.Errs, err)
	}
}

// OrNil returns nil when no problem was recorded.
func (e *ConfigError) OrNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}
