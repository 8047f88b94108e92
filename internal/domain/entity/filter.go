package entity

import (
	"fmt"

	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// StatusAll is the sentinel that disables the status filter.
const StatusAll = "all"

// DefaultPageSize é o tamanho de página inicial da tabela de transações.
const DefaultPageSize = 50

// PageSizes are the page sizes the transactions table offers.
var PageSizes = []int{10, 25, 50, 100}

// FilterState is the table state owned by the presentation layer.
// Changing the search text, the status or the page size sends the table back to page 1.
type FilterState struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// NewFilterState returns the state of a freshly opened table.
func NewFilterState() FilterState {
	return FilterState{Status: StatusAll, Page: 1, PageSize: DefaultPageSize}
}

func (f FilterState) WithSearch(search string) FilterState {
	f.Search = search
	f.Page = 1
	return f
}

func (f FilterState) WithStatus(status string) FilterState {
	if status == "" {
		status = StatusAll
	}
	f.Status = status
	f.Page = 1
	return f
}

// WithPageSize rejects sizes outside PageSizes.
func (f FilterState) WithPageSize(size int) (FilterState, error) {
	if !ValidPageSize(size) {
		return f, fmt.Errorf("%w: %d (allowed: %v)", types.ErrInvalidPageSize, size, PageSizes)
	}
	f.PageSize = size
	f.Page = 1
	return f, nil
}

func (f FilterState) WithPage(page int) FilterState {
	f.Page = page
	return f
}

// Normalize fills missing fields with the defaults of NewFilterState.
func (f FilterState) Normalize() FilterState {
	if f.Status == "" {
		f.Status = StatusAll
	}
	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}
	if f.Page < 1 {
		f.Page = 1
	}
	return f
}

// Clamp keeps Page within [1, TotalPages(filteredCount, PageSize)].
func (f FilterState) Clamp(filteredCount int) FilterState {
	f = f.Normalize()
	if last := TotalPages(filteredCount, f.PageSize); f.Page > last {
		f.Page = last
	}
	return f
}

// ValidPageSize reports whether size is one of PageSizes.
func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// TotalPages returns max(1, ceil(count/size)). size must be positive.
func TotalPages(count, size int) int {
	if count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}
