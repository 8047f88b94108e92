package report

import (
	"fmt"
	"strings"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// Page is one slice of a paginated collection.
type Page struct {
	Records    []entity.TransactionRecord `json:"records"`
	Index      int                        `json:"page"`
	Size       int                        `json:"pageSize"`
	TotalPages int                        `json:"totalPages"`
	Total      int                        `json:"total"`
}

// Filter keeps the records whose receipt number contains search (case-insensitive)
// and whose status equals status. An empty search and the "all" status match everything.
// Input order is preserved.
func Filter(records []entity.TransactionRecord, search, status string) []entity.TransactionRecord {
	needle := strings.ToLower(strings.TrimSpace(search))
	anyStatus := status == "" || status == entity.StatusAll

	out := make([]entity.TransactionRecord, 0, len(records))
	for _, r := range records {
		if !anyStatus && r.Status != status {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.ReceiptNumber), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Paginate returns the 1-based page of records. Out-of-range pages are a caller error;
// use FilterState.Clamp before calling. The page's capacity ends at its last record,
// so appending to it never writes into the caller's slice.
func Paginate(records []entity.TransactionRecord, page, size int) (Page, error) {
	if size < 1 {
		return Page{}, fmt.Errorf("%w: %d", types.ErrInvalidPageSize, size)
	}
	totalPages := entity.TotalPages(len(records), size)
	if page < 1 || page > totalPages {
		return Page{}, fmt.Errorf("%w: page %d of %d", types.ErrPageOutOfRange, page, totalPages)
	}

	start := (page - 1) * size
	end := start + size
	if end > len(records) {
		end = len(records)
	}

	return Page{
		Records:    records[start:end:end],
		Index:      page,
		Size:       size,
		TotalPages: totalPages,
		Total:      len(records),
	}, nil
}

// Statuses returns the distinct status tokens in first-seen order, for the status dropdown.
func Statuses(records []entity.TransactionRecord) []string {
	seen := make(map[string]struct{})
	statuses := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Status]; ok {
			continue
		}
		seen[r.Status] = struct{}{}
		statuses = append(statuses, r.Status)
	}
	return statuses
}

// TableView is everything the transactions table needs for one render.
type TableView struct {
	State    entity.FilterState `json:"state"`
	Page     Page               `json:"page"`
	Matched  int                `json:"matched"`
	Statuses []string           `json:"statuses"`
}

// View filters, clamps the requested page and paginates in one step.
func View(records []entity.TransactionRecord, state entity.FilterState) (TableView, error) {
	state = state.Normalize()
	if !entity.ValidPageSize(state.PageSize) {
		return TableView{}, fmt.Errorf("%w: %d", types.ErrInvalidPageSize, state.PageSize)
	}

	filtered := Filter(records, state.Search, state.Status)
	state = state.Clamp(len(filtered))

	page, err := Paginate(filtered, state.Page, state.PageSize)
	if err != nil {
		return TableView{}, err
	}

	return TableView{
		State:    state,
		Page:     page,
		Matched:  len(filtered),
		Statuses: Statuses(records),
	}, nil
}
