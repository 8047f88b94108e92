package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

func TestFilterStateResetsPage(t *testing.T) {
	f := NewFilterState().WithPage(4)
	assert.Equal(t, 4, f.Page)

	assert.Equal(t, 1, f.WithSearch("R-10").Page)
	assert.Equal(t, 1, f.WithStatus(StatusRefund).Page)

	sized, err := f.WithPageSize(25)
	require.NoError(t, err)
	assert.Equal(t, 1, sized.Page)
	assert.Equal(t, 25, sized.PageSize)

	_, err = f.WithPageSize(30)
	assert.ErrorIs(t, err, types.ErrInvalidPageSize)

	assert.Equal(t, StatusAll, f.WithStatus("").Status)
}

func TestFilterStateClamp(t *testing.T) {
	f := FilterState{Page: 9, PageSize: 50}
	clamped := f.Clamp(105)
	assert.Equal(t, 3, clamped.Page)
	assert.Equal(t, StatusAll, clamped.Status)

	assert.Equal(t, 1, f.Clamp(0).Page)
	assert.Equal(t, 1, FilterState{Page: -2}.Clamp(10).Page)
	assert.Equal(t, DefaultPageSize, FilterState{}.Clamp(10).PageSize)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 50, 1},
		{1, 50, 1},
		{50, 50, 1},
		{51, 50, 2},
		{105, 50, 3},
		{100, 10, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.size), "%d/%d", tt.count, tt.size)
	}
}

func TestDocumentPages(t *testing.T) {
	empty := Document{Title: "Empty"}
	pages := empty.Pages()
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0])

	rows := make([][]string, 7)
	for i := range rows {
		rows[i] = []string{"row"}
	}
	doc := Document{Rows: rows, RowsPerPage: 3}
	pages = doc.Pages()
	require.Len(t, pages, 3)
	assert.Len(t, pages[0], 3)
	assert.Len(t, pages[2], 1)
}
