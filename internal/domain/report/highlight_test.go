package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  []Segment
	}{
		{"empty text", "", "a", []Segment{}},
		{"empty query", "INV-1", "", []Segment{{Text: "INV-1"}}},
		{"no match", "INV-1", "x", []Segment{{Text: "INV-1"}}},
		{"middle", "INV-1001", "v-1", []Segment{{Text: "IN"}, {Text: "V-1", Match: true}, {Text: "001"}}},
		{"whole", "abc", "ABC", []Segment{{Text: "abc", Match: true}}},
		{"repeated", "aXaXa", "a", []Segment{
			{Text: "a", Match: true}, {Text: "X"}, {Text: "a", Match: true}, {Text: "X"}, {Text: "a", Match: true},
		}},
		{"no overlap", "aaa", "aa", []Segment{{Text: "aa", Match: true}, {Text: "a"}}},
		{"unicode", "Çağrı-42", "ĞR", []Segment{{Text: "Ça"}, {Text: "ğr", Match: true}, {Text: "ı-42"}}},
		{"query longer than text", "ab", "abc", []Segment{{Text: "ab"}}},
		{"query is trimmed", "R-100", " 1", []Segment{{Text: "R-"}, {Text: "1", Match: true}, {Text: "00"}}},
		{"blank query", "R-100", "   ", []Segment{{Text: "R-100"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.text, tt.query))
		})
	}
}

func TestHighlightMarksEveryFilteredRecord(t *testing.T) {
	in := records(12)
	search := " r-001 "

	matched := Filter(in, search, entity.StatusAll)
	require.NotEmpty(t, matched)
	for _, r := range matched {
		hasMatch := false
		for _, seg := range Highlight(r.ReceiptNumber, search) {
			hasMatch = hasMatch || seg.Match
		}
		assert.True(t, hasMatch, r.ReceiptNumber)
	}
}

func TestHighlightPreservesText(t *testing.T) {
	text := "REF-0042-ref"
	var joined string
	for _, s := range Highlight(text, "ref") {
		joined += s.Text
	}
	assert.Equal(t, text, joined)
}
