package report

import (
	"strings"
	"unicode"
)

// Segment is a run of text that either matched the search query or did not.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Highlight splits text into segments, marking every case-insensitive occurrence of query.
// Matches never overlap. The query is trimmed like the search in Filter; an empty
// query yields the whole text as one plain segment.
func Highlight(text, query string) []Segment {
	query = strings.TrimSpace(query)
	if text == "" {
		return []Segment{}
	}
	if query == "" {
		return []Segment{{Text: text}}
	}

	src := []rune(text)
	q := foldRunes([]rune(query))
	folded := foldRunes(src)

	segments := make([]Segment, 0, 3)
	plainStart := 0
	for i := 0; i+len(q) <= len(src); {
		if !hasPrefixAt(folded, q, i) {
			i++
			continue
		}
		if plainStart < i {
			segments = append(segments, Segment{Text: string(src[plainStart:i])})
		}
		segments = append(segments, Segment{Text: string(src[i : i+len(q)]), Match: true})
		i += len(q)
		plainStart = i
	}
	if plainStart < len(src) {
		segments = append(segments, Segment{Text: string(src[plainStart:])})
	}
	return segments
}

func foldRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func hasPrefixAt(s, prefix []rune, at int) bool {
	for j, r := range prefix {
		if s[at+j] != r {
			return false
		}
	}
	return true
}
