package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestNewDateRange(t *testing.T) {
	from := NewDate(2025, time.December, 1)
	to := NewDate(2025, time.December, 2)

	r, err := NewDateRange(from, to)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Days())

	_, err = NewDateRange(to, from)
	assert.True(t, errors.Is(err, types.ErrInvalidDateRange))

	same, err := NewDateRange(from, from)
	require.NoError(t, err)
	assert.Equal(t, 1, same.Days())
}

func TestDateRangeLabel(t *testing.T) {
	r := DateRange{From: NewDate(2025, time.December, 1), To: NewDate(2025, time.December, 2)}
	assert.Equal(t, "Dec 1 - Dec 2, 2025", r.Label())
	assert.Equal(t, "2025-12-01..2025-12-02", r.Key())
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{From: NewDate(2025, time.March, 10), To: NewDate(2025, time.March, 12)}
	assert.True(t, r.Contains(NewDate(2025, time.March, 10)))
	assert.True(t, r.Contains(NewDate(2025, time.March, 12)))
	assert.False(t, r.Contains(NewDate(2025, time.March, 9)))
	assert.False(t, r.Contains(NewDate(2025, time.March, 13)))
}

func TestLastNDays(t *testing.T) {
	now := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

	for _, n := range []int{1, 2, 7, 30, 366} {
		r, err := LastNDays(now, n)
		require.NoError(t, err)
		assert.Equal(t, n, r.Days(), "n=%d", n)
		assert.Equal(t, DateOf(now), r.To, "n=%d", n)
	}

	r, err := LastNDays(now, 7)
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.February, 23), r.From)

	_, err = LastNDays(now, 0)
	assert.ErrorIs(t, err, types.ErrInvalidDateRange)
}

func TestPresetsUseNowLocation(t *testing.T) {
	dubai := mustLoad(t, "Asia/Dubai")
	// 21:30 UTC on Nov 30 is already Dec 1 in Dubai.
	now := time.Date(2025, time.November, 30, 21, 30, 0, 0, time.UTC).In(dubai)

	assert.Equal(t, SingleDay(NewDate(2025, time.December, 1)), Today(now))
	assert.Equal(t, SingleDay(NewDate(2025, time.November, 30)), Yesterday(now))
	assert.Equal(t, SingleDay(NewDate(2025, time.November, 30)), Today(now.UTC()))
}

func TestThisWeekStartsOnMonday(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		from Date
		to   Date
	}{
		{"monday", time.Date(2025, time.December, 1, 12, 0, 0, 0, time.UTC), NewDate(2025, time.December, 1), NewDate(2025, time.December, 7)},
		{"wednesday", time.Date(2025, time.December, 3, 12, 0, 0, 0, time.UTC), NewDate(2025, time.December, 1), NewDate(2025, time.December, 7)},
		{"sunday", time.Date(2025, time.December, 7, 23, 59, 0, 0, time.UTC), NewDate(2025, time.December, 1), NewDate(2025, time.December, 7)},
		{"across year", time.Date(2026, time.January, 1, 8, 0, 0, 0, time.UTC), NewDate(2025, time.December, 29), NewDate(2026, time.January, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ThisWeek(tt.now)
			assert.Equal(t, tt.from, r.From)
			assert.Equal(t, tt.to, r.To)
			assert.Equal(t, time.Monday, r.From.Weekday())
		})
	}
}

func TestThisMonth(t *testing.T) {
	tests := []struct {
		now  time.Time
		want DateRange
	}{
		{time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), DateRange{NewDate(2024, time.February, 1), NewDate(2024, time.February, 29)}},
		{time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), DateRange{NewDate(2025, time.February, 1), NewDate(2025, time.February, 28)}},
		{time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), DateRange{NewDate(2025, time.December, 1), NewDate(2025, time.December, 31)}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ThisMonth(tt.now), tt.now.String())
	}
}

func TestParsePreset(t *testing.T) {
	now := time.Date(2025, time.December, 3, 10, 0, 0, 0, time.UTC)

	for _, p := range Presets {
		parsed, err := ParsePreset(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
		assert.NotEmpty(t, p.Title())

		r, err := p.Range(now)
		require.NoError(t, err)
		assert.False(t, r.From.After(r.To), "preset %s", p)
	}

	p, err := ParsePreset("  Last-7-Days ")
	require.NoError(t, err)
	assert.Equal(t, PresetLast7Days, p)

	_, err = ParsePreset("fortnight")
	assert.ErrorIs(t, err, types.ErrUnknownPreset)
}
