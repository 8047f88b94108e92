package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// DateRange is an inclusive pair of calendar dates.
type DateRange struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// NewDateRange validates that from is not after to.
func NewDateRange(from, to Date) (DateRange, error) {
	if from.After(to) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", types.ErrInvalidDateRange, from, to)
	}
	return DateRange{From: from, To: to}, nil
}

// SingleDay returns the range covering only d.
func SingleDay(d Date) DateRange {
	return DateRange{From: d, To: d}
}

// Days returns how many calendar days the range spans.
func (r DateRange) Days() int {
	return r.From.DaysUntil(r.To) + 1
}

// Contains reports whether d falls inside the range, bounds included.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

// Label returns the human label shown on the dashboard, e.g. "Dec 1 - Dec 2, 2025".
func (r DateRange) Label() string {
	return fmt.Sprintf("%s - %s", r.From.Format("Jan 2"), r.To.Format("Jan 2, 2006"))
}

// Key identifica o intervalo em chaves de cache.
func (r DateRange) Key() string {
	return r.From.String() + ".." + r.To.String()
}

// Preset nomeia um dos intervalos rápidos do seletor de datas.
type Preset string

const (
	PresetToday      Preset = "today"
	PresetYesterday  Preset = "yesterday"
	PresetLast7Days  Preset = "last-7-days"
	PresetLast30Days Preset = "last-30-days"
	PresetThisWeek   Preset = "this-week"
	PresetThisMonth  Preset = "this-month"
)

// Presets lists the presets in the order the date picker shows them.
var Presets = []Preset{
	PresetToday,
	PresetYesterday,
	PresetLast7Days,
	PresetLast30Days,
	PresetThisWeek,
	PresetThisMonth,
}

var presetTitles = map[Preset]string{
	PresetToday:      "Today",
	PresetYesterday:  "Yesterday",
	PresetLast7Days:  "Last 7 days",
	PresetLast30Days: "Last 30 days",
	PresetThisWeek:   "This Week",
	PresetThisMonth:  "This Month",
}

// ParsePreset resolves a preset name, case-insensitively.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presetTitles[p]; !ok {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownPreset, s)
	}
	return p, nil
}

func (p Preset) Title() string {
	return presetTitles[p]
}

// Range evaluates the preset against now. The calendar day is taken in now's location.
func (p Preset) Range(now time.Time) (DateRange, error) {
	switch p {
	case PresetToday:
		return Today(now), nil
	case PresetYesterday:
		return Yesterday(now), nil
	case PresetLast7Days:
		return LastNDays(now, 7)
	case PresetLast30Days:
		return LastNDays(now, 30)
	case PresetThisWeek:
		return ThisWeek(now), nil
	case PresetThisMonth:
		return ThisMonth(now), nil
	}
	return DateRange{}, fmt.Errorf("%w: %q", types.ErrUnknownPreset, string(p))
}

func Today(now time.Time) DateRange {
	return SingleDay(DateOf(now))
}

func Yesterday(now time.Time) DateRange {
	return SingleDay(DateOf(now).AddDays(-1))
}

// LastNDays returns {today-(n-1), today}. n must be at least 1.
func LastNDays(now time.Time, n int) (DateRange, error) {
	if n < 1 {
		return DateRange{}, fmt.Errorf("%w: last-N-days needs N >= 1, got %d", types.ErrInvalidDateRange, n)
	}
	today := DateOf(now)
	return DateRange{From: today.AddDays(-(n - 1)), To: today}, nil
}

// ThisWeek returns Monday through Sunday of the current week.
func ThisWeek(now time.Time) DateRange {
	today := DateOf(now)
	offset := (int(today.Weekday()) + 6) % 7
	monday := today.AddDays(-offset)
	return DateRange{From: monday, To: monday.AddDays(6)}
}

// ThisMonth returns the first through the last day of the current month.
func ThisMonth(now time.Time) DateRange {
	today := DateOf(now)
	first := NewDate(today.Year, today.Month, 1)
	last := NewDate(today.Year, today.Month+1, 0)
	return DateRange{From: first, To: last}
}
