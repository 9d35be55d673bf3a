package search

import (
	"fmt"

	"fairway/models"
)

// TimeWindow bounds slot times inclusively on both ends. Zero-padded "HH:mm"
// strings order lexicographically, so plain string comparison suffices. An
// empty bound is open.
type TimeWindow struct {
	Start string
	End   string
}

// Named convenience windows. There is no external standard for these
// buckets; the boundaries below are this engine's contract:
// morning 06:00-10:59, midday 11:00-13:59, afternoon 14:00-16:59,
// twilight 17:00 onward.
var namedWindows = map[string]TimeWindow{
	"morning":   {Start: "06:00", End: "10:59"},
	"midday":    {Start: "11:00", End: "13:59"},
	"afternoon": {Start: "14:00", End: "16:59"},
	"twilight":  {Start: "17:00", End: "23:59"},
}

// NamedWindow resolves a named time bucket.
func NamedWindow(name string) (TimeWindow, bool) {
	w, ok := namedWindows[name]
	return w, ok
}

// ValidateFilterTimes rejects malformed time bounds before they reach the
// window comparison, where an unpadded "9:00" would silently exclude every
// slot instead of erroring.
func ValidateFilterTimes(f models.CourseFilters) error {
	for _, t := range []string{f.StartTime, f.EndTime, f.DesiredTime} {
		if t != "" && !models.ValidClockTime(t) {
			return fmt.Errorf("invalid time %q: want HH:mm", t)
		}
	}
	return nil
}

// WindowFromFilters builds the effective slot window: the named bucket first,
// with explicit start/end bounds overriding per field.
func WindowFromFilters(f models.CourseFilters) TimeWindow {
	var w TimeWindow
	if named, ok := NamedWindow(f.TimeWindow); ok {
		w = named
	}
	if f.StartTime != "" {
		w.Start = f.StartTime
	}
	if f.EndTime != "" {
		w.End = f.EndTime
	}
	return w
}

func (w TimeWindow) contains(t string) bool {
	if w.Start != "" && t < w.Start {
		return false
	}
	if w.End != "" && t > w.End {
		return false
	}
	return true
}

// IsZero reports whether the window is unbounded.
func (w TimeWindow) IsZero() bool {
	return w.Start == "" && w.End == ""
}

// AvailabilitySummary aggregates one course's tee sheet for a single date.
// CheapestPrice is nil when no slot in the window is available.
type AvailabilitySummary struct {
	Slots          []models.TeeSlot
	AvailableCount int
	CheapestPrice  *float64
	EarliestTime   string
}

// MatchAvailability computes the windowed slot view for a course on a date.
// A course with no tee sheet for the date yields an empty summary; source
// order is already chronological so slot order is preserved.
func MatchAvailability(course *models.Course, date string, window TimeWindow) AvailabilitySummary {
	var summary AvailabilitySummary

	day := course.AvailabilityOn(date)
	if day == nil {
		return summary
	}

	for _, slot := range day.Slots {
		if !window.contains(slot.Time) {
			continue
		}
		summary.Slots = append(summary.Slots, slot)
		if !slot.Available {
			continue
		}
		summary.AvailableCount++
		if summary.CheapestPrice == nil || slot.Price < *summary.CheapestPrice {
			price := slot.Price
			summary.CheapestPrice = &price
		}
		if summary.EarliestTime == "" {
			summary.EarliestTime = slot.Time
		}
	}
	return summary
}

// hasAnyAvailability scans the full forward window for at least one open slot.
func hasAnyAvailability(course *models.Course) bool {
	for _, day := range course.Availability {
		for _, slot := range day.Slots {
			if slot.Available {
				return true
			}
		}
	}
	return false
}
