package frn

import "time"

// =============================================================================
// DATE HELPERS - Day-granular date arithmetic
// =============================================================================

// daysPerYear is the fixed average-year day count used to turn a span of
// calendar days into fractional years. Leap years are smeared rather than
// modeled; this is deliberately not a full day-count convention.
const daysPerYear = 365.25

// NewDate builds a day-granular date at UTC midnight.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// normalizeDay strips any time-of-day component, leaving UTC midnight.
func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from start to end.
// Negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	return int(normalizeDay(end).Sub(normalizeDay(start)).Hours() / 24)
}

// YearsBetween returns the span from start to end in fractional years
// (days / 365.25).
func YearsBetween(start, end time.Time) float64 {
	return float64(DaysBetween(start, end)) / daysPerYear
}
