/*
errors.go - Failure taxonomy for the calculation core

PURPOSE:
  All calculation failure modes in one place. The core never panics and
  never lets NaN or Inf escape: the only arithmetic hazard (a zero-sum
  present-value denominator) is caught and reported as a typed error.

ERROR CATEGORIES:
  1. Date-range errors  - maturity at or before the start date
  2. Schedule errors    - a date range too short for even one period
  3. Degenerate sums    - all-zero cash flows (zero notional, zero coupon)

USAGE:
  Callers branch with errors.Is:

    if errors.Is(err, frn.ErrEmptySchedule) { ... }

  or inspect the structured types with errors.As for the inputs that
  produced the failure.

SEE ALSO:
  - duration.go: Converts arithmetic hazards into these errors
  - schedule.go: Raises the date-range and empty-schedule cases
*/
package frn

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEmptySchedule is returned when the period count resolves to
	// zero: the time to maturity is too short for a single period at
	// the chosen reset frequency.
	ErrEmptySchedule = errors.New("empty cash-flow schedule")

	// ErrInvalidDateRange is returned when the maturity date is at or
	// before the start date, ahead of the arithmetic path that would
	// otherwise fail on an empty schedule.
	ErrInvalidDateRange = errors.New("maturity date not after start date")

	// ErrZeroPresentValue is returned when every cash flow has zero
	// present value (zero notional with zero coupon), leaving the
	// duration quotient undefined.
	ErrZeroPresentValue = errors.New("present value sum is zero")
)

// =============================================================================
// STRUCTURED ERRORS - Carry the offending inputs
// =============================================================================

// EmptyScheduleError reports a schedule that resolved to zero periods.
type EmptyScheduleError struct {
	TimeToMaturity  float64
	PaymentsPerYear int
}

func (e *EmptyScheduleError) Error() string {
	return fmt.Sprintf("empty schedule: %.4f years to maturity yields no full period at %d payments/year",
		e.TimeToMaturity, e.PaymentsPerYear)
}

func (e *EmptyScheduleError) Unwrap() error { return ErrEmptySchedule }

// InvalidDateRangeError reports a maturity date at or before the start date.
type InvalidDateRangeError struct {
	StartDate    time.Time
	MaturityDate time.Time
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range: maturity %s is not after start %s",
		e.MaturityDate.Format("2006-01-02"), e.StartDate.Format("2006-01-02"))
}

func (e *InvalidDateRangeError) Unwrap() error { return ErrInvalidDateRange }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to the caller's inputs
// rather than an internal fault. Every calculation error currently is.
func IsClientError(err error) bool {
	return errors.Is(err, ErrEmptySchedule) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrZeroPresentValue)
}
