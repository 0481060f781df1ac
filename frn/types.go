/*
Package frn computes Macaulay Duration for Floating Rate Notes.

PURPOSE:
  This package contains the calculation core: it maps a set of FRN
  parameters (notional, coupon rate, reference-rate spread, reset
  period, start and maturity dates) to a Macaulay Duration in years,
  and derives a comparison of that duration across the four supported
  reset frequencies.

KEY CONCEPTS IN THIS FILE (types.go):
  - Parameters: Immutable input set for one calculation
  - ResetPeriod: How often the coupon resets and pays (Monthly..Annually)
  - Result: A computed duration plus the schedule facts behind it

MODEL SIMPLIFICATIONS (intentional):
  1. Day count is ACT/365.25: days between dates over an average year
  2. The period count truncates: sub-period remainders are dropped
  3. Every cash flow is discounted at the flat coupon rate alone; the
     reference-rate spread enters the coupon but never the discounting

USAGE:
  p := frn.Parameters{
      Notional:     1000,
      CouponRate:   0.05,
      Spread:       0.01,
      ResetPeriod:  frn.ResetQuarterly,
      StartDate:    frn.NewDate(2024, time.January, 1),
      MaturityDate: frn.NewDate(2030, time.December, 31),
  }
  res, err := frn.MacaulayDuration(p)

SEE ALSO:
  - schedule.go: Cash-flow schedule generation
  - duration.go: Present-value weighting and the duration quotient
  - compare.go: Reset-period comparison series
  - errors.go: Failure taxonomy
*/
package frn

import "time"

// =============================================================================
// RESET PERIOD - Payment and reset frequency
// =============================================================================

// ResetPeriod is the frequency at which the FRN coupon resets and pays.
// The string values double as presentation labels.
type ResetPeriod string

const (
	ResetMonthly    ResetPeriod = "Monthly"
	ResetQuarterly  ResetPeriod = "Quarterly"
	ResetSemiAnnual ResetPeriod = "Semi-Annually"
	ResetAnnual     ResetPeriod = "Annually"
)

// CanonicalResetPeriods lists the supported reset periods in their fixed
// presentation order. Comparison series iterate in this order.
func CanonicalResetPeriods() []ResetPeriod {
	return []ResetPeriod{ResetMonthly, ResetQuarterly, ResetSemiAnnual, ResetAnnual}
}

// PaymentsPerYear maps the reset period to coupon payments per year.
// Unrecognized values fall back to annual. This mirrors the reference
// behavior: the fallback is not a validation error.
func (rp ResetPeriod) PaymentsPerYear() int {
	switch rp {
	case ResetMonthly:
		return 12
	case ResetQuarterly:
		return 4
	case ResetSemiAnnual:
		return 2
	default:
		return 1
	}
}

// IsCanonical reports whether rp is one of the four supported labels.
func (rp ResetPeriod) IsCanonical() bool {
	switch rp {
	case ResetMonthly, ResetQuarterly, ResetSemiAnnual, ResetAnnual:
		return true
	}
	return false
}

func (rp ResetPeriod) String() string { return string(rp) }

// =============================================================================
// PARAMETERS - Immutable input set for one calculation
// =============================================================================

// Parameters holds the six inputs of a duration calculation. Values are
// passed by value; the calculator never mutates or retains them.
//
// Rates are decimal fractions (0.05 = 5%), not percentages. Dates are
// day-granular; any time-of-day component is ignored.
type Parameters struct {
	// Notional is the face value repaid at maturity. It scales every
	// cash flow linearly and therefore cancels out of the duration.
	Notional float64

	// CouponRate is the base coupon as a decimal fraction. It is also
	// the flat discount rate for every cash flow.
	CouponRate float64

	// Spread is the reference-rate spread added to CouponRate to form
	// the periodic coupon. It is excluded from discounting.
	Spread float64

	ResetPeriod  ResetPeriod
	StartDate    time.Time
	MaturityDate time.Time
}

// PeriodicCouponRate returns (coupon + spread) / payments per year.
func (p Parameters) PeriodicCouponRate() float64 {
	return (p.CouponRate + p.Spread) / float64(p.ResetPeriod.PaymentsPerYear())
}

// TimeToMaturity returns the maturity horizon in fractional years,
// using the fixed 365.25-day average year.
func (p Parameters) TimeToMaturity() float64 {
	return YearsBetween(p.StartDate, p.MaturityDate)
}

// WithResetPeriod returns a copy of p with the reset period replaced.
// Used by the comparator to vary one axis while holding the rest fixed.
func (p Parameters) WithResetPeriod(rp ResetPeriod) Parameters {
	p.ResetPeriod = rp
	return p
}
