package frn

import "math"

// =============================================================================
// MACAULAY DURATION - Present-value-weighted average time to cash flow
// =============================================================================

// Result is one computed duration together with the schedule facts that
// produced it. Duration is in years, full precision; display rounding is
// the presentation layer's business.
type Result struct {
	Duration        float64
	Periods         int
	PaymentsPerYear int
	TimeToMaturity  float64
}

// MacaulayDuration computes the duration of the FRN described by p.
//
// Every cash flow is discounted at the flat coupon rate alone; the
// spread raises the coupon but not the discount rate. A zero coupon rate
// therefore means no discounting at all, which is well defined.
//
// The function never panics and never returns NaN or Inf: the failure
// modes (maturity not after start, no full period, all-zero cash flows)
// come back as typed errors. See MacaulayDurationValue for the plain
// 0.0-sentinel contract.
func MacaulayDuration(p Parameters) (Result, error) {
	schedule, err := BuildSchedule(p)
	if err != nil {
		return Result{}, err
	}

	m := float64(schedule.PaymentsPerYear)
	perPeriodDiscount := 1 + p.CouponRate/m

	var sumPV, sumWeighted float64
	for _, cf := range schedule.Flows {
		pv := cf.Amount / math.Pow(perPeriodDiscount, float64(cf.Index))
		sumPV += pv
		sumWeighted += cf.Time * pv
	}

	if sumPV == 0 {
		// Zero notional with a zero coupon: every flow is zero and the
		// quotient is undefined.
		return Result{}, ErrZeroPresentValue
	}

	return Result{
		Duration:        sumWeighted / sumPV,
		Periods:         schedule.Periods(),
		PaymentsPerYear: schedule.PaymentsPerYear,
		TimeToMaturity:  schedule.TimeToMaturity,
	}, nil
}

// MacaulayDurationValue is the compatibility form of MacaulayDuration:
// it returns the bare duration and maps every failure to 0.0. A true
// duration of zero is unreachable for any non-empty schedule with
// positive time values, but the sentinel is still ambiguous by
// construction; prefer MacaulayDuration in new code.
func MacaulayDurationValue(p Parameters) float64 {
	res, err := MacaulayDuration(p)
	if err != nil {
		return 0.0
	}
	return res.Duration
}
