package frn

// =============================================================================
// CASH-FLOW SCHEDULE - Derived, ephemeral payment sequence
// =============================================================================

// CashFlow is one dated payment in the schedule. Index is 1-based; Time
// is the payment time in years (Index / payments per year); Amount is in
// the same currency units as the notional.
type CashFlow struct {
	Index  int
	Time   float64
	Amount float64
}

// Schedule is the ordered cash-flow sequence generated from one set of
// parameters. All flows except the last equal notional times the periodic
// coupon; the last additionally repays the notional.
type Schedule struct {
	Flows           []CashFlow
	PaymentsPerYear int
	PeriodicRate    float64
	TimeToMaturity  float64
}

// Periods returns the number of cash flows in the schedule.
func (s Schedule) Periods() int { return len(s.Flows) }

// FinalMaturity returns the time in years of the last cash flow.
func (s Schedule) FinalMaturity() float64 {
	if len(s.Flows) == 0 {
		return 0
	}
	return s.Flows[len(s.Flows)-1].Time
}

// BuildSchedule generates the periodic cash-flow schedule for p.
//
// The period count truncates toward zero: a maturity of 2.9 years at
// annual resets yields two periods, and the 0.9-year remainder is
// dropped. Rounding instead of truncating would change the schedule and
// every downstream number, so the truncation is load-bearing.
func BuildSchedule(p Parameters) (Schedule, error) {
	if !p.MaturityDate.After(p.StartDate) {
		return Schedule{}, &InvalidDateRangeError{StartDate: p.StartDate, MaturityDate: p.MaturityDate}
	}

	paymentsPerYear := p.ResetPeriod.PaymentsPerYear()
	timeToMaturity := p.TimeToMaturity()
	periodicRate := p.PeriodicCouponRate()

	periods := int(timeToMaturity * float64(paymentsPerYear))
	if periods == 0 {
		return Schedule{}, &EmptyScheduleError{
			TimeToMaturity:  timeToMaturity,
			PaymentsPerYear: paymentsPerYear,
		}
	}

	coupon := p.Notional * periodicRate
	flows := make([]CashFlow, periods)
	for i := range flows {
		flows[i] = CashFlow{
			Index:  i + 1,
			Time:   float64(i+1) / float64(paymentsPerYear),
			Amount: coupon,
		}
	}
	// The notional comes back with the final coupon.
	flows[periods-1].Amount += p.Notional

	return Schedule{
		Flows:           flows,
		PaymentsPerYear: paymentsPerYear,
		PeriodicRate:    periodicRate,
		TimeToMaturity:  timeToMaturity,
	}, nil
}
