package frn

// =============================================================================
// RESET-PERIOD COMPARISON - Duration across the four reset frequencies
// =============================================================================

// SeriesPoint is one labeled entry of a comparison series. Exactly one of
// Result and Err is meaningful; a failed sub-calculation carries its error
// here instead of failing the series.
type SeriesPoint struct {
	Period ResetPeriod
	Result Result
	Err    error
}

// OK reports whether this point holds a computed duration.
func (sp SeriesPoint) OK() bool { return sp.Err == nil }

// Series is an ordered comparison of durations across reset periods.
// Order is the canonical one (Monthly, Quarterly, Semi-Annually,
// Annually) and is semantically meaningful for presentation.
type Series []SeriesPoint

// Durations returns the duration per point, using the zero sentinel for
// failed points. Parallel to Labels; intended for chart-style consumers.
func (s Series) Durations() []float64 {
	out := make([]float64, len(s))
	for i, sp := range s {
		if sp.OK() {
			out[i] = sp.Result.Duration
		}
	}
	return out
}

// Labels returns the reset-period labels in series order.
func (s Series) Labels() []string {
	out := make([]string, len(s))
	for i, sp := range s {
		out[i] = sp.Period.String()
	}
	return out
}

// CompareResetPeriods computes the duration of p under each canonical
// reset period, holding every other parameter fixed. The series always
// contains exactly four points in canonical order; individual failures
// surface on their own point and never suppress the others.
func CompareResetPeriods(p Parameters) Series {
	periods := CanonicalResetPeriods()
	series := make(Series, 0, len(periods))
	for _, rp := range periods {
		res, err := MacaulayDuration(p.WithResetPeriod(rp))
		series = append(series, SeriesPoint{Period: rp, Result: res, Err: err})
	}
	return series
}
