package frn_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/frn-engine/frn"
)

// =============================================================================
// REFERENCE VALUES
// =============================================================================

func TestMacaulayDuration_SinglePeriodReferenceCase(t *testing.T) {
	// GIVEN: A one-year annual FRN: notional 100, coupon 5%, no spread
	// WHEN: Computing the duration
	// THEN: One period, cash flow 105 discounted to 100, duration exactly 1.0

	p := frn.Parameters{
		Notional:     100,
		CouponRate:   0.05,
		Spread:       0,
		ResetPeriod:  frn.ResetAnnual,
		StartDate:    frn.NewDate(2024, time.January, 1),
		MaturityDate: frn.NewDate(2025, time.January, 1),
	}

	res, err := frn.MacaulayDuration(p)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Periods)
	assert.Equal(t, 1.0, res.Duration)
}

func TestMacaulayDuration_ZeroCouponDegenerateCase(t *testing.T) {
	// GIVEN: Zero coupon and zero spread, so the only cash flow is the
	//        final notional repayment, and the discount rate is zero
	// WHEN: Computing the duration
	// THEN: Duration equals the time of the final period exactly

	p := frn.Parameters{
		Notional:     100,
		CouponRate:   0,
		Spread:       0,
		ResetPeriod:  frn.ResetAnnual,
		StartDate:    frn.NewDate(2024, time.January, 1),
		MaturityDate: frn.NewDate(2027, time.January, 1),
	}

	res, err := frn.MacaulayDuration(p)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Periods)
	assert.Equal(t, 3.0, res.Duration)
}

// =============================================================================
// INVARIANTS
// =============================================================================

func TestMacaulayDuration_ScaleInvariantInNotional(t *testing.T) {
	// Duration is a weighted average of times: the notional scales every
	// cash flow linearly and must cancel out of the quotient.

	base := baseParams()
	ref, err := frn.MacaulayDuration(base)
	require.NoError(t, err)

	for _, notional := range []float64{1, 100, 2500.75, 1e9} {
		p := base
		p.Notional = notional
		res, err := frn.MacaulayDuration(p)
		require.NoError(t, err)
		assert.InDelta(t, ref.Duration, res.Duration, 1e-9,
			"duration must not depend on notional %v", notional)
	}
}

func TestMacaulayDuration_DecreasesWithCouponRate(t *testing.T) {
	// GIVEN: A multi-period schedule with the spread held fixed
	// WHEN: Raising the coupon rate
	// THEN: Duration never increases (heavier early weighting plus
	//       heavier discounting both pull the average forward)

	p := baseParams()
	prev := 1e18
	for _, coupon := range []float64{0.01, 0.03, 0.05, 0.09} {
		p.CouponRate = coupon
		res, err := frn.MacaulayDuration(p)
		require.NoError(t, err)
		require.Greater(t, res.Periods, 1)
		assert.LessOrEqual(t, res.Duration, prev, "coupon %v", coupon)
		prev = res.Duration
	}
}

func TestMacaulayDuration_NonDecreasingWithMaturity(t *testing.T) {
	p := baseParams()
	maturities := []time.Time{
		frn.NewDate(2026, time.January, 1),
		frn.NewDate(2028, time.January, 1),
		frn.NewDate(2030, time.June, 15),
		frn.NewDate(2035, time.December, 31),
	}

	prev := 0.0
	for _, maturity := range maturities {
		p.MaturityDate = maturity
		res, err := frn.MacaulayDuration(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Duration, prev, "maturity %s", maturity.Format("2006-01-02"))
		prev = res.Duration
	}
}

func TestMacaulayDuration_OrderedByResetFrequency(t *testing.T) {
	// More frequent coupons pull cash flows earlier, so in the positive
	// rate regime monthly <= quarterly <= semi-annual <= annual. The
	// property is scenario-checked here, not assumed universal.

	p := baseParams()
	var durations []float64
	for _, rp := range frn.CanonicalResetPeriods() {
		res, err := frn.MacaulayDuration(p.WithResetPeriod(rp))
		require.NoError(t, err)
		durations = append(durations, res.Duration)
	}

	for i := 1; i < len(durations); i++ {
		assert.LessOrEqual(t, durations[i-1], durations[i],
			"%s should not exceed %s", frn.CanonicalResetPeriods()[i-1], frn.CanonicalResetPeriods()[i])
	}
}

// =============================================================================
// FAILURE MODES
// =============================================================================

func TestMacaulayDuration_MaturityEqualsStart_Fails(t *testing.T) {
	p := baseParams()
	p.MaturityDate = p.StartDate

	_, err := frn.MacaulayDuration(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, frn.ErrInvalidDateRange)
}

func TestMacaulayDuration_ZeroNotionalZeroCoupon_Fails(t *testing.T) {
	// All-zero cash flows leave the duration quotient undefined; the
	// error must be typed, never NaN or a panic.

	p := baseParams()
	p.Notional = 0
	p.CouponRate = 0
	p.Spread = 0

	_, err := frn.MacaulayDuration(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, frn.ErrZeroPresentValue)
}

func TestMacaulayDurationValue_ZeroSentinelOnFailure(t *testing.T) {
	// The compatibility form maps every failure to 0.0.

	p := baseParams()
	p.MaturityDate = p.StartDate
	assert.Equal(t, 0.0, frn.MacaulayDurationValue(p))

	ok := baseParams()
	res, err := frn.MacaulayDuration(ok)
	require.NoError(t, err)
	assert.Equal(t, res.Duration, frn.MacaulayDurationValue(ok))
}
