package frn_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/frn-engine/frn"
)

func TestCompareResetPeriods_FourLabelsInCanonicalOrder(t *testing.T) {
	// The series contract: exactly four points, fixed order, regardless
	// of individual outcomes.

	series := frn.CompareResetPeriods(baseParams())
	require.Len(t, series, 4)

	assert.Equal(t,
		[]string{"Monthly", "Quarterly", "Semi-Annually", "Annually"},
		series.Labels())
	for _, sp := range series {
		assert.True(t, sp.OK(), "%s should compute for a 7-year note", sp.Period)
		assert.Greater(t, sp.Result.Duration, 0.0)
	}
}

func TestCompareResetPeriods_PartialFailureIsIsolated(t *testing.T) {
	// GIVEN: Six months to maturity, enough for monthly and quarterly
	//        periods, too short for semi-annual and annual ones
	// WHEN: Comparing reset periods
	// THEN: The short frequencies fail on their own points while the
	//       others still carry results

	p := baseParams()
	p.StartDate = frn.NewDate(2024, time.January, 1)
	p.MaturityDate = frn.NewDate(2024, time.July, 1)

	series := frn.CompareResetPeriods(p)
	require.Len(t, series, 4)

	byPeriod := map[frn.ResetPeriod]frn.SeriesPoint{}
	for _, sp := range series {
		byPeriod[sp.Period] = sp
	}

	assert.True(t, byPeriod[frn.ResetMonthly].OK())
	assert.True(t, byPeriod[frn.ResetQuarterly].OK())
	assert.ErrorIs(t, byPeriod[frn.ResetSemiAnnual].Err, frn.ErrEmptySchedule)
	assert.ErrorIs(t, byPeriod[frn.ResetAnnual].Err, frn.ErrEmptySchedule)
}

func TestSeries_DurationsUseZeroSentinelForFailedPoints(t *testing.T) {
	p := baseParams()
	p.MaturityDate = frn.NewDate(2024, time.July, 1)

	durations := frn.CompareResetPeriods(p).Durations()
	require.Len(t, durations, 4)

	assert.Greater(t, durations[0], 0.0) // Monthly
	assert.Greater(t, durations[1], 0.0) // Quarterly
	assert.Equal(t, 0.0, durations[2])   // Semi-Annually: empty schedule
	assert.Equal(t, 0.0, durations[3])   // Annually: empty schedule
}
