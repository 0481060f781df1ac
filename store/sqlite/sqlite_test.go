package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/frn-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecord(id string) sqlite.CalculationRecord {
	return sqlite.CalculationRecord{
		ID:              id,
		Notional:        decimal.NewFromInt(1000),
		CouponRate:      decimal.RequireFromString("0.05"),
		Spread:          decimal.RequireFromString("0.01"),
		ResetPeriod:     "Quarterly",
		StartDate:       time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		MaturityDate:    time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC),
		Status:          sqlite.StatusOK,
		Duration:        decimal.RequireFromString("5.7341928374651029"),
		Periods:         27,
		PaymentsPerYear: 4,
	}
}

func TestStore_SaveAndGetCalculation(t *testing.T) {
	// GIVEN: A saved calculation record
	// WHEN: Reading it back by ID
	// THEN: All fields round-trip, decimals without float drift

	store := newTestStore(t)
	ctx := context.Background()

	rec := sampleRecord("calc-1")
	require.NoError(t, store.SaveCalculation(ctx, rec))

	got, err := store.GetCalculation(ctx, "calc-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, rec.ID, got.ID)
	assert.True(t, rec.Notional.Equal(got.Notional))
	assert.True(t, rec.CouponRate.Equal(got.CouponRate))
	assert.True(t, rec.Spread.Equal(got.Spread))
	assert.True(t, rec.Duration.Equal(got.Duration), "duration must round-trip exactly")
	assert.Equal(t, rec.ResetPeriod, got.ResetPeriod)
	assert.Equal(t, rec.StartDate, got.StartDate)
	assert.Equal(t, rec.MaturityDate, got.MaturityDate)
	assert.Equal(t, rec.Periods, got.Periods)
	assert.Equal(t, rec.PaymentsPerYear, got.PaymentsPerYear)
	assert.Equal(t, sqlite.StatusOK, got.Status)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt defaults to now on save")
}

func TestStore_GetCalculation_MissingReturnsNil(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetCalculation(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveFailedCalculation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := sampleRecord("calc-failed")
	rec.Status = sqlite.StatusEmptySchedule
	rec.Duration = decimal.Zero
	rec.Periods = 0
	rec.FailureReason = "empty schedule: 0.4161 years to maturity yields no full period at 1 payments/year"
	require.NoError(t, store.SaveCalculation(ctx, rec))

	got, err := store.GetCalculation(ctx, "calc-failed")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sqlite.StatusEmptySchedule, got.Status)
	assert.True(t, got.Duration.IsZero())
	assert.NotEmpty(t, got.FailureReason)
}

func TestStore_ListCalculations_NewestFirstWithLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"calc-a", "calc-b", "calc-c"} {
		rec := sampleRecord(id)
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.SaveCalculation(ctx, rec))
	}

	records, err := store.ListCalculations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "calc-c", records[0].ID)
	assert.Equal(t, "calc-b", records[1].ID)
}

func TestStore_Reset_WipesHistory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCalculation(ctx, sampleRecord("calc-1")))
	require.NoError(t, store.Reset(ctx))

	records, err := store.ListCalculations(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_DuplicateID_Rejected(t *testing.T) {
	// Records are insert-only; reusing an ID is a caller bug.
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCalculation(ctx, sampleRecord("calc-1")))
	assert.Error(t, store.SaveCalculation(ctx, sampleRecord("calc-1")))
}
