/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the calculation core from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

DISPLAY PRECISION:
  duration carries full precision; duration_display is rounded to three
  decimal places for presentation, never used in further arithmetic.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - frn/types.go: The domain parameter struct DTOs translate into
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/frn-engine/frn"
	"github.com/warp/frn-engine/store/sqlite"
)

// displayPlaces is the rounding applied to duration_display fields.
const displayPlaces = 3

// =============================================================================
// REQUEST TYPES
// =============================================================================

// CalculationRequest carries the six FRN inputs. Rates are decimal
// fractions; dates use YYYY-MM-DD.
type CalculationRequest struct {
	Notional     float64 `json:"notional"`
	CouponRate   float64 `json:"coupon_rate"`
	Spread       float64 `json:"spread"`
	ResetPeriod  string  `json:"reset_period"`
	StartDate    string  `json:"start_date"`
	MaturityDate string  `json:"maturity_date"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// CalculationDTO is one calculation, successful or not, as returned to
// clients and as listed from history.
type CalculationDTO struct {
	ID              string  `json:"id"`
	Notional        float64 `json:"notional"`
	CouponRate      float64 `json:"coupon_rate"`
	Spread          float64 `json:"spread"`
	ResetPeriod     string  `json:"reset_period"`
	StartDate       string  `json:"start_date"`
	MaturityDate    string  `json:"maturity_date"`
	Status          string  `json:"status"`
	Duration        float64 `json:"duration"`
	DurationDisplay string  `json:"duration_display"`
	Periods         int     `json:"periods"`
	PaymentsPerYear int     `json:"payments_per_year"`
	FailureReason   string  `json:"failure_reason,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"`
}

// ComparisonPointDTO is one labeled entry of a comparison response.
type ComparisonPointDTO struct {
	ResetPeriod     string  `json:"reset_period"`
	Status          string  `json:"status"`
	Duration        float64 `json:"duration"`
	DurationDisplay string  `json:"duration_display"`
	Periods         int     `json:"periods"`
	FailureReason   string  `json:"failure_reason,omitempty"`
}

// ComparisonDTO is the duration-vs-reset-period series, always four
// points in canonical order.
type ComparisonDTO struct {
	Points []ComparisonPointDTO `json:"points"`
}

// ScenarioDTO describes a canned demo parameter set.
type ScenarioDTO struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Request     CalculationRequest `json:"request"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func displayDuration(d float64) string {
	return decimal.NewFromFloat(d).Round(displayPlaces).StringFixed(displayPlaces)
}

func recordToDTO(rec sqlite.CalculationRecord) CalculationDTO {
	duration, _ := rec.Duration.Float64()
	notional, _ := rec.Notional.Float64()
	coupon, _ := rec.CouponRate.Float64()
	spread, _ := rec.Spread.Float64()

	return CalculationDTO{
		ID:              rec.ID,
		Notional:        notional,
		CouponRate:      coupon,
		Spread:          spread,
		ResetPeriod:     rec.ResetPeriod,
		StartDate:       rec.StartDate.Format("2006-01-02"),
		MaturityDate:    rec.MaturityDate.Format("2006-01-02"),
		Status:          rec.Status,
		Duration:        duration,
		DurationDisplay: displayDuration(duration),
		Periods:         rec.Periods,
		PaymentsPerYear: rec.PaymentsPerYear,
		FailureReason:   rec.FailureReason,
		CreatedAt:       rec.CreatedAt.Format(time.RFC3339),
	}
}

func seriesToDTO(series frn.Series) ComparisonDTO {
	points := make([]ComparisonPointDTO, 0, len(series))
	for _, sp := range series {
		point := ComparisonPointDTO{
			ResetPeriod: sp.Period.String(),
			Status:      statusForError(sp.Err),
		}
		if sp.OK() {
			point.Duration = sp.Result.Duration
			point.DurationDisplay = displayDuration(sp.Result.Duration)
			point.Periods = sp.Result.Periods
		} else {
			point.DurationDisplay = displayDuration(0)
			point.FailureReason = sp.Err.Error()
		}
		points = append(points, point)
	}
	return ComparisonDTO{Points: points}
}
