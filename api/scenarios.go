/*
scenarios.go - Canned demo parameter sets

PURPOSE:
  Ships a handful of ready-made FRN parameter sets a frontend can load
  with one click. The "standard" scenario is the default starting point;
  the rest exercise the interesting regimes (zero coupon, short
  maturity, high frequency).
*/
package api

import "net/http"

// Scenarios returns the built-in demo parameter sets in display order.
func Scenarios() []ScenarioDTO {
	return []ScenarioDTO{
		{
			ID:          "standard",
			Name:        "Standard 7-year FRN",
			Description: "Default inputs: 1000 notional, 5% coupon, 1% spread, quarterly resets.",
			Request: CalculationRequest{
				Notional:     1000,
				CouponRate:   0.05,
				Spread:       0.01,
				ResetPeriod:  "Quarterly",
				StartDate:    "2024-01-01",
				MaturityDate: "2030-12-31",
			},
		},
		{
			ID:          "zero-coupon",
			Name:        "Zero coupon, zero spread",
			Description: "Only the final notional repayment carries value; duration equals the final period time.",
			Request: CalculationRequest{
				Notional:     100,
				CouponRate:   0,
				Spread:       0,
				ResetPeriod:  "Annually",
				StartDate:    "2024-01-01",
				MaturityDate: "2027-01-01",
			},
		},
		{
			ID:          "short-maturity",
			Name:        "Six-month note",
			Description: "Too short for semi-annual or annual resets: half the comparison series fails.",
			Request: CalculationRequest{
				Notional:     1000,
				CouponRate:   0.04,
				Spread:       0.005,
				ResetPeriod:  "Monthly",
				StartDate:    "2024-01-01",
				MaturityDate: "2024-07-01",
			},
		},
		{
			ID:          "high-frequency",
			Name:        "Monthly resets, long horizon",
			Description: "Ten-year monthly FRN; the densest schedule the comparison covers.",
			Request: CalculationRequest{
				Notional:     5000,
				CouponRate:   0.07,
				Spread:       0.015,
				ResetPeriod:  "Monthly",
				StartDate:    "2024-01-01",
				MaturityDate: "2034-01-01",
			},
		},
	}
}

// ListScenarios returns the built-in demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Scenarios())
}
