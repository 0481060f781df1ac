/*
handlers.go - HTTP API handlers for the FRN duration service

PURPOSE:
  Exposes the calculation core via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Calculations:
    POST   /api/calculations        Compute a duration and record it
    GET    /api/calculations        Calculation history (newest first)
    GET    /api/calculations/{id}   One recorded calculation

  Comparisons:
    POST   /api/comparisons         Duration across the four reset periods

  Reference data:
    GET    /api/reset-periods       Canonical reset-period labels in order
    GET    /api/scenarios           Canned demo parameter sets

  Admin:
    POST   /api/reset               Wipe calculation history (dev only)

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input primitives (rates, dates)
  3. Call the frn calculator
  4. Persist the outcome, success or failure
  5. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, unparseable dates, out-of-range rates
  - 404: Unknown calculation ID
  - 422: Well-formed inputs the calculator cannot compute from
         (empty schedule, inverted date range, zero present value)
  - 500: Storage failures

  A 422 still records and returns the calculation with its failure
  status, so a frontend can show "cannot compute" instead of a bare 0.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - frn/: The calculation core
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/warp/frn-engine/frn"
	"github.com/warp/frn-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store        *sqlite.Store
	HistoryLimit int
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store, HistoryLimit: 100}
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// CreateCalculation computes a duration from the posted parameters,
// records the outcome, and returns it. Calculation failures are recorded
// and returned with status 422 rather than discarded.
func (h *Handler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var req CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params, err := paramsFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid parameters", err)
		return
	}

	result, calcErr := frn.MacaulayDuration(params)

	rec := sqlite.CalculationRecord{
		ID:           ulid.Make().String(),
		Notional:     decimal.NewFromFloat(req.Notional),
		CouponRate:   decimal.NewFromFloat(req.CouponRate),
		Spread:       decimal.NewFromFloat(req.Spread),
		ResetPeriod:  params.ResetPeriod.String(),
		StartDate:    params.StartDate,
		MaturityDate: params.MaturityDate,
		Status:       statusForError(calcErr),
	}
	if calcErr != nil {
		rec.Duration = decimal.Zero
		rec.FailureReason = calcErr.Error()
	} else {
		rec.Duration = decimal.NewFromFloat(result.Duration)
		rec.Periods = result.Periods
		rec.PaymentsPerYear = result.PaymentsPerYear
	}

	if err := h.Store.SaveCalculation(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record calculation", err)
		return
	}

	saved, err := h.Store.GetCalculation(r.Context(), rec.ID)
	if err != nil || saved == nil {
		writeError(w, http.StatusInternalServerError, "Failed to load recorded calculation", err)
		return
	}

	status := http.StatusCreated
	if calcErr != nil {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, recordToDTO(*saved))
}

// ListCalculations returns recent calculation history, newest first.
func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListCalculations(r.Context(), h.HistoryLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list calculations", err)
		return
	}

	dtos := make([]CalculationDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, recordToDTO(rec))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCalculation returns one recorded calculation by ID.
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Store.GetCalculation(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get calculation", err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "Calculation not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, recordToDTO(*rec))
}

// =============================================================================
// COMPARISON HANDLERS
// =============================================================================

// CreateComparison computes the duration under each canonical reset
// period, holding the other parameters fixed. The response always has
// exactly four points in canonical order; failed points carry their
// failure reason instead of a value.
func (h *Handler) CreateComparison(w http.ResponseWriter, r *http.Request) {
	var req CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params, err := paramsFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid parameters", err)
		return
	}

	writeJSON(w, http.StatusOK, seriesToDTO(frn.CompareResetPeriods(params)))
}

// =============================================================================
// REFERENCE DATA
// =============================================================================

// ListResetPeriods returns the canonical reset-period labels in their
// fixed presentation order.
func (h *Handler) ListResetPeriods(w http.ResponseWriter, r *http.Request) {
	periods := frn.CanonicalResetPeriods()
	labels := make([]string, 0, len(periods))
	for _, rp := range periods {
		labels = append(labels, rp.String())
	}
	writeJSON(w, http.StatusOK, labels)
}

// =============================================================================
// ADMIN
// =============================================================================

// ResetDatabase wipes the calculation history. Dev/demo use only.
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// =============================================================================
// INPUT TRANSLATION
// =============================================================================

// paramsFromRequest validates the raw primitives and translates them
// into the calculator's parameter struct. Range rules mirror the data
// model: rates are decimal fractions in [0, 1], notional non-negative.
// Unknown reset periods pass through; the calculator treats them as
// annual.
func paramsFromRequest(req CalculationRequest) (frn.Parameters, error) {
	if req.Notional < 0 {
		return frn.Parameters{}, fmt.Errorf("notional must be non-negative, got %v", req.Notional)
	}
	if req.CouponRate < 0 || req.CouponRate > 1 {
		return frn.Parameters{}, fmt.Errorf("coupon_rate must be a decimal fraction in [0, 1], got %v", req.CouponRate)
	}
	if req.Spread < 0 || req.Spread > 1 {
		return frn.Parameters{}, fmt.Errorf("spread must be a decimal fraction in [0, 1], got %v", req.Spread)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return frn.Parameters{}, fmt.Errorf("invalid start_date (use YYYY-MM-DD): %w", err)
	}
	maturityDate, err := time.Parse("2006-01-02", req.MaturityDate)
	if err != nil {
		return frn.Parameters{}, fmt.Errorf("invalid maturity_date (use YYYY-MM-DD): %w", err)
	}

	return frn.Parameters{
		Notional:     req.Notional,
		CouponRate:   req.CouponRate,
		Spread:       req.Spread,
		ResetPeriod:  frn.ResetPeriod(req.ResetPeriod),
		StartDate:    startDate,
		MaturityDate: maturityDate,
	}, nil
}

// statusForError maps a calculation error to its persisted status.
func statusForError(err error) string {
	switch {
	case err == nil:
		return sqlite.StatusOK
	case errors.Is(err, frn.ErrInvalidDateRange):
		return sqlite.StatusInvalidDateRange
	case errors.Is(err, frn.ErrEmptySchedule):
		return sqlite.StatusEmptySchedule
	default:
		return sqlite.StatusZeroPresentValue
	}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
