package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/crisgp1/cliqueatools-sub003/internal/application/dto"
	"github.com/crisgp1/cliqueatools-sub003/internal/application/usecase"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/valueobject"
)

// ComparisonHandler serves the financing comparison and schedule preview
// endpoints.
type ComparisonHandler struct {
	compare  *usecase.CompareFinancingUseCase
	schedule *usecase.PreviewScheduleUseCase
	logger   *slog.Logger
}

// NewComparisonHandler creates the comparison HTTP handler.
func NewComparisonHandler(
	compare *usecase.CompareFinancingUseCase,
	schedule *usecase.PreviewScheduleUseCase,
	logger *slog.Logger,
) *ComparisonHandler {
	return &ComparisonHandler{compare: compare, schedule: schedule, logger: logger}
}

// RegisterRoutes attaches the comparison routes to the given mux.
func (h *ComparisonHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/credit/compare", h.handleCompare)
	mux.HandleFunc("POST /v1/credit/schedule", h.handleSchedule)
}

func (h *ComparisonHandler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req dto.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.compare.Execute(r.Context(), req)
	if err != nil {
		h.writeCompareError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeCompareError maps comparison failures onto the HTTP taxonomy: the
// accumulated validation list as 422, caller mistakes as 400, anything else
// as an opaque 500.
func (h *ComparisonHandler) writeCompareError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs valueobject.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeValidationErrors(w, verrs)
	case errors.Is(err, valueobject.ErrUnknownCriterion),
		errors.Is(err, valueobject.ErrEmptyQuoteSet),
		errors.Is(err, usecase.ErrInvalidCurrency):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "comparison failed", "error", err)
		writeError(w, http.StatusInternalServerError, "comparison failed")
	}
}

func (h *ComparisonHandler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var req dto.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.schedule.Execute(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
