package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/crisgp1/cliqueatools-sub003/internal/application/dto"
	"github.com/crisgp1/cliqueatools-sub003/internal/application/usecase"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/port"
)

// BankProfileHandler serves the bank catalog CRUD endpoints. Reads are
// public; mutations require an authenticated admin or manager.
type BankProfileHandler struct {
	create     *usecase.CreateBankProfileUseCase
	update     *usecase.UpdateBankProfileUseCase
	deactivate *usecase.DeactivateBankProfileUseCase
	get        *usecase.GetBankProfileUseCase
	list       *usecase.ListBankProfilesUseCase
	logger     *slog.Logger
}

// NewBankProfileHandler creates the bank catalog HTTP handler.
func NewBankProfileHandler(
	create *usecase.CreateBankProfileUseCase,
	update *usecase.UpdateBankProfileUseCase,
	deactivate *usecase.DeactivateBankProfileUseCase,
	get *usecase.GetBankProfileUseCase,
	list *usecase.ListBankProfilesUseCase,
	logger *slog.Logger,
) *BankProfileHandler {
	return &BankProfileHandler{
		create:     create,
		update:     update,
		deactivate: deactivate,
		get:        get,
		list:       list,
		logger:     logger,
	}
}

// RegisterRoutes attaches the bank catalog routes to the given mux. Mutating
// routes are wrapped with the secure middleware chain.
func (h *BankProfileHandler) RegisterRoutes(mux *http.ServeMux, secure func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /v1/banks", h.handleList)
	mux.HandleFunc("GET /v1/banks/{id}", h.handleGet)
	mux.Handle("POST /v1/banks", secure(http.HandlerFunc(h.handleCreate)))
	mux.Handle("PUT /v1/banks/{id}", secure(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /v1/banks/{id}", secure(http.HandlerFunc(h.handleDeactivate)))
}

func (h *BankProfileHandler) handleList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	resp, err := h.list.Execute(r.Context(), activeOnly)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "list bank profiles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list bank profiles failed")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BankProfileHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	resp, err := h.get.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeBankError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BankProfileHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.BankProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.create.Execute(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *BankProfileHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req dto.BankProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.update.Execute(r.Context(), r.PathValue("id"), req)
	if err != nil {
		h.writeBankError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BankProfileHandler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.deactivate.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeBankError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BankProfileHandler) writeBankError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrBankProfileNotFound):
		writeError(w, http.StatusNotFound, "bank profile not found")
	default:
		h.logger.ErrorContext(r.Context(), "bank profile operation failed", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
	}
}
