package rest

import (
	"encoding/json"
	"net/http"

	"github.com/crisgp1/cliqueatools-sub003/internal/domain/valueobject"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeValidationErrors reports every request problem at once so the
// frontend can highlight all offending fields in a single round trip.
func writeValidationErrors(w http.ResponseWriter, verrs valueobject.ValidationErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": verrs})
}
