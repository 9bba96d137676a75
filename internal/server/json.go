package server

import (
	"encoding/json"
	"net/http"

	"github.com/vitalis-app/hostmetrics/internal/models"
)

// writeJSON writes v with status 200, or an error body with status 500 when
// err is non-nil.
func writeJSON(w http.ResponseWriter, v any, err error) {
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeStatus(w, http.StatusOK, v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeStatus(w, status, models.ErrorResponse{Error: err.Error()})
}

func writeStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
