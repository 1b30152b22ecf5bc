package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/avelaro/bookstore-be/internal/services"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}

// writeServiceError maps a service failure to its one externally-visible
// status/message pair. Unmatched errors become a logged, detail-free 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateEmail):
		writeMessage(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrBookNotFound):
		writeMessage(w, http.StatusNotFound, "Book not found")
	case errors.Is(err, services.ErrNotOwner):
		writeMessage(w, http.StatusForbidden, "Not authorized")
	default:
		log.Error().Err(err).Msg("Unhandled service error")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
