package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/careercompass/compass/internal/models"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteError writes a failure envelope with the given taxonomy kind.
// Callers always receive a well-formed envelope, even on abort.
func WriteError(w http.ResponseWriter, statusCode int, kind models.Kind, message string) {
	WriteJSON(w, statusCode, models.ResponseEnvelope{
		Success:  false,
		Analysis: nil,
		Error:    &models.ErrorInfo{Kind: kind, Message: message},
	})
}

// RequireMethod validates the HTTP method and returns true if it matches.
// If it doesn't match, it writes a 405 response and returns false.
func RequireMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	WriteError(w, http.StatusMethodNotAllowed, models.KindInternal, "Method not allowed")
	return false
}

// DecodeJSON reads and decodes JSON from the request body into v.
// Returns false and writes a 400 error if decoding fails.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Body == nil {
		WriteError(w, http.StatusBadRequest, models.KindInternal, "Request body is required")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteError(w, http.StatusBadRequest, models.KindInternal, "Invalid JSON: "+err.Error())
		return false
	}
	return true
}
