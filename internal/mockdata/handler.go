package mockdata

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/careercompass/compass/internal/common"
)

// ServiceName identifies this collaborator in its health response.
const ServiceName = "mock-data-api"

// Handler serves the profile store REST surface.
type Handler struct {
	store  *Store
	logger *common.Logger
}

// NewHandler creates a handler over the given store.
func NewHandler(store *Store, logger *common.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Routes returns the HTTP handler for the profile store API.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/api/users/", h.routeUsers)
	return mux
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": ServiceName})
}

// routeUsers dispatches /api/users/{id}/financial-data.
func (h *Handler) routeUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/users/")
	userID := strings.TrimSuffix(path, "/financial-data")
	if userID == "" || userID == path {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	profile := h.store.Get(userID)
	if profile == nil {
		h.logger.Debug().Str("user_id", userID).Msg("Unknown user requested")
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
