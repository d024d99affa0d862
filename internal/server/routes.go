package server

import (
	"net/http"

	"github.com/careercompass/compass/internal/common"
	"github.com/careercompass/compass/internal/models"
)

// ServiceName identifies the engine in health and config responses.
const ServiceName = "ai-career-agent"

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/config", s.handleConfig)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Recommendation
	mux.HandleFunc("/api/analyze-career", s.handleAnalyzeCareer)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": ServiceName,
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"service":          ServiceName,
		"offlineMode":      !s.advisor.ReasoningConfigured(),
		"geminiConfigured": s.geminiConfigured,
		"model":            s.config.Clients.Gemini.Model,
		"environment":      s.config.Environment,
		"version":          common.GetVersion(),
	})
}

// --- Recommendation handlers ---

// analyzeRequest is the body of POST /api/analyze-career.
type analyzeRequest struct {
	UserID         string `json:"userId"`
	MockDataAPIURL string `json:"mockDataApiUrl"`
}

func (s *Server) handleAnalyzeCareer(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req analyzeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.UserID == "" {
		WriteError(w, http.StatusBadRequest, models.KindInternal, "userId is required")
		return
	}

	envelope := s.advisor.AnalyzeCareer(r.Context(), req.UserID, req.MockDataAPIURL)

	status := http.StatusOK
	if !envelope.Success && envelope.Error != nil {
		status = envelope.Error.Kind.HTTPStatus()
	}
	WriteJSON(w, status, envelope)
}
