package interfaces

import (
	"context"

	"github.com/careercompass/compass/internal/models"
)

// AdvisorService runs the recommendation pipeline for one user.
type AdvisorService interface {
	// AnalyzeCareer fetches the user's profile from storeURL (or the
	// configured default when empty), builds an analysis context, asks the
	// reasoning provider for a career plan, and normalizes the result.
	// It always returns a well-formed envelope; terminal failures are
	// reported inside it, never as a Go error.
	AnalyzeCareer(ctx context.Context, userID, storeURL string) *models.ResponseEnvelope

	// ReasoningConfigured reports whether a live reasoning provider is
	// wired in (false in offline mode).
	ReasoningConfigured() bool
}
