// Package interfaces defines service contracts for CareerCompass
package interfaces

import (
	"context"

	"github.com/careercompass/compass/internal/models"
)

// ProfileClient fetches financial profiles from the profile store.
type ProfileClient interface {
	// FetchProfile retrieves one user's financial record. baseURL may be
	// empty, in which case the client's configured default is used.
	// Errors are *models.Fault values carrying the taxonomy kind.
	FetchProfile(ctx context.Context, baseURL, userID string) (*models.FinancialProfile, error)
}

// ReasoningClient calls the external generative-AI provider.
type ReasoningClient interface {
	// GenerateContent sends a prompt and returns the provider's raw text.
	// Errors are *models.Fault values carrying the taxonomy kind.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
