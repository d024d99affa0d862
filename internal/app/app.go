// Package app wires configuration, clients, and services together.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/careercompass/compass/internal/clients/gemini"
	"github.com/careercompass/compass/internal/clients/profilestore"
	"github.com/careercompass/compass/internal/common"
	"github.com/careercompass/compass/internal/interfaces"
	"github.com/careercompass/compass/internal/services/advisor"
)

// App holds all initialized services and clients for the engine.
type App struct {
	Config          *common.Config
	Logger          *common.Logger
	ProfileClient   interfaces.ProfileClient
	ReasoningClient interfaces.ReasoningClient
	Advisor         interfaces.AdvisorService
	StartupTime     time.Time
}

// NewApp initializes all clients and services from configuration.
// configPath may be empty, in which case COMPASS_CONFIG and the default
// location are tried.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	if configPath == "" {
		configPath = os.Getenv("COMPASS_CONFIG")
	}
	if configPath == "" {
		configPath = "config/compass.toml"
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	profileClient := profilestore.NewClient(
		profilestore.WithBaseURL(config.Clients.ProfileStore.BaseURL),
		profilestore.WithTimeout(config.Clients.ProfileStore.GetTimeout()),
		profilestore.WithRateLimit(config.Clients.ProfileStore.RateLimit),
		profilestore.WithLogger(logger),
	)

	// A missing API key falls back to offline mode rather than failing
	// startup: the pipeline still serves curated recommendations.
	var reasoningClient interfaces.ReasoningClient
	geminiKey, err := common.ResolveAPIKey("gemini_api_key", config.Clients.Gemini.APIKey)
	if err != nil {
		logger.Warn().Msg("Gemini API key not configured - running in offline mode")
		config.OfflineMode = true
	}

	if !config.OfflineMode && geminiKey != "" {
		geminiClient, err := gemini.NewClient(context.Background(), geminiKey,
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithTimeout(config.Clients.Gemini.GetTimeout()),
			gemini.WithMaxResponseSize(config.Clients.Gemini.MaxResponseSize),
			gemini.WithLogger(logger),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client - running in offline mode")
		} else {
			reasoningClient = geminiClient
		}
	}

	advisorService := advisor.NewService(profileClient, reasoningClient, logger)

	a := &App{
		Config:          config,
		Logger:          logger,
		ProfileClient:   profileClient,
		ReasoningClient: reasoningClient,
		Advisor:         advisorService,
		StartupTime:     startupStart,
	}

	logger.Info().
		Bool("offline_mode", reasoningClient == nil).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a, nil
}
