package advisor

import (
	"context"

	"github.com/careercompass/compass/internal/common"
	"github.com/careercompass/compass/internal/interfaces"
	"github.com/careercompass/compass/internal/models"
)

// stage names the pipeline states for structured logging.
type stage string

const (
	stageFetchingProfile          stage = "fetching_profile"
	stageBuildingContext          stage = "building_context"
	stageRequestingRecommendation stage = "requesting_recommendation"
	stageNormalizing              stage = "normalizing"
	stageDone                     stage = "done"
	stageAborted                  stage = "aborted"
)

// offlineRecommendation is the canned provider output used when no
// reasoning provider is configured. It flows through the same
// normalization path as a live response. Confidence is claimed as
// medium: the content is curated but no reasoning happened.
const offlineRecommendation = `{
	"primaryGoal": "Build technical skills for career advancement",
	"recommendedSkills": ["Data Analysis", "Python Programming", "Communication"],
	"suggestedCourses": [
		{"name": "Python for Data Science", "provider": "Coursera", "estimatedCost": "$49"},
		{"name": "Excel to Python", "provider": "Udemy", "estimatedCost": "$85"}
	],
	"financialAdvice": "Consider allocating 15% of income to skill development",
	"nextSteps": [
		"Start with one online course this month",
		"Set up a dedicated learning budget",
		"Track progress weekly"
	],
	"confidence": "medium"
}`

// Service orchestrates the recommendation pipeline. Stateless across
// requests; the only shared resources are the clients' connection pools.
type Service struct {
	profiles interfaces.ProfileClient
	reasoner interfaces.ReasoningClient
	retry    RetryPolicy
	logger   *common.Logger
}

// ServiceOption configures the service
type ServiceOption func(*Service)

// WithRetryPolicy overrides the default retry policy
func WithRetryPolicy(policy RetryPolicy) ServiceOption {
	return func(s *Service) {
		s.retry = policy
	}
}

// NewService creates the advisor service. reasoner may be nil, which
// puts the pipeline in offline mode (canned recommendation content).
func NewService(profiles interfaces.ProfileClient, reasoner interfaces.ReasoningClient, logger *common.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		profiles: profiles,
		reasoner: reasoner,
		retry:    DefaultRetryPolicy(),
		logger:   logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ReasoningConfigured reports whether a live reasoning provider is wired in.
func (s *Service) ReasoningConfigured() bool {
	return s.reasoner != nil
}

// AnalyzeCareer runs the pipeline for one user:
// FetchingProfile -> BuildingContext -> RequestingRecommendation -> Normalizing -> Done,
// aborting from the two network stages on unrecoverable failure.
// The returned envelope is always well-formed; a malformed provider
// response degrades the analysis, it never fails the request.
func (s *Service) AnalyzeCareer(ctx context.Context, userID, storeURL string) *models.ResponseEnvelope {
	s.logger.Debug().Str("user_id", userID).Str("stage", string(stageFetchingProfile)).Msg("Pipeline stage")

	var profile *models.FinancialProfile
	err := s.retry.Do(ctx, func() error {
		p, err := s.profiles.FetchProfile(ctx, storeURL, userID)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	if err != nil {
		return s.abort(userID, stageFetchingProfile, err)
	}

	s.logger.Debug().Str("user_id", userID).Str("stage", string(stageBuildingContext)).Msg("Pipeline stage")
	analysis := BuildContext(profile)

	raw := offlineRecommendation
	if s.reasoner != nil {
		s.logger.Debug().Str("user_id", userID).Str("stage", string(stageRequestingRecommendation)).Msg("Pipeline stage")
		prompt := buildRecommendationPrompt(analysis)
		err = s.retry.Do(ctx, func() error {
			text, err := s.reasoner.GenerateContent(ctx, prompt)
			if err != nil {
				return err
			}
			raw = text
			return nil
		})
		if err != nil {
			return s.abort(userID, stageRequestingRecommendation, err)
		}
	}

	s.logger.Debug().Str("user_id", userID).Str("stage", string(stageNormalizing)).Msg("Pipeline stage")
	result := Normalize(raw)

	s.logger.Info().
		Str("user_id", userID).
		Str("stage", string(stageDone)).
		Str("confidence", string(result.Confidence)).
		Int("degraded_fields", len(result.DegradedFields)).
		Msg("Career analysis complete")

	return &models.ResponseEnvelope{
		Success:     true,
		UserID:      userID,
		UserProfile: profile.ProfileLabel,
		Analysis:    &result,
		Confidence:  result.Confidence,
	}
}

// abort builds the terminal failure envelope. The raw financial payload
// and prompt content are never logged.
func (s *Service) abort(userID string, from stage, err error) *models.ResponseEnvelope {
	kind := models.KindOf(err)

	s.logger.Warn().
		Str("user_id", userID).
		Str("stage", string(stageAborted)).
		Str("from", string(from)).
		Str("kind", string(kind)).
		Msg("Career analysis aborted")

	return &models.ResponseEnvelope{
		Success:  false,
		UserID:   userID,
		Analysis: nil,
		Error: &models.ErrorInfo{
			Kind:    kind,
			Message: models.FaultMessage(err),
		},
	}
}

// Ensure Service implements AdvisorService
var _ interfaces.AdvisorService = (*Service)(nil)
