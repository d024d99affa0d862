package models

// Confidence labels how much trust the caller should place in a result.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// confidenceRank orders confidence labels for monotonic capping.
var confidenceRank = map[Confidence]int{
	ConfidenceLow:    0,
	ConfidenceMedium: 1,
	ConfidenceHigh:   2,
}

// Valid reports whether c is one of the three known labels.
func (c Confidence) Valid() bool {
	_, ok := confidenceRank[c]
	return ok
}

// Cap returns the lower of c and limit. Normalization may only ever
// downgrade the provider-claimed confidence, never raise it.
func (c Confidence) Cap(limit Confidence) Confidence {
	if confidenceRank[limit] < confidenceRank[c] {
		return limit
	}
	return c
}

// Course is a single suggested course in a recommendation.
type Course struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"`
	EstimatedCost string `json:"estimatedCost"`
}

// RecommendationResult is the schema-validated career plan. After
// normalization every field is present and type-correct; repaired
// fields are listed in DegradedFields.
type RecommendationResult struct {
	PrimaryGoal       string     `json:"primaryGoal"`
	RecommendedSkills []string   `json:"recommendedSkills"`
	SuggestedCourses  []Course   `json:"suggestedCourses"`
	FinancialAdvice   string     `json:"financialAdvice"`
	NextSteps         []string   `json:"nextSteps"`
	Confidence        Confidence `json:"confidence"`
	DegradedFields    []string   `json:"degradedFields,omitempty"`
}

// ErrorInfo describes a terminal failure in the response envelope.
type ErrorInfo struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// ResponseEnvelope is the wire-level wrapper returned to API callers.
// Created once per request, immutable after construction, never cached.
type ResponseEnvelope struct {
	Success     bool                  `json:"success"`
	UserID      string                `json:"userId"`
	UserProfile string                `json:"userProfile,omitempty"`
	Analysis    *RecommendationResult `json:"analysis"`
	Confidence  Confidence            `json:"confidence,omitempty"`
	Error       *ErrorInfo            `json:"error,omitempty"`
}
