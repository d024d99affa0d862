package advisor

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/careercompass/compass/internal/models"
)

// Generic fallbacks used when the provider's output cannot be trusted.
// Partial advice is more useful to the end user than no advice, so the
// normalizer degrades instead of failing.
const (
	fallbackPrimaryGoal     = "Build technical skills for career advancement"
	fallbackSkill           = "Data Analysis"
	fallbackFinancialAdvice = "Consider allocating 15% of income to skill development"
	fallbackNextStep        = "Start with one online course this month"
)

const (
	maxSkills    = 10
	maxCourses   = 5
	maxNextSteps = 10
)

// Normalize parses the provider's raw output against the recommendation
// schema. It is total: any input, including empty or non-JSON text,
// yields a structurally valid RecommendationResult. Individual invalid
// fields are repaired to defaults and recorded in DegradedFields, which
// caps confidence at medium; an unparseable payload degrades to low.
// The provider-claimed confidence is never elevated, only downgraded.
func Normalize(raw string) models.RecommendationResult {
	doc, ok := extractJSON(raw)
	if !ok {
		return degradedResult()
	}

	var result models.RecommendationResult
	var degraded []string

	result.PrimaryGoal = normalizeString(doc.Get("primaryGoal"), fallbackPrimaryGoal, "primaryGoal", &degraded)
	result.RecommendedSkills = normalizeStringList(doc.Get("recommendedSkills"), fallbackSkill, maxSkills, "recommendedSkills", &degraded)
	result.SuggestedCourses = normalizeCourses(doc.Get("suggestedCourses"), &degraded)
	result.FinancialAdvice = normalizeString(doc.Get("financialAdvice"), fallbackFinancialAdvice, "financialAdvice", &degraded)
	result.NextSteps = normalizeStringList(doc.Get("nextSteps"), fallbackNextStep, maxNextSteps, "nextSteps", &degraded)

	claimed := normalizeConfidence(doc.Get("confidence"), &degraded)
	result.Confidence = claimed
	if len(degraded) > 0 {
		result.Confidence = claimed.Cap(models.ConfidenceMedium)
	}
	result.DegradedFields = degraded

	return result
}

// degradedResult is the maximally degraded but structurally valid result
// returned when the output cannot be parsed at all.
func degradedResult() models.RecommendationResult {
	return models.RecommendationResult{
		PrimaryGoal:       fallbackPrimaryGoal,
		RecommendedSkills: []string{fallbackSkill},
		SuggestedCourses:  []models.Course{},
		FinancialAdvice:   fallbackFinancialAdvice,
		NextSteps:         []string{fallbackNextStep},
		Confidence:        models.ConfidenceLow,
		DegradedFields: []string{
			"primaryGoal", "recommendedSkills", "suggestedCourses",
			"financialAdvice", "nextSteps", "confidence",
		},
	}
}

// extractJSON locates a JSON object in the provider's free-form text.
// Markdown code fences are stripped first; failing that, the outermost
// brace-delimited span is tried.
func extractJSON(raw string) (gjson.Result, bool) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if gjson.Valid(text) {
		if doc := gjson.Parse(text); doc.IsObject() {
			return doc, true
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		candidate := text[start : end+1]
		if gjson.Valid(candidate) {
			if doc := gjson.Parse(candidate); doc.IsObject() {
				return doc, true
			}
		}
	}

	return gjson.Result{}, false
}

// normalizeString validates a required non-empty string field.
func normalizeString(field gjson.Result, fallback, name string, degraded *[]string) string {
	if field.Type == gjson.String {
		if s := strings.TrimSpace(field.String()); s != "" {
			return s
		}
	}
	*degraded = append(*degraded, name)
	return fallback
}

// normalizeStringList validates an ordered list of 1..max strings.
// Non-string items are dropped; an empty or missing list is replaced
// with a single generic fallback.
func normalizeStringList(field gjson.Result, fallback string, max int, name string, degraded *[]string) []string {
	items := []string{}
	dropped := false

	if field.IsArray() {
		for _, item := range field.Array() {
			if item.Type != gjson.String || strings.TrimSpace(item.String()) == "" {
				dropped = true
				continue
			}
			items = append(items, strings.TrimSpace(item.String()))
		}
	}

	if len(items) == 0 {
		*degraded = append(*degraded, name)
		return []string{fallback}
	}
	if len(items) > max {
		items = items[:max]
		dropped = true
	}
	if dropped {
		*degraded = append(*degraded, name)
	}
	return items
}

// normalizeCourses validates the 0..5 suggested courses. A missing field
// is fine (zero courses is valid); a present-but-malformed field or
// invalid entries degrade the result.
func normalizeCourses(field gjson.Result, degraded *[]string) []models.Course {
	courses := []models.Course{}
	if !field.Exists() {
		return courses
	}
	if !field.IsArray() {
		*degraded = append(*degraded, "suggestedCourses")
		return courses
	}

	dropped := false
	for _, item := range field.Array() {
		if !item.IsObject() {
			dropped = true
			continue
		}
		name := strings.TrimSpace(item.Get("name").String())
		if name == "" {
			dropped = true
			continue
		}
		courses = append(courses, models.Course{
			Name:          name,
			Provider:      strings.TrimSpace(item.Get("provider").String()),
			EstimatedCost: strings.TrimSpace(item.Get("estimatedCost").String()),
		})
	}

	if len(courses) > maxCourses {
		courses = courses[:maxCourses]
		dropped = true
	}
	if dropped {
		*degraded = append(*degraded, "suggestedCourses")
	}
	return courses
}

// normalizeConfidence reads the provider-claimed confidence. An absent
// claim defaults to high (the upstream criteria are not observable, so
// the claim is treated purely as an upper bound); a present but invalid
// claim degrades the result.
func normalizeConfidence(field gjson.Result, degraded *[]string) models.Confidence {
	if !field.Exists() {
		return models.ConfidenceHigh
	}
	claimed := models.Confidence(strings.ToLower(strings.TrimSpace(field.String())))
	if field.Type == gjson.String && claimed.Valid() {
		return claimed
	}
	*degraded = append(*degraded, "confidence")
	return models.ConfidenceHigh
}
