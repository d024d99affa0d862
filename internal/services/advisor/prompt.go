package advisor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/careercompass/compass/internal/models"
)

// buildRecommendationPrompt renders the analysis context into the
// provider's expected request shape: a natural-language instruction
// plus structured context and the required JSON schema.
func buildRecommendationPrompt(analysis models.AnalysisContext) string {
	var sb strings.Builder

	sb.WriteString("Analyze this financial profile and provide career guidance:\n\n")
	fmt.Fprintf(&sb, "User Profile: %s\n", analysis.ProfileLabel)
	fmt.Fprintf(&sb, "Monthly Income: $%.0f\n", analysis.MonthlyIncome)
	fmt.Fprintf(&sb, "Career Stage: %s\n\n", analysis.CareerStage)

	sb.WriteString("Spending as share of income:\n")
	for _, category := range sortedCategories(analysis.SpendingRatios) {
		r := analysis.SpendingRatios[category]
		if r.Flag != "" {
			fmt.Fprintf(&sb, "- %s: %s\n", category, r.Flag)
		} else {
			fmt.Fprintf(&sb, "- %s: %.0f%%\n", category, r.Ratio*100)
		}
	}

	fmt.Fprintf(&sb, "\nRecent activity: %d transactions, $%.2f out, $%.2f in\n",
		analysis.Transactions.Count, analysis.Transactions.TotalOutflow, analysis.Transactions.TotalInflow)

	if len(analysis.Goals) > 0 {
		fmt.Fprintf(&sb, "\nCurrent Goals: %s\n", strings.Join(analysis.Goals, ", "))
	}

	sb.WriteString(`
Please provide career guidance in this JSON format:
{
    "primaryGoal": "One main career objective based on their profile",
    "recommendedSkills": ["skill1", "skill2", "skill3"],
    "suggestedCourses": [
        {"name": "Course Name", "provider": "Platform", "estimatedCost": "$XX"},
        {"name": "Course Name 2", "provider": "Platform", "estimatedCost": "$XX"}
    ],
    "financialAdvice": "Specific financial recommendation based on their spending",
    "nextSteps": ["actionable step 1", "actionable step 2", "actionable step 3"],
    "confidence": "high|medium|low"
}

Focus on practical, actionable advice based on their current financial situation and career stage.
`)

	return sb.String()
}

// sortedCategories keeps prompt output deterministic across runs.
func sortedCategories(ratios map[string]models.SpendingRatio) []string {
	categories := make([]string, 0, len(ratios))
	for category := range ratios {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
