// Package advisor implements the career recommendation pipeline:
// context building, prompting, response normalization, and orchestration.
package advisor

import (
	"github.com/careercompass/compass/internal/models"
)

// BuildContext derives the bounded analysis context from a financial
// profile. Pure function: same profile in, same context out, no I/O and
// no failure path. Transactions are summarized rather than carried
// verbatim so the downstream prompt stays small and predictable.
func BuildContext(profile *models.FinancialProfile) models.AnalysisContext {
	ratios := make(map[string]models.SpendingRatio, len(profile.SpendingCategories))
	for category, amount := range profile.SpendingCategories {
		ratios[category] = spendingRatio(amount, profile.MonthlyIncome)
	}

	var summary models.TransactionSummary
	summary.Count = len(profile.RecentTransactions)
	for _, tx := range profile.RecentTransactions {
		if tx.Amount < 0 {
			summary.TotalOutflow += -tx.Amount
		} else {
			summary.TotalInflow += tx.Amount
		}
	}

	goals := make([]string, len(profile.Goals))
	copy(goals, profile.Goals)

	return models.AnalysisContext{
		UserID:         profile.UserID,
		ProfileLabel:   profile.ProfileLabel,
		CareerStage:    profile.CareerStage,
		Goals:          goals,
		MonthlyIncome:  profile.MonthlyIncome,
		SpendingRatios: ratios,
		Transactions:   summary,
	}
}

// spendingRatio computes amount/income clamped to [0,1]. Zero income
// yields the undefined-income sentinel instead of dividing.
func spendingRatio(amount, income float64) models.SpendingRatio {
	if income <= 0 {
		return models.SpendingRatio{Flag: models.RatioFlagUndefinedIncome}
	}
	ratio := amount / income
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return models.SpendingRatio{Ratio: ratio}
}
