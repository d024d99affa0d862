// Package models defines domain types for CareerCompass
package models

// CareerStage describes where a user sits in their working life.
type CareerStage string

const (
	CareerStageEntryLevel    CareerStage = "entry-level"
	CareerStageTransitioning CareerStage = "transitioning"
	CareerStageEstablished   CareerStage = "established"
)

// Transaction is a single financial transaction from the profile store.
// Amount is signed: negative for spending, positive for inflows.
type Transaction struct {
	ID          int     `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// FinancialProfile is a user's financial record as served by the
// profile store. Read-only at runtime; the engine never mutates it.
type FinancialProfile struct {
	UserID             string             `json:"userId"`
	Name               string             `json:"name"`
	ProfileLabel       string             `json:"profile"`
	MonthlyIncome      float64            `json:"monthlyIncome"`
	SpendingCategories map[string]float64 `json:"spendingCategories"`
	RecentTransactions []Transaction      `json:"recentTransactions"`
	CareerStage        CareerStage        `json:"careerStage"`
	Goals              []string           `json:"goals"`
}

// RatioFlagUndefinedIncome marks spending ratios that cannot be computed
// because the profile reports zero monthly income.
const RatioFlagUndefinedIncome = "undefined-income"

// SpendingRatio is a category's share of monthly income, clamped to [0,1]
// when income is positive. When income is zero the ratio is meaningless
// and Flag carries the undefined-income sentinel instead.
type SpendingRatio struct {
	Ratio float64 `json:"ratio"`
	Flag  string  `json:"flag,omitempty"`
}

// TransactionSummary condenses recent transactions for prompting.
// Raw transactions are never forwarded to the reasoning provider.
type TransactionSummary struct {
	Count        int     `json:"count"`
	TotalInflow  float64 `json:"totalInflow"`
	TotalOutflow float64 `json:"totalOutflow"`
}

// AnalysisContext is the bounded, normalized view of one FinancialProfile
// used to prompt the reasoning provider. Request-scoped, never persisted.
type AnalysisContext struct {
	UserID         string                   `json:"userId"`
	ProfileLabel   string                   `json:"profileLabel"`
	CareerStage    CareerStage              `json:"careerStage"`
	Goals          []string                 `json:"goals"`
	MonthlyIncome  float64                  `json:"monthlyIncome"`
	SpendingRatios map[string]SpendingRatio `json:"spendingRatios"`
	Transactions   TransactionSummary       `json:"transactions"`
}
