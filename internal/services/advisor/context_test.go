package advisor

import (
	"reflect"
	"testing"

	"github.com/careercompass/compass/internal/models"
)

func sampleProfile() *models.FinancialProfile {
	return &models.FinancialProfile{
		UserID:        "user123",
		Name:          "Alex Chen",
		ProfileLabel:  "Recent Graduate",
		MonthlyIncome: 4000,
		SpendingCategories: map[string]float64{
			"rent":          1400,
			"food":          520,
			"entertainment": 280,
		},
		RecentTransactions: []models.Transaction{
			{ID: 1, Amount: -120.50, Description: "Grocery run", Category: "food"},
			{ID: 2, Amount: 4000, Description: "Salary", Category: "income"},
			{ID: 3, Amount: -45, Description: "Streaming", Category: "entertainment"},
		},
		CareerStage: models.CareerStageEntryLevel,
		Goals:       []string{"Move into data analytics"},
	}
}

func TestBuildContext_Ratios(t *testing.T) {
	ctx := BuildContext(sampleProfile())

	if got := ctx.SpendingRatios["rent"].Ratio; got != 0.35 {
		t.Errorf("rent ratio = %v, want 0.35", got)
	}
	if got := ctx.SpendingRatios["food"].Ratio; got != 0.13 {
		t.Errorf("food ratio = %v, want 0.13", got)
	}
	for category, r := range ctx.SpendingRatios {
		if r.Ratio < 0 || r.Ratio > 1 {
			t.Errorf("%s ratio %v outside [0,1]", category, r.Ratio)
		}
		if r.Flag != "" {
			t.Errorf("%s unexpectedly flagged %q", category, r.Flag)
		}
	}
}

func TestBuildContext_ZeroIncomeSentinel(t *testing.T) {
	profile := sampleProfile()
	profile.MonthlyIncome = 0

	ctx := BuildContext(profile)

	for category, r := range ctx.SpendingRatios {
		if r.Flag != models.RatioFlagUndefinedIncome {
			t.Errorf("%s flag = %q, want undefined-income sentinel", category, r.Flag)
		}
		if r.Ratio != 0 {
			t.Errorf("%s ratio = %v, want 0 when income is zero", category, r.Ratio)
		}
	}
}

func TestBuildContext_ClampsOverspend(t *testing.T) {
	profile := sampleProfile()
	profile.SpendingCategories = map[string]float64{"rent": 9000}

	ctx := BuildContext(profile)
	if got := ctx.SpendingRatios["rent"].Ratio; got != 1 {
		t.Errorf("overspend ratio = %v, want clamped to 1", got)
	}
}

func TestBuildContext_TransactionSummary(t *testing.T) {
	ctx := BuildContext(sampleProfile())

	if ctx.Transactions.Count != 3 {
		t.Errorf("count = %d, want 3", ctx.Transactions.Count)
	}
	if ctx.Transactions.TotalInflow != 4000 {
		t.Errorf("inflow = %v, want 4000", ctx.Transactions.TotalInflow)
	}
	if ctx.Transactions.TotalOutflow != 165.50 {
		t.Errorf("outflow = %v, want 165.50", ctx.Transactions.TotalOutflow)
	}
}

func TestBuildContext_Deterministic(t *testing.T) {
	profile := sampleProfile()
	first := BuildContext(profile)
	second := BuildContext(profile)

	if !reflect.DeepEqual(first, second) {
		t.Error("BuildContext should be deterministic for the same profile")
	}
}

func TestBuildContext_DoesNotAliasGoals(t *testing.T) {
	profile := sampleProfile()
	ctx := BuildContext(profile)

	profile.Goals[0] = "mutated"
	if ctx.Goals[0] == "mutated" {
		t.Error("context goals must not alias the profile slice")
	}
}
