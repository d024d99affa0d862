// Package mockdata implements the financial profile store collaborator:
// a small fixed set of user financial records, read-only at runtime.
package mockdata

import (
	"github.com/careercompass/compass/internal/models"
)

// Store holds the seeded financial profiles keyed by user ID.
// Records are never mutated after construction, so concurrent reads
// need no locking.
type Store struct {
	profiles map[string]*models.FinancialProfile
}

// Get returns the profile for userID, or nil when absent.
func (s *Store) Get(userID string) *models.FinancialProfile {
	return s.profiles[userID]
}

// UserIDs returns the seeded user identifiers.
func (s *Store) UserIDs() []string {
	ids := make([]string, 0, len(s.profiles))
	for id := range s.profiles {
		ids = append(ids, id)
	}
	return ids
}

// NewSeedStore builds the store with the three demo users.
func NewSeedStore() *Store {
	profiles := map[string]*models.FinancialProfile{
		"user123": {
			UserID:        "user123",
			Name:          "Alex Chen",
			ProfileLabel:  "Recent Graduate",
			MonthlyIncome: 4200,
			SpendingCategories: map[string]float64{
				"rent":           1400,
				"food":           520,
				"transportation": 180,
				"entertainment":  240,
				"savings":        400,
				"other":          310,
			},
			RecentTransactions: []models.Transaction{
				{ID: 1, Amount: -1400, Description: "Monthly rent", Category: "rent"},
				{ID: 2, Amount: -86.40, Description: "Grocery run", Category: "food"},
				{ID: 3, Amount: -12.99, Description: "Streaming subscription", Category: "entertainment"},
				{ID: 4, Amount: 4200, Description: "Salary deposit", Category: "income"},
				{ID: 5, Amount: -45, Description: "Rideshare", Category: "transportation"},
			},
			CareerStage: models.CareerStageEntryLevel,
			Goals: []string{
				"Move into a data-focused role",
				"Build a three-month emergency fund",
			},
		},
		"user456": {
			UserID:        "user456",
			Name:          "Priya Sharma",
			ProfileLabel:  "Mid-Career Transitioner",
			MonthlyIncome: 6800,
			SpendingCategories: map[string]float64{
				"rent":          2100,
				"food":          700,
				"childcare":     950,
				"education":     300,
				"savings":       800,
				"entertainment": 350,
			},
			RecentTransactions: []models.Transaction{
				{ID: 1, Amount: -2100, Description: "Monthly rent", Category: "rent"},
				{ID: 2, Amount: -299, Description: "Online course fee", Category: "education"},
				{ID: 3, Amount: 6800, Description: "Salary deposit", Category: "income"},
				{ID: 4, Amount: -950, Description: "Daycare", Category: "childcare"},
			},
			CareerStage: models.CareerStageTransitioning,
			Goals: []string{
				"Switch from marketing to product management",
				"Keep savings rate above 10%",
			},
		},
		"user789": {
			UserID:        "user789",
			Name:          "Marcus Webb",
			ProfileLabel:  "Established Professional",
			MonthlyIncome: 11500,
			SpendingCategories: map[string]float64{
				"mortgage":    3200,
				"food":        900,
				"investments": 2500,
				"travel":      600,
				"insurance":   450,
				"other":       700,
			},
			RecentTransactions: []models.Transaction{
				{ID: 1, Amount: -3200, Description: "Mortgage payment", Category: "mortgage"},
				{ID: 2, Amount: -2500, Description: "Index fund purchase", Category: "investments"},
				{ID: 3, Amount: 11500, Description: "Salary deposit", Category: "income"},
				{ID: 4, Amount: -1240, Description: "Flight booking", Category: "travel"},
			},
			CareerStage: models.CareerStageEstablished,
			Goals: []string{
				"Move into engineering leadership",
				"Reach financial independence by 50",
			},
		},
	}

	return &Store{profiles: profiles}
}
