package dto

import (
	"github.com/savu-app/savu-backend/internal/models"
	"github.com/savu-app/savu-backend/internal/summary"
)

type LoginResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type ExpenseResponse struct {
	Message string         `json:"message"`
	Expense models.Expense `json:"expense"`
}

type ExpenseListResponse struct {
	Username      string           `json:"username"`
	Expenses      []models.Expense `json:"expenses"`
	TotalExpenses int              `json:"total_expenses"`
}

type WeeklySummaryResponse struct {
	Username        string                   `json:"username"`
	Period          string                   `json:"period"`
	CategorySummary map[string]models.Amount `json:"category_summary"`
	TotalAmount     models.Amount            `json:"total_amount"`
	HighestCategory *summary.CategoryTotal   `json:"highest_category"`
	ExpenseCount    int                      `json:"expense_count"`
}

// EmptyWeekResponse is the distinct payload for a week with no expenses.
type EmptyWeekResponse struct {
	Username string `json:"username"`
	Period   string `json:"period"`
	Message  string `json:"message"`
}
