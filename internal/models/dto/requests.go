package dto

import "github.com/savu-app/savu-backend/internal/models"

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AddExpenseRequest uses a pointer for the amount so a missing field is
// distinguishable from an explicit zero.
type AddExpenseRequest struct {
	Username string         `json:"username"`
	Category string         `json:"category"`
	Amount   *models.Amount `json:"amount"`
	WeekDate models.Date    `json:"week_date"`
}

// UpdateExpenseRequest carries a partial update; absent fields stay nil.
type UpdateExpenseRequest struct {
	Category *string        `json:"category"`
	Amount   *models.Amount `json:"amount"`
	WeekDate *models.Date   `json:"week_date"`
}
