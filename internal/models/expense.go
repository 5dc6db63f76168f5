package models

import "time"

// Expense is a single spend, bucketed into a week by its WeekDate rather
// than by CreatedAt.
type Expense struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Category  string    `json:"category"`
	Amount    Amount    `json:"amount"`
	WeekDate  Date      `json:"week_date"`
	CreatedAt time.Time `json:"created_at"`
}
