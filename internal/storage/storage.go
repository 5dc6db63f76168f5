package storage

import (
	"context"
	"errors"

	"github.com/savu-app/savu-backend/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateUsername indicates a signup lost the race on the username
// uniqueness constraint.
var ErrDuplicateUsername = errors.New("username already exists")

// ExpenseUpdate carries a partial update; nil fields keep their prior value.
type ExpenseUpdate struct {
	Category *string
	Amount   *models.Amount
	WeekDate *models.Date
}

// Store captures the persistence operations needed by handlers. Every
// mutation is atomic per call; there are no retries at this layer.
type Store interface {
	CreateUser(ctx context.Context, username, passwordHash string) (models.User, error)
	GetUser(ctx context.Context, username string) (models.User, error)

	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	GetExpense(ctx context.Context, id int64) (models.Expense, error)
	ListExpenses(ctx context.Context, username string) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, id int64, update ExpenseUpdate) (models.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
}
