// Package memory provides an in-memory Store used by handler tests and as a
// zero-dependency stand-in for local development.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/savu-app/savu-backend/internal/models"
	"github.com/savu-app/savu-backend/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps users and expenses in maps guarded by a single mutex.
type Store struct {
	mu            sync.Mutex
	users         map[string]models.User
	expenses      map[int64]models.Expense
	nextUserID    int64
	nextExpenseID int64
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		users:    make(map[string]models.User),
		expenses: make(map[int64]models.Expense),
	}
}

// CreateUser inserts a user, enforcing username uniqueness.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return models.User{}, storage.ErrDuplicateUsername
	}
	s.nextUserID++
	user := models.User{
		ID:           s.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[username] = user
	return user, nil
}

// GetUser fetches a user by username.
func (s *Store) GetUser(ctx context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// CreateExpense inserts an expense and assigns its surrogate id.
func (s *Store) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextExpenseID++
	expense.ID = s.nextExpenseID
	expense.CreatedAt = time.Now().UTC()
	s.expenses[expense.ID] = expense
	return expense, nil
}

// GetExpense fetches a single expense by id.
func (s *Store) GetExpense(ctx context.Context, id int64) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense, exists := s.expenses[id]
	if !exists {
		return models.Expense{}, storage.ErrNotFound
	}
	return expense, nil
}

// ListExpenses returns a user's expenses, newest week first, newest id first
// within the same week date.
func (s *Store) ListExpenses(ctx context.Context, username string) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := make([]models.Expense, 0)
	for _, expense := range s.expenses {
		if expense.Username == username {
			expenses = append(expenses, expense)
		}
	}
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].WeekDate.Equal(expenses[j].WeekDate.Time) {
			return expenses[i].WeekDate.After(expenses[j].WeekDate.Time)
		}
		return expenses[i].ID > expenses[j].ID
	})
	return expenses, nil
}

// UpdateExpense applies a partial update; nil fields keep their prior values.
func (s *Store) UpdateExpense(ctx context.Context, id int64, update storage.ExpenseUpdate) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense, exists := s.expenses[id]
	if !exists {
		return models.Expense{}, storage.ErrNotFound
	}
	if update.Category != nil {
		expense.Category = *update.Category
	}
	if update.Amount != nil {
		expense.Amount = *update.Amount
	}
	if update.WeekDate != nil {
		expense.WeekDate = *update.WeekDate
	}
	s.expenses[id] = expense
	return expense, nil
}

// DeleteExpense removes an expense by id.
func (s *Store) DeleteExpense(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.expenses[id]; !exists {
		return storage.ErrNotFound
	}
	delete(s.expenses, id)
	return nil
}
