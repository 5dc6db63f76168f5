package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/savu-app/savu-backend/internal/models"
	"github.com/savu-app/savu-backend/internal/storage"
)

// StoreTestSuite exercises the in-memory store against the Store contract.
type StoreTestSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func (s *StoreTestSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *StoreTestSuite) TestCreateUserAndGetUser() {
	created, err := s.store.CreateUser(s.ctx, "alice", "digest")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "alice", created.Username)
	assert.NotZero(s.T(), created.ID)
	assert.False(s.T(), created.CreatedAt.IsZero())

	fetched, err := s.store.GetUser(s.ctx, "alice")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, fetched.ID)

	_, err = s.store.GetUser(s.ctx, "bob")
	assert.ErrorIs(s.T(), err, storage.ErrNotFound)
}

func (s *StoreTestSuite) TestCreateUserDuplicate() {
	_, err := s.store.CreateUser(s.ctx, "alice", "digest")
	require.NoError(s.T(), err)

	_, err = s.store.CreateUser(s.ctx, "alice", "other")
	assert.ErrorIs(s.T(), err, storage.ErrDuplicateUsername)
}

func (s *StoreTestSuite) TestExpenseLifecycle() {
	_, err := s.store.CreateUser(s.ctx, "alice", "digest")
	require.NoError(s.T(), err)

	created, err := s.store.CreateExpense(s.ctx, models.Expense{
		Username: "alice",
		Category: "food",
		Amount:   models.Amount(1250),
		WeekDate: models.NewDate(2025, 1, 13),
	})
	require.NoError(s.T(), err)
	assert.NotZero(s.T(), created.ID)

	fetched, err := s.store.GetExpense(s.ctx, created.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.Amount(1250), fetched.Amount)

	require.NoError(s.T(), s.store.DeleteExpense(s.ctx, created.ID))

	_, err = s.store.GetExpense(s.ctx, created.ID)
	assert.ErrorIs(s.T(), err, storage.ErrNotFound)

	err = s.store.DeleteExpense(s.ctx, created.ID)
	assert.ErrorIs(s.T(), err, storage.ErrNotFound)
}

func (s *StoreTestSuite) TestListExpensesOrdering() {
	_, err := s.store.CreateUser(s.ctx, "alice", "digest")
	require.NoError(s.T(), err)
	_, err = s.store.CreateUser(s.ctx, "bob", "digest")
	require.NoError(s.T(), err)

	dates := []models.Date{
		models.NewDate(2025, 1, 6),
		models.NewDate(2025, 1, 20),
		models.NewDate(2025, 1, 13),
	}
	for _, d := range dates {
		_, err := s.store.CreateExpense(s.ctx, models.Expense{
			Username: "alice", Category: "food", Amount: 100, WeekDate: d,
		})
		require.NoError(s.T(), err)
	}
	// Another user's expense must not leak into alice's list.
	_, err = s.store.CreateExpense(s.ctx, models.Expense{
		Username: "bob", Category: "food", Amount: 100, WeekDate: models.NewDate(2025, 1, 21),
	})
	require.NoError(s.T(), err)

	expenses, err := s.store.ListExpenses(s.ctx, "alice")
	require.NoError(s.T(), err)
	require.Len(s.T(), expenses, 3)
	assert.Equal(s.T(), "2025-01-20", expenses[0].WeekDate.String())
	assert.Equal(s.T(), "2025-01-13", expenses[1].WeekDate.String())
	assert.Equal(s.T(), "2025-01-06", expenses[2].WeekDate.String())
}

func (s *StoreTestSuite) TestUpdateExpensePartial() {
	_, err := s.store.CreateUser(s.ctx, "alice", "digest")
	require.NoError(s.T(), err)

	created, err := s.store.CreateExpense(s.ctx, models.Expense{
		Username: "alice",
		Category: "food",
		Amount:   models.Amount(1250),
		WeekDate: models.NewDate(2025, 1, 13),
	})
	require.NoError(s.T(), err)

	newAmount := models.Amount(999)
	updated, err := s.store.UpdateExpense(s.ctx, created.ID, storage.ExpenseUpdate{Amount: &newAmount})
	require.NoError(s.T(), err)

	// Only the supplied field changes.
	assert.Equal(s.T(), models.Amount(999), updated.Amount)
	assert.Equal(s.T(), "food", updated.Category)
	assert.Equal(s.T(), "2025-01-13", updated.WeekDate.String())

	_, err = s.store.UpdateExpense(s.ctx, 404, storage.ExpenseUpdate{Amount: &newAmount})
	assert.ErrorIs(s.T(), err, storage.ErrNotFound)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
