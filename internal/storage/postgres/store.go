package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/savu-app/savu-backend/internal/models"
	"github.com/savu-app/savu-backend/internal/storage"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for users and expenses.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to Postgres and runs migrations.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL REFERENCES users(username),
			category TEXT NOT NULL,
			amount_cents BIGINT NOT NULL,
			week_date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS expenses_username_week_date_idx
			ON expenses (username, week_date DESC);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// CreateUser inserts a new user row. A uniqueness conflict maps to
// storage.ErrDuplicateUsername; concurrent signups for the same username are
// serialized by the constraint, not by this code.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	const query = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at;
	`
	row := s.pool.QueryRow(ctx, query, username, passwordHash)
	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.User{}, storage.ErrDuplicateUsername
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUser fetches a user by username.
func (s *Store) GetUser(ctx context.Context, username string) (models.User, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1;
	`
	row := s.pool.QueryRow(ctx, query, username)
	return scanUser(row)
}

// CreateExpense inserts a new expense row.
func (s *Store) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	const query = `
		INSERT INTO expenses (username, category, amount_cents, week_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, category, amount_cents, week_date, created_at;
	`
	row := s.pool.QueryRow(ctx, query,
		expense.Username, expense.Category, int64(expense.Amount), expense.WeekDate.Time)
	created, err := scanExpense(row)
	if err != nil {
		return models.Expense{}, fmt.Errorf("create expense: %w", err)
	}
	return created, nil
}

// GetExpense fetches a single expense by id.
func (s *Store) GetExpense(ctx context.Context, id int64) (models.Expense, error) {
	const query = `
		SELECT id, username, category, amount_cents, week_date, created_at
		FROM expenses
		WHERE id = $1;
	`
	row := s.pool.QueryRow(ctx, query, id)
	return scanExpense(row)
}

// ListExpenses returns all expenses for a username, newest week first.
func (s *Store) ListExpenses(ctx context.Context, username string) ([]models.Expense, error) {
	const query = `
		SELECT id, username, category, amount_cents, week_date, created_at
		FROM expenses
		WHERE username = $1
		ORDER BY week_date DESC, id DESC;
	`
	rows, err := s.pool.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("list expenses: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// UpdateExpense applies a partial update in a single statement; omitted
// fields keep their prior values.
func (s *Store) UpdateExpense(ctx context.Context, id int64, update storage.ExpenseUpdate) (models.Expense, error) {
	const query = `
		UPDATE expenses
		SET category = COALESCE($2, category),
			amount_cents = COALESCE($3, amount_cents),
			week_date = COALESCE($4, week_date)
		WHERE id = $1
		RETURNING id, username, category, amount_cents, week_date, created_at;
	`
	var cents *int64
	if update.Amount != nil {
		v := int64(*update.Amount)
		cents = &v
	}
	var weekDate *time.Time
	if update.WeekDate != nil {
		v := update.WeekDate.Time
		weekDate = &v
	}
	row := s.pool.QueryRow(ctx, query, id, update.Category, cents, weekDate)
	updated, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Expense{}, storage.ErrNotFound
		}
		return models.Expense{}, fmt.Errorf("update expense: %w", err)
	}
	return updated, nil
}

// DeleteExpense removes an expense by id.
func (s *Store) DeleteExpense(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	user.CreatedAt = user.CreatedAt.UTC()
	return user, nil
}

func scanExpense(row pgx.Row) (models.Expense, error) {
	var (
		expense  models.Expense
		cents    int64
		weekDate time.Time
	)
	if err := row.Scan(&expense.ID, &expense.Username, &expense.Category, &cents, &weekDate, &expense.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Expense{}, storage.ErrNotFound
		}
		return models.Expense{}, err
	}
	expense.Amount = models.Amount(cents)
	expense.WeekDate = models.DateOf(weekDate)
	expense.CreatedAt = expense.CreatedAt.UTC()
	return expense, nil
}
