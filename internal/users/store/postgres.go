package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/kkutopiaa/tdd-restful-service/internal/users/models"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/sentinel"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/tx"
)

//go:embed schema.sql
var schema string

const uniqueViolation = "23505"

const selectUser = `SELECT id, name, email, balance, created_at FROM users`

// PostgresStore persists users in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
	tx *tx.Runner
}

// NewPostgres constructs a PostgreSQL-backed user store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, tx: tx.NewRunner(db, 0)}
}

// Open connects to dsn with lib/pq and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Migrate creates the users table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.User, error) {
	rows, err := tx.Use(ctx, s.db).QueryContext(ctx, selectUser+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.find(ctx, id, selectUser+` WHERE id = $1`)
}

func (s *PostgresStore) Create(ctx context.Context, user *models.User) error {
	_, err := tx.Use(ctx, s.db).ExecContext(ctx,
		`INSERT INTO users (id, name, email, balance, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Name, user.Email, user.Balance, user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("user %s: %w", user.ID, sentinel.ErrConflict)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// AddBalance locks the row, applies amount and writes the new balance in one
// transaction.
func (s *PostgresStore) AddBalance(ctx context.Context, id string, amount decimal.Decimal) (*models.User, error) {
	var updated *models.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.find(ctx, id, selectUser+` WHERE id = $1 FOR UPDATE`)
		if err != nil {
			return err
		}
		if err := applyAmount(u, amount); err != nil {
			return err
		}
		if _, err := tx.Use(ctx, s.db).ExecContext(ctx,
			`UPDATE users SET balance = $2 WHERE id = $1`, u.ID, u.Balance); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *PostgresStore) find(ctx context.Context, id, query string) (*models.User, error) {
	u, err := scanUser(tx.Use(ctx, s.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", id, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Balance, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
