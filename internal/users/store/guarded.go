package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/kkutopiaa/tdd-restful-service/internal/users/models"
	dErrors "github.com/kkutopiaa/tdd-restful-service/pkg/domain-errors"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/circuit"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/sentinel"
)

// Backend is the store contract shared by the in-memory and PostgreSQL
// stores.
type Backend interface {
	List(ctx context.Context) ([]*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	AddBalance(ctx context.Context, id string, amount decimal.Decimal) (*models.User, error)
}

// Guarded puts a circuit breaker in front of a backend. While the circuit is
// open, calls fail with sentinel.ErrUnavailable without reaching the backend.
type Guarded struct {
	next    Backend
	breaker *circuit.Breaker
	logger  *slog.Logger
}

// NewGuarded wraps next with breaker.
func NewGuarded(next Backend, breaker *circuit.Breaker, logger *slog.Logger) *Guarded {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guarded{next: next, breaker: breaker, logger: logger}
}

func (g *Guarded) List(ctx context.Context) ([]*models.User, error) {
	return guard(ctx, g, func() ([]*models.User, error) { return g.next.List(ctx) })
}

func (g *Guarded) FindByID(ctx context.Context, id string) (*models.User, error) {
	return guard(ctx, g, func() (*models.User, error) { return g.next.FindByID(ctx, id) })
}

func (g *Guarded) Create(ctx context.Context, user *models.User) error {
	_, err := guard(ctx, g, func() (struct{}, error) { return struct{}{}, g.next.Create(ctx, user) })
	return err
}

func (g *Guarded) AddBalance(ctx context.Context, id string, amount decimal.Decimal) (*models.User, error) {
	return guard(ctx, g, func() (*models.User, error) { return g.next.AddBalance(ctx, id, amount) })
}

func guard[T any](ctx context.Context, g *Guarded, call func() (T, error)) (T, error) {
	var zero T
	if !g.breaker.Allow() {
		return zero, fmt.Errorf("%s circuit open: %w", g.breaker.Name(), sentinel.ErrUnavailable)
	}
	v, err := call()
	if isBackendFailure(err) {
		if _, change := g.breaker.RecordFailure(); change.Opened {
			g.logger.WarnContext(ctx, "circuit opened", "breaker", g.breaker.Name(), "error", err)
		}
		return zero, err
	}
	if _, change := g.breaker.RecordSuccess(); change.Closed {
		g.logger.InfoContext(ctx, "circuit closed", "breaker", g.breaker.Name())
	}
	return v, err
}

// isBackendFailure reports errors that say nothing about the data: missing
// rows, conflicts and domain rule violations are answers, not failures.
func isBackendFailure(err error) bool {
	if err == nil || errors.Is(err, sentinel.ErrNotFound) || errors.Is(err, sentinel.ErrConflict) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	_, isDomain := dErrors.As(err)
	return !isDomain || dErrors.HasCode(err, dErrors.CodeTimeout) || dErrors.HasCode(err, dErrors.CodeUnavailable)
}

var (
	_ Backend = (*InMemoryStore)(nil)
	_ Backend = (*PostgresStore)(nil)
	_ Backend = (*Guarded)(nil)
)
