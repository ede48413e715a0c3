// Package store persists users in memory or in PostgreSQL.
package store

import (
	"github.com/shopspring/decimal"

	"github.com/kkutopiaa/tdd-restful-service/internal/users/models"
	dErrors "github.com/kkutopiaa/tdd-restful-service/pkg/domain-errors"
)

// ErrNegativeBalance is returned when a withdrawal exceeds the balance.
var ErrNegativeBalance = dErrors.New(dErrors.CodeInvariantViolation, "balance must not become negative")

func applyAmount(u *models.User, amount decimal.Decimal) error {
	next := u.Balance.Add(amount)
	if next.IsNegative() {
		return ErrNegativeBalance
	}
	u.Balance = next
	return nil
}
