package models

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	dErrors "github.com/kkutopiaa/tdd-restful-service/pkg/domain-errors"
	"github.com/kkutopiaa/tdd-restful-service/pkg/email"
)

// idPattern keeps ids to unreserved URI characters so /users/{id} resolves.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9._~-]+$`)

// User is an account holder exposed under /users.
type User struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateUserRequest is the entity accepted by POST /users.
type CreateUserRequest struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Balance decimal.Decimal `json:"balance"`
}

// Normalize trims whitespace and lowercases the email. A missing name is
// derived from the email.
func (r *CreateUserRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Name == "" {
		r.Name = email.DisplayName(r.Email)
	}
}

// Validate checks required fields and formats.
func (r *CreateUserRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil || r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is invalid")
	}
	if r.ID != "" && !ValidID(r.ID) {
		return dErrors.New(dErrors.CodeValidation, "id may only contain letters, digits and -._~")
	}
	if r.Balance.IsNegative() {
		return dErrors.New(dErrors.CodeValidation, "balance must not be negative")
	}
	return nil
}

// ValidID reports whether id can be used as a single path segment.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Slug derives an id from a name: "John Smith" becomes "john-smith". Runs of
// anything but ASCII letters and digits collapse into one dash. The result is
// empty when the name has no such characters.
func Slug(name string) string {
	var b strings.Builder
	gap := false
	for _, r := range strings.ToLower(name) {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteByte('-')
		}
		gap = false
		b.WriteRune(r)
	}
	return b.String()
}
