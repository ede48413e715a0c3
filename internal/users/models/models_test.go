package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	dErrors "github.com/kkutopiaa/tdd-restful-service/pkg/domain-errors"
)

func TestCreateUserRequestValidate(t *testing.T) {
	valid := CreateUserRequest{Name: "john smith", Email: "john.smith@email.com"}

	tests := []struct {
		name    string
		mutate  func(r *CreateUserRequest)
		wantErr bool
	}{
		{"valid", func(*CreateUserRequest) {}, false},
		{"missing name", func(r *CreateUserRequest) { r.Name = "" }, true},
		{"missing email", func(r *CreateUserRequest) { r.Email = "" }, true},
		{"malformed email", func(r *CreateUserRequest) { r.Email = "john" }, true},
		{"id with slash", func(r *CreateUserRequest) { r.ID = "a/b" }, true},
		{"id with query characters", func(r *CreateUserRequest) { r.ID = "a?b" }, true},
		{"id with unreserved characters", func(r *CreateUserRequest) { r.ID = "a.b_c~d-1" }, false},
		{"negative balance", func(r *CreateUserRequest) { r.Balance = decimal.NewFromInt(-1) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr {
				assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizeAndSlug(t *testing.T) {
	r := CreateUserRequest{ID: " jane ", Name: " Jane Doe ", Email: " Jane@Example.COM "}
	r.Normalize()
	assert.Equal(t, "jane", r.ID)
	assert.Equal(t, "Jane Doe", r.Name)
	assert.Equal(t, "jane@example.com", r.Email)

	derived := CreateUserRequest{Email: "mary.major@example.com"}
	derived.Normalize()
	assert.Equal(t, "Mary Major", derived.Name)

	assert.Equal(t, "john-smith", Slug("John  Smith"))
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"John Smith", "john-smith"},
		{"Ops/Team", "ops-team"},
		{"  R&D -- Lab 42 ", "r-d-lab-42"},
		{"what?#now", "what-now"},
		{"Zoë", "zo"},
		{"日本", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slug(tt.name)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.True(t, ValidID(got))
			}
		})
	}
}
