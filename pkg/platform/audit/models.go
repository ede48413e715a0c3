// Package audit records what happened to users: who was created and whose
// balance changed, correlated with the request that did it.
package audit

import (
	"context"
	"time"
)

// Action names an audited change.
type Action string

const (
	ActionUserCreated    Action = "user_created"
	ActionBalanceChanged Action = "balance_changed"
)

// Event is one audited change to a user.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	Action    Action    `json:"action"`
	// Detail is a short human-readable note, e.g. the amount deposited.
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Store persists events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByUser(ctx context.Context, userID string) ([]Event, error)
}
