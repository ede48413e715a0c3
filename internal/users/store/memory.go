package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/kkutopiaa/tdd-restful-service/internal/users/models"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/sentinel"
)

// InMemoryStore keeps users in a map. Returned users are copies.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewInMemoryStore creates a store holding seed.
func NewInMemoryStore(seed ...models.User) *InMemoryStore {
	s := &InMemoryStore{users: make(map[string]models.User, len(seed))}
	for _, u := range seed {
		s.users[u.ID] = u
	}
	return s
}

func (s *InMemoryStore) List(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, sentinel.ErrNotFound)
	}
	return &u, nil
}

func (s *InMemoryStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; ok {
		return fmt.Errorf("user %s: %w", user.ID, sentinel.ErrConflict)
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return fmt.Errorf("email %s: %w", user.Email, sentinel.ErrConflict)
		}
	}
	s.users[user.ID] = *user
	return nil
}

func (s *InMemoryStore) AddBalance(_ context.Context, id string, amount decimal.Decimal) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, sentinel.ErrNotFound)
	}
	if err := applyAmount(&u, amount); err != nil {
		return nil, err
	}
	s.users[id] = u
	return &u, nil
}
