package store

import (
	"context"
	"sync"

	"github.com/shorturl-platform/userservice/models"
)

// memoryUserStore is a map-backed implementation of UserStore and Initializer
// with the same conditional-write semantics as the DynamoDB store. It backs
// unit tests and local development runs where no DynamoDB endpoint is
// available.
type memoryUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

// NewMemoryUserStore constructs an empty in-memory UserStore.
func NewMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{
		users: make(map[string]models.User),
	}
}

func (s *memoryUserStore) InsertIfAbsent(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return ErrUserAlreadyExists
	}

	user.Version = 1
	s.users[user.Username] = user
	return nil
}

func (s *memoryUserStore) Get(_ context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *memoryUserStore) ScanAll(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *memoryUserStore) CompareAndSwapUpdate(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.users[user.Username]
	if !exists || stored.Version != user.Version {
		return models.User{}, ErrVersionConflict
	}

	user.Version++
	s.users[user.Username] = user
	return user, nil
}

func (s *memoryUserStore) Delete(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; !exists {
		return ErrUserNotFound
	}

	delete(s.users, user.Username)
	return nil
}

func (s *memoryUserStore) Initialize(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]models.User)
	return nil
}
