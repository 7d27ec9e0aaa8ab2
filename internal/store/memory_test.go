package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shorturl-platform/userservice/models"
)

func newTestUser(username string) models.User {
	return models.NewUser(username, "hashed", models.RoleUser, "Test User", "test@example.com", time.Now())
}

func TestMemoryStore_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()

	require.NoError(t, s.InsertIfAbsent(ctx, newTestUser("alice")))

	got, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, int64(1), got.Version)
}

func TestMemoryStore_InsertIfAbsent_Conflict(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()

	require.NoError(t, s.InsertIfAbsent(ctx, newTestUser("alice")))
	err := s.InsertIfAbsent(ctx, newTestUser("alice"))
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestMemoryStore_Get_NotFound(t *testing.T) {
	s := NewMemoryUserStore()

	_, err := s.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryStore_CompareAndSwapUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()
	require.NoError(t, s.InsertIfAbsent(ctx, newTestUser("alice")))

	current, err := s.Get(ctx, "alice")
	require.NoError(t, err)

	current.Name = "Alice Updated"
	updated, err := s.CompareAndSwapUpdate(ctx, current)
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", updated.Name)
	assert.Equal(t, int64(2), updated.Version)
}

func TestMemoryStore_CompareAndSwapUpdate_StaleVersion(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()
	require.NoError(t, s.InsertIfAbsent(ctx, newTestUser("alice")))

	stale, err := s.Get(ctx, "alice")
	require.NoError(t, err)

	// A concurrent writer bumps the version first.
	fresh, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	_, err = s.CompareAndSwapUpdate(ctx, fresh)
	require.NoError(t, err)

	_, err = s.CompareAndSwapUpdate(ctx, stale)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestMemoryStore_CompareAndSwapUpdate_Missing(t *testing.T) {
	s := NewMemoryUserStore()

	_, err := s.CompareAndSwapUpdate(context.Background(), newTestUser("ghost"))
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()
	require.NoError(t, s.InsertIfAbsent(ctx, newTestUser("alice")))

	user, err := s.Get(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, user))

	_, err = s.Get(ctx, "alice")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, s.Delete(ctx, user), ErrUserNotFound)
}

func TestMemoryStore_ScanAll(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()
	require.NoError(t, s.InsertIfAbsent(ctx, newTestUser("alice")))
	require.NoError(t, s.InsertIfAbsent(ctx, newTestUser("bob")))

	users, err := s.ScanAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestMemoryStore_Initialize_Resets(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()
	require.NoError(t, s.InsertIfAbsent(ctx, newTestUser("alice")))

	require.NoError(t, s.Initialize(ctx))

	users, err := s.ScanAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

// Concurrent signups for the same username must produce exactly one winner.
func TestMemoryStore_ConcurrentInsert_SingleWinner(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()

	const goroutines = 16
	var wg sync.WaitGroup
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.InsertIfAbsent(ctx, newTestUser("alice"))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrUserAlreadyExists)
		}
	}
	assert.Equal(t, 1, winners)
}
