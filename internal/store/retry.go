package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/shorturl-platform/userservice/internal/logger"
	"github.com/shorturl-platform/userservice/models"
)

const (
	// casMaxAttempts bounds how many read-modify-write cycles a single
	// request may run before the version race is declared lost.
	casMaxAttempts = 5

	// casBackoff is the pause between attempts.
	casBackoff = 100 * time.Millisecond
)

// UpdateWithRetry runs the optimistic-concurrency read-modify-write protocol
// against s for the record keyed by username: read the current record, apply
// mutate to it in memory, and write it back with CompareAndSwapUpdate.
//
// A version conflict reruns the whole cycle, with a fresh read, up to
// casMaxAttempts times with casBackoff between attempts. Every other error
// from the read or the mutation is terminal and returned as-is, so mutate can
// veto the update (e.g. a failed password check) without burning retries.
// Exhausting the bound returns ErrRetriesExhausted.
func UpdateWithRetry(
	ctx context.Context,
	s UserStore,
	username string,
	mutate func(user *models.User) error,
) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	backoff := retry.WithMaxRetries(casMaxAttempts-1, retry.NewConstant(casBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		current, err := s.Get(ctx, username)
		if err != nil {
			return err
		}

		if err := mutate(&current); err != nil {
			return err
		}

		updated, err = s.CompareAndSwapUpdate(ctx, current)
		if errors.Is(err, ErrVersionConflict) {
			log.Debug().Str("username", username).Msg("version conflict, retrying read-modify-write cycle")
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return models.User{}, fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
		}
		return models.User{}, err
	}

	return updated, nil
}
