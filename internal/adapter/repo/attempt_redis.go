package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"promptlab/internal/domain"
)

const (
	attemptKeyPrefix = "promptlab:quiz-attempt:"
	// attemptUpdateRetries bounds optimistic retries when a watched key
	// changes under an update.
	attemptUpdateRetries = 5
)

// AttemptStoreRedis keeps quiz attempts as JSON values with a TTL.
type AttemptStoreRedis struct {
	rdb *redis.Client
}

func NewAttemptStoreRedis(rdb *redis.Client) *AttemptStoreRedis {
	return &AttemptStoreRedis{rdb: rdb}
}

func (s *AttemptStoreRedis) Save(ctx context.Context, attempt *domain.QuizAttempt, ttl time.Duration) error {
	payload, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("encode attempt: %w", err)
	}
	return s.rdb.Set(ctx, attemptKey(attempt.ID), payload, ttl).Err()
}

func (s *AttemptStoreRedis) Get(ctx context.Context, id string) (*domain.QuizAttempt, error) {
	payload, err := s.rdb.Get(ctx, attemptKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeAttempt(payload)
}

// Update reads, modifies and writes the attempt inside a WATCH transaction.
func (s *AttemptStoreRedis) Update(ctx context.Context, id string, ttl time.Duration, fn func(*domain.QuizAttempt) error) (*domain.QuizAttempt, error) {
	key := attemptKey(id)
	var out *domain.QuizAttempt
	txf := func(tx *redis.Tx) error {
		payload, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		attempt, err := decodeAttempt(payload)
		if err != nil {
			return err
		}
		if err := fn(attempt); err != nil {
			return err
		}
		next, err := json.Marshal(attempt)
		if err != nil {
			return fmt.Errorf("encode attempt: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, ttl)
			return nil
		})
		if err != nil {
			return err
		}
		out = attempt
		return nil
	}

	for i := 0; i < attemptUpdateRetries; i++ {
		err := s.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return nil, fmt.Errorf("update attempt %s: %w", id, domain.ErrAttemptBusy)
}

func attemptKey(id string) string {
	return attemptKeyPrefix + id
}

func decodeAttempt(payload []byte) (*domain.QuizAttempt, error) {
	var attempt domain.QuizAttempt
	if err := json.Unmarshal(payload, &attempt); err != nil {
		return nil, fmt.Errorf("decode attempt: %w", err)
	}
	if attempt.Answers == nil {
		attempt.Answers = map[int]int{}
	}
	return &attempt, nil
}

var _ domain.AttemptStore = (*AttemptStoreRedis)(nil)
