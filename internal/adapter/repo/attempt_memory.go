package repo

import (
	"context"
	"sync"
	"time"

	"promptlab/internal/domain"
)

type memoryAttempt struct {
	attempt domain.QuizAttempt
	until   time.Time
}

// AttemptStoreMemory keeps quiz attempts in process memory.
type AttemptStoreMemory struct {
	mu       sync.Mutex
	attempts map[string]*memoryAttempt
	now      func() time.Time
}

func NewAttemptStoreMemory() *AttemptStoreMemory {
	return &AttemptStoreMemory{attempts: make(map[string]*memoryAttempt), now: time.Now}
}

func (s *AttemptStoreMemory) Save(_ context.Context, attempt *domain.QuizAttempt, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	s.attempts[attempt.ID] = &memoryAttempt{attempt: cloneAttempt(*attempt), until: now.Add(ttl)}
	return nil
}

func (s *AttemptStoreMemory) Get(_ context.Context, id string) (*domain.QuizAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.attempts[id]
	if !ok || s.now().After(entry.until) {
		delete(s.attempts, id)
		return nil, domain.ErrNotFound
	}
	out := cloneAttempt(entry.attempt)
	return &out, nil
}

func (s *AttemptStoreMemory) Update(_ context.Context, id string, ttl time.Duration, fn func(*domain.QuizAttempt) error) (*domain.QuizAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	entry, ok := s.attempts[id]
	if !ok || now.After(entry.until) {
		delete(s.attempts, id)
		return nil, domain.ErrNotFound
	}
	working := cloneAttempt(entry.attempt)
	if err := fn(&working); err != nil {
		return nil, err
	}
	s.attempts[id] = &memoryAttempt{attempt: cloneAttempt(working), until: now.Add(ttl)}
	return &working, nil
}

func (s *AttemptStoreMemory) sweepLocked(now time.Time) {
	for id, entry := range s.attempts {
		if now.After(entry.until) {
			delete(s.attempts, id)
		}
	}
}

func cloneAttempt(a domain.QuizAttempt) domain.QuizAttempt {
	answers := make(map[int]int, len(a.Answers))
	for k, v := range a.Answers {
		answers[k] = v
	}
	a.Answers = answers
	return a
}

var _ domain.AttemptStore = (*AttemptStoreMemory)(nil)
