package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"promptlab/internal/domain"
)

// DefaultAttemptTTL bounds how long an idle attempt is kept.
const DefaultAttemptTTL = time.Hour

// PublicQuestion is a question without its answer key.
type PublicQuestion struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// PublicQuiz is a quiz without its answer key.
type PublicQuiz struct {
	Module    int              `json:"module"`
	Title     string           `json:"title"`
	Questions []PublicQuestion `json:"questions"`
}

// AttemptView is what a learner sees for an attempt.
type AttemptView struct {
	ID       string          `json:"id"`
	Module   int             `json:"module"`
	Title    string          `json:"title"`
	Current  int             `json:"current"`
	Total    int             `json:"total"`
	Progress int             `json:"progress"`
	Answers  map[int]int     `json:"answers"`
	Finished bool            `json:"finished"`
	Question *PublicQuestion `json:"question,omitempty"`
	Result   *Result         `json:"result,omitempty"`
}

// Public strips the answer key from q.
func Public(q Quiz) PublicQuiz {
	out := PublicQuiz{Module: q.Module, Title: q.Title, Questions: make([]PublicQuestion, len(q.Questions))}
	for i, item := range q.Questions {
		out.Questions[i] = PublicQuestion{Index: i, Question: item.Question, Options: append([]string(nil), item.Options...)}
	}
	return out
}

// Service drives quiz attempts stored in an AttemptStore.
type Service struct {
	store  domain.AttemptStore
	ttl    time.Duration
	logger zerolog.Logger
	now    func() time.Time
}

func NewService(store domain.AttemptStore, ttl time.Duration, logger zerolog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultAttemptTTL
	}
	return &Service{store: store, ttl: ttl, logger: logger, now: time.Now}
}

// Start opens a new attempt positioned on the first question.
func (s *Service) Start(ctx context.Context, module int) (*domain.QuizAttempt, error) {
	if !HasQuiz(module) {
		module = DefaultModule
	}
	now := s.now()
	attempt := &domain.QuizAttempt{
		ID:        uuid.NewString(),
		Module:    module,
		Answers:   map[int]int{},
		StartedAt: now,
		UpdatedAt: now,
	}
	if err := s.save(ctx, attempt); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("attempt_id", attempt.ID).Int("module", module).Msg("quiz attempt started")
	return attempt, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.QuizAttempt, error) {
	return s.store.Get(ctx, id)
}

// Answer records option for the current question.
func (s *Service) Answer(ctx context.Context, id string, option int) (*domain.QuizAttempt, error) {
	return s.update(ctx, id, func(attempt *domain.QuizAttempt) error {
		if err := checkOpen(attempt); err != nil {
			return err
		}
		q := ForModule(attempt.Module)
		if option < 0 || option >= len(q.Questions[attempt.Current].Options) {
			return fmt.Errorf("option %d: %w", option, domain.ErrInvalidAnswer)
		}
		attempt.Answers[attempt.Current] = option
		return nil
	})
}

// Next advances past the current question. Leaving the last question
// finishes and scores the attempt.
func (s *Service) Next(ctx context.Context, id string) (*domain.QuizAttempt, error) {
	attempt, err := s.update(ctx, id, func(attempt *domain.QuizAttempt) error {
		if err := checkOpen(attempt); err != nil {
			return err
		}
		if _, ok := attempt.Answers[attempt.Current]; !ok {
			return fmt.Errorf("question %d: %w", attempt.Current, domain.ErrAnswerRequired)
		}
		q := ForModule(attempt.Module)
		if attempt.Current < len(q.Questions)-1 {
			attempt.Current++
			return nil
		}
		attempt.Finished = true
		attempt.Score = Score(q, attempt.Answers).Score
		return nil
	})
	if err != nil {
		return nil, err
	}
	if attempt.Finished {
		s.logger.Info().Str("attempt_id", attempt.ID).Int("module", attempt.Module).Int("score", attempt.Score).Msg("quiz attempt finished")
	}
	return attempt, nil
}

// Reset puts the attempt back on the first question with no answers.
func (s *Service) Reset(ctx context.Context, id string) (*domain.QuizAttempt, error) {
	return s.update(ctx, id, func(attempt *domain.QuizAttempt) error {
		attempt.Current = 0
		attempt.Answers = map[int]int{}
		attempt.Finished = false
		attempt.Score = 0
		return nil
	})
}

// View renders attempt for the learner.
func (s *Service) View(attempt *domain.QuizAttempt) AttemptView {
	q := ForModule(attempt.Module)
	v := AttemptView{
		ID:       attempt.ID,
		Module:   attempt.Module,
		Title:    q.Title,
		Current:  attempt.Current,
		Total:    len(q.Questions),
		Progress: Progress(attempt.Current, len(q.Questions)),
		Answers:  attempt.Answers,
		Finished: attempt.Finished,
	}
	if attempt.Finished {
		res := Score(q, attempt.Answers)
		v.Result = &res
		return v
	}
	pq := Public(q).Questions[attempt.Current]
	v.Question = &pq
	return v
}

func checkOpen(attempt *domain.QuizAttempt) error {
	if attempt.Finished {
		return domain.ErrAttemptFinished
	}
	if attempt.Answers == nil {
		attempt.Answers = map[int]int{}
	}
	return nil
}

func (s *Service) update(ctx context.Context, id string, fn func(*domain.QuizAttempt) error) (*domain.QuizAttempt, error) {
	return s.store.Update(ctx, id, s.ttl, func(attempt *domain.QuizAttempt) error {
		if err := fn(attempt); err != nil {
			return err
		}
		attempt.UpdatedAt = s.now()
		return nil
	})
}

func (s *Service) save(ctx context.Context, attempt *domain.QuizAttempt) error {
	attempt.UpdatedAt = s.now()
	if err := s.store.Save(ctx, attempt, s.ttl); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}
