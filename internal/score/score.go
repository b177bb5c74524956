// Package score grades a run through a quiz. A Scorer moves through
// NotStarted -> InProgress -> Completed as answers are submitted, one
// per question in question order, and produces an immutable RunResult.
package score

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/quizzer/internal/answer"
	"github.com/abhisek/quizzer/internal/quiz"
)

// DefaultPassThreshold is the contractual default passing percentage.
const DefaultPassThreshold = 80.0

// State is the scorer's lifecycle state.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

// ErrNoQuestions is returned when a scorer is created for a quiz with
// zero questions; the score percentage would be undefined.
var ErrNoQuestions = errors.New("quiz has no questions")

// AnswerCountMismatchError reports that the number of submitted answers
// does not match the quiz's question count.
type AnswerCountMismatchError struct {
	Expected int
	Got      int
}

func (e *AnswerCountMismatchError) Error() string {
	return fmt.Sprintf("expected %d answers, got %d", e.Expected, e.Got)
}

// Scorer grades one run through a quiz. It performs no I/O and holds no
// shared state; concurrent scoring of different quizzes needs no
// coordination.
type Scorer struct {
	quiz      *quiz.Quiz
	threshold float64
	now       func() time.Time

	state     State
	startedAt time.Time
	answered  int
	correct   int
	failures  []quiz.Failure
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) { s.now = now }
}

// New creates a Scorer for q. threshold <= 0 selects
// DefaultPassThreshold. Fails with ErrNoQuestions for an empty quiz.
func New(q *quiz.Quiz, threshold float64, opts ...Option) (*Scorer, error) {
	if len(q.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	if threshold <= 0 {
		threshold = DefaultPassThreshold
	}
	s := &Scorer{
		quiz:      q,
		threshold: threshold,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// State returns the scorer's current lifecycle state.
func (s *Scorer) State() State { return s.state }

// Answered returns the number of answers submitted so far.
func (s *Scorer) Answered() int { return s.answered }

// Correct returns the number of correct answers so far.
func (s *Scorer) Correct() int { return s.correct }

// Question returns the question the next Submit will grade, or nil when
// the run is complete.
func (s *Scorer) Question() *quiz.Question {
	if s.answered >= len(s.quiz.Questions) {
		return nil
	}
	return &s.quiz.Questions[s.answered]
}

// Submit grades the next question's answer and reports whether it was
// correct. The first submission starts the run clock; the last moves
// the scorer to Completed. Submitting past the end fails with
// *AnswerCountMismatchError.
func (s *Scorer) Submit(userAnswer string) (bool, error) {
	if s.state == Completed {
		return false, &AnswerCountMismatchError{
			Expected: len(s.quiz.Questions),
			Got:      s.answered + 1,
		}
	}
	if s.state == NotStarted {
		s.state = InProgress
		s.startedAt = s.now()
	}

	q := s.quiz.Questions[s.answered]
	correct := answer.Matches(userAnswer, q.DisplayAnswer)
	s.answered++

	if correct {
		s.correct++
	} else {
		display := answer.FormatDisplay(userAnswer)
		if display == "" {
			display = quiz.NoAnswer
		}
		s.failures = append(s.failures, quiz.Failure{
			QuestionID:    q.ID,
			Prompt:        q.Prompt,
			UserAnswer:    display,
			CorrectAnswer: q.DisplayAnswer,
		})
	}

	if s.answered == len(s.quiz.Questions) {
		s.state = Completed
	}
	return correct, nil
}

// Result builds the RunResult for a completed run. Calling it before
// every question has been answered fails with
// *AnswerCountMismatchError.
func (s *Scorer) Result() (quiz.RunResult, error) {
	if s.state != Completed {
		return quiz.RunResult{}, &AnswerCountMismatchError{
			Expected: len(s.quiz.Questions),
			Got:      s.answered,
		}
	}

	total := len(s.quiz.Questions)
	pct := float64(s.correct) / float64(total) * 100
	completedAt := s.now()

	failures := make([]quiz.Failure, len(s.failures))
	copy(failures, s.failures)

	return quiz.RunResult{
		QuizID:           s.quiz.ID,
		CompletedAt:      completedAt,
		TotalQuestions:   total,
		CorrectCount:     s.correct,
		ScorePercentage:  pct,
		Passed:           pct >= s.threshold,
		Failures:         failures,
		TimeSpentSeconds: completedAt.Sub(s.startedAt).Seconds(),
	}, nil
}

// Score grades a full run in one call: one answer per question, in
// question order. An answer count that does not match the quiz fails
// with *AnswerCountMismatchError before anything is graded.
func Score(q *quiz.Quiz, answers []string, threshold float64, opts ...Option) (quiz.RunResult, error) {
	s, err := New(q, threshold, opts...)
	if err != nil {
		return quiz.RunResult{}, err
	}
	if len(answers) != len(q.Questions) {
		return quiz.RunResult{}, &AnswerCountMismatchError{
			Expected: len(q.Questions),
			Got:      len(answers),
		}
	}
	for _, a := range answers {
		if _, err := s.Submit(a); err != nil {
			return quiz.RunResult{}, err
		}
	}
	return s.Result()
}
