package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizzer/internal/quiz"
)

// RunRecord is one stored quiz run.
type RunRecord struct {
	ID              string
	QuizID          string
	CompletedAt     time.Time
	TotalQuestions  int
	CorrectAnswers  int
	ScorePercentage float64
	Passed          bool
	TimeSpent       float64
}

// SaveRun records a completed run and prunes history beyond keep
// entries (keep <= 0 disables pruning). Returns the new record id.
func (s *Store) SaveRun(ctx context.Context, r quiz.RunResult, keep int) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, quiz_id, completed_at, total_questions,
			correct_answers, score_percentage, passed, time_spent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.QuizID, r.CompletedAt.UTC(), r.TotalQuestions,
		r.CorrectCount, r.ScorePercentage, r.Passed, r.TimeSpentSeconds,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	if keep > 0 {
		if err := s.pruneRuns(ctx, keep); err != nil {
			return "", err
		}
	}
	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, quiz_id, completed_at, total_questions,
			correct_answers, score_percentage, passed, time_spent
		FROM runs
		ORDER BY completed_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		err := rows.Scan(&r.ID, &r.QuizID, &r.CompletedAt, &r.TotalQuestions,
			&r.CorrectAnswers, &r.ScorePercentage, &r.Passed, &r.TimeSpent)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

// pruneRuns deletes all but the newest keep runs.
func (s *Store) pruneRuns(ctx context.Context, keep int) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY completed_at DESC, id LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune runs: %w", err)
	}
	return nil
}
