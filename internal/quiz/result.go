package quiz

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// NoAnswer is the sentinel recorded for a skipped (empty) answer so
// reports can distinguish "skipped" from "wrong but attempted".
const NoAnswer = "(no answer)"

// Failure records one incorrectly answered question.
type Failure struct {
	QuestionID    int    `json:"question_id"`
	Prompt        string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// RunResult is the outcome of one completed run through a quiz. It is
// constructed once by the scorer and never mutated.
type RunResult struct {
	QuizID           string    `json:"quiz_id"`
	CompletedAt      time.Time `json:"completed_at"`
	TotalQuestions   int       `json:"total_questions"`
	CorrectCount     int       `json:"correct_answers"`
	ScorePercentage  float64   `json:"score_percentage"`
	Passed           bool      `json:"passed"`
	Failures         []Failure `json:"failures"`
	TimeSpentSeconds float64   `json:"time_spent"`
}

// Report renders the result as a multi-line text report.
func (r RunResult) Report() string {
	mins := int(r.TimeSpentSeconds) / 60
	secs := int(r.TimeSpentSeconds) % 60
	timeStr := fmt.Sprintf("%ds", secs)
	if mins > 0 {
		timeStr = fmt.Sprintf("%dm %ds", mins, secs)
	}

	status := "FAIL"
	if r.Passed {
		status = "PASS"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Quiz Report - %s\n", r.QuizID)
	fmt.Fprintf(&b, "Date: %s\n", r.CompletedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Questions: %d\n", r.TotalQuestions)
	fmt.Fprintf(&b, "Correct: %d\n", r.CorrectCount)
	fmt.Fprintf(&b, "Score: %.1f%%\n", r.ScorePercentage)
	fmt.Fprintf(&b, "Time Spent: %s\n", timeStr)
	fmt.Fprintf(&b, "Result: %s\n", status)
	b.WriteString("\n")

	if len(r.Failures) == 0 {
		b.WriteString("Perfect score! All answers correct.")
		return b.String()
	}

	fmt.Fprintf(&b, "Failures (%d):\n", len(r.Failures))
	b.WriteString(strings.Repeat("=", 60) + "\n")
	for _, f := range r.Failures {
		fmt.Fprintf(&b, "Q%d: %s\n", f.QuestionID, f.Prompt)
		fmt.Fprintf(&b, "  Your answer: %s\n", f.UserAnswer)
		fmt.Fprintf(&b, "  Correct answer: %s\n", f.CorrectAnswer)
		b.WriteString(strings.Repeat("-", 60) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// SaveReport writes the text report to path.
func (r RunResult) SaveReport(path string) error {
	if err := os.WriteFile(path, []byte(r.Report()), 0o644); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}
