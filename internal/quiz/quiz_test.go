package quiz

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sampleQuiz() *Quiz {
	return &Quiz{
		ID:         "quiz_20260206_103045",
		CreatedAt:  time.Date(2026, 2, 6, 10, 30, 45, 0, time.UTC),
		SourceFile: "questions.csv",
		Questions: []Question{
			{ID: 1, Prompt: "What is 2+2?", Answer: []string{"4"}, DisplayAnswer: "4"},
			{ID: 2, Prompt: "Primary colors?", Answer: []string{"blue", "red", "yellow"}, DisplayAnswer: "Red, Blue, Yellow"},
		},
	}
}

func TestQuizRoundTrip(t *testing.T) {
	q := sampleQuiz()
	path := filepath.Join(t.TempDir(), "quiz.json")

	if err := q.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.ID != q.ID {
		t.Errorf("quiz_id = %q, want %q", got.ID, q.ID)
	}
	if !got.CreatedAt.Equal(q.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, q.CreatedAt)
	}
	if got.SourceFile != q.SourceFile {
		t.Errorf("source_file = %q, want %q", got.SourceFile, q.SourceFile)
	}
	if len(got.Questions) != len(q.Questions) {
		t.Fatalf("questions = %d, want %d", len(got.Questions), len(q.Questions))
	}
	for i, want := range q.Questions {
		g := got.Questions[i]
		if g.ID != want.ID || g.Prompt != want.Prompt || g.DisplayAnswer != want.DisplayAnswer {
			t.Errorf("question %d = %+v, want %+v", i, g, want)
		}
		if len(g.Answer) != len(want.Answer) {
			t.Errorf("question %d answer length = %d, want %d", i, len(g.Answer), len(want.Answer))
			continue
		}
		for j := range want.Answer {
			if g.Answer[j] != want.Answer[j] {
				t.Errorf("question %d answer[%d] = %q, want %q", i, j, g.Answer[j], want.Answer[j])
			}
		}
	}
}

func TestDecodeMissingSourceFileDefaultsEmpty(t *testing.T) {
	doc := `{
  "quiz_id": "quiz_1",
  "created_at": "2026-02-06T10:30:45Z",
  "questions": [
    {"id": 1, "question": "Q?", "answer": ["a"], "original_answer": "A"}
  ]
}`
	q, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if q.SourceFile != "" {
		t.Errorf("source_file = %q, want empty", q.SourceFile)
	}
}

func TestDecodeRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing quiz_id", `{"created_at": "x", "questions": []}`},
		{"question id zero", `{"quiz_id": "q", "created_at": "x", "questions": [{"id": 0, "question": "Q", "answer": [], "original_answer": ""}]}`},
		{"answer not array", `{"quiz_id": "q", "created_at": "x", "questions": [{"id": 1, "question": "Q", "answer": "a", "original_answer": ""}]}`},
		{"unknown field", `{"quiz_id": "q", "created_at": "x", "questions": [], "extra": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.doc)); err == nil {
				t.Errorf("Decode accepted invalid document %q", tt.doc)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing quiz file")
	}
}

func TestReportWithFailures(t *testing.T) {
	r := RunResult{
		QuizID:           "quiz_x",
		CompletedAt:      time.Date(2026, 2, 6, 10, 30, 45, 0, time.UTC),
		TotalQuestions:   3,
		CorrectCount:     2,
		ScorePercentage:  66.66666666666666,
		Passed:           false,
		TimeSpentSeconds: 95,
		Failures: []Failure{
			{QuestionID: 2, Prompt: "Capital of France?", UserAnswer: NoAnswer, CorrectAnswer: "Paris"},
		},
	}

	report := r.Report()
	for _, want := range []string{
		"Quiz Report - quiz_x",
		"Questions: 3",
		"Correct: 2",
		"Score: 66.7%",
		"Time Spent: 1m 35s",
		"Result: FAIL",
		"Failures (1):",
		"Q2: Capital of France?",
		"Your answer: (no answer)",
		"Correct answer: Paris",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestReportPerfectScore(t *testing.T) {
	r := RunResult{
		QuizID:          "quiz_y",
		TotalQuestions:  2,
		CorrectCount:    2,
		ScorePercentage: 100,
		Passed:          true,
		TimeSpentSeconds: 42,
	}

	report := r.Report()
	if !strings.Contains(report, "Perfect score! All answers correct.") {
		t.Errorf("report missing perfect-score line:\n%s", report)
	}
	if !strings.Contains(report, "Time Spent: 42s") {
		t.Errorf("report missing short time format:\n%s", report)
	}
	if strings.Contains(report, "Failures") {
		t.Errorf("perfect-score report should not list failures:\n%s", report)
	}
}
