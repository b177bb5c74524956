// Package quiz defines the quiz data model: questions, assembled
// quizzes, and the results of a graded run. Quizzes are serialized to a
// JSON document and validated against a schema on load.
package quiz

import "time"

// RawPair is a single (question, answer) row as produced by CSV
// ingestion, before any normalization. Slice order defines the
// presentation order prior to shuffling.
type RawPair struct {
	Question string
	Answer   string
}

// Question is a single quiz question. Answer holds the canonical form
// used for grading (comma-split, trimmed, lowercased, sorted);
// DisplayAnswer preserves the author's casing with separators
// normalized to ", ".
type Question struct {
	ID            int      `json:"id"`
	Prompt        string   `json:"question"`
	Answer        []string `json:"answer"`
	DisplayAnswer string   `json:"original_answer"`
}

// Quiz is an assembled, read-only set of questions. Question ids are
// contiguous 1..N in presentation order.
type Quiz struct {
	ID         string     `json:"quiz_id"`
	CreatedAt  time.Time  `json:"created_at"`
	SourceFile string     `json:"source_file"`
	Questions  []Question `json:"questions"`
}
