// Package assemble builds concrete Quiz values from distributed
// question slices and generates quiz identifiers.
package assemble

import (
	"fmt"
	"time"

	"github.com/abhisek/quizzer/internal/answer"
	"github.com/abhisek/quizzer/internal/quiz"
)

// Assemble builds a Quiz from the given pairs, in order. Question ids
// are assigned 1..N; any shuffling must already have happened upstream,
// once, over the whole pool.
func Assemble(pairs []quiz.RawPair, quizID, sourceFile string, createdAt time.Time) *quiz.Quiz {
	questions := make([]quiz.Question, len(pairs))
	for i, p := range pairs {
		questions[i] = quiz.Question{
			ID:            i + 1,
			Prompt:        p.Question,
			Answer:        answer.Canonicalize(p.Answer),
			DisplayAnswer: answer.FormatDisplay(p.Answer),
		}
	}

	return &quiz.Quiz{
		ID:         quizID,
		CreatedAt:  createdAt,
		SourceFile: sourceFile,
		Questions:  questions,
	}
}

// QuizID builds an identifier from a prefix, a second-resolution
// timestamp, and an optional 1-based sequence number. seq <= 0 omits
// the suffix entirely, e.g. "quiz_20260206_103045" vs
// "quiz_20260206_103045_2".
func QuizID(prefix string, ts time.Time, seq int) string {
	id := fmt.Sprintf("%s_%s", prefix, ts.Format("20060102_150405"))
	if seq > 0 {
		id = fmt.Sprintf("%s_%d", id, seq)
	}
	return id
}
