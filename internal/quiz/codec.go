package quiz

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes the quiz to path as an indented JSON document.
func (q *Quiz) Save(path string) error {
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal quiz %s: %w", q.ID, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save quiz %s: %w", q.ID, err)
	}
	return nil
}

// Load reads a quiz document from path, validating it against the quiz
// schema before decoding. A document with a missing source_file decodes
// with an empty string.
func Load(path string) (*Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	return Decode(data)
}

// Decode validates and unmarshals a quiz JSON document.
func Decode(data []byte) (*Quiz, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}
	var q Quiz
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}
	return &q, nil
}
