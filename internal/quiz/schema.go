package quiz

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quizSchema is the JSON schema every persisted quiz document must
// satisfy. source_file is optional; a missing value defaults to "".
var quizSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"quiz_id":     map[string]any{"type": "string", "minLength": 1},
		"created_at":  map[string]any{"type": "string"},
		"source_file": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "integer", "minimum": 1},
					"question": map[string]any{"type": "string"},
					"answer": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"original_answer": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "question", "answer", "original_answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"quiz_id", "created_at", "questions"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks raw quiz JSON against quizSchema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid quiz JSON: %w", err)
	}

	compiled, err := compileQuizSchema()
	if err != nil {
		return fmt.Errorf("compile quiz schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("quiz document validation failed: %w", err)
	}
	return nil
}

// compileQuizSchema compiles quizSchema once and caches the result.
func compileQuizSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(quizSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://quiz.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
