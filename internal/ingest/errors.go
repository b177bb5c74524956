package ingest

import (
	"fmt"
	"strings"
)

// MalformedRowError reports a CSV row with fewer than two columns. Row
// is 1-based.
type MalformedRowError struct {
	Row     int
	Columns int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf(
		"row %d has %d column(s), expected at least 2: each row must have at least Question,Answer format",
		e.Row, e.Columns,
	)
}

// EncodingExhaustedError reports that no candidate encoding decoded the
// source. Attempted lists the encodings in the order they were tried.
type EncodingExhaustedError struct {
	Attempted []string
	Last      error
}

func (e *EncodingExhaustedError) Error() string {
	msg := fmt.Sprintf(
		"failed to decode file with any of the attempted encodings: %s",
		strings.Join(e.Attempted, ", "),
	)
	if e.Last != nil {
		msg += fmt.Sprintf(" (last error: %v)", e.Last)
	}
	return msg
}

func (e *EncodingExhaustedError) Unwrap() error { return e.Last }
