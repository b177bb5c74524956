// Package ingest reads question/answer pairs from a two-column CSV
// source. It tolerates several text encodings, strips a detected header
// row, and skips rows with an empty question or answer, reporting those
// as warnings rather than errors.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/abhisek/quizzer/internal/quiz"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decoder is one candidate text encoding. decode returns an error only
// when the bytes are not valid under the encoding.
type decoder struct {
	name   string
	decode func([]byte) (string, error)
}

// candidateEncodings are tried in order; the first that decodes the
// whole source wins. A decoded-but-malformed CSV is a terminal error
// and does not fall through to the next encoding.
var candidateEncodings = []decoder{
	{"utf-8", decodeUTF8},
	{"utf-8-sig", decodeUTF8BOM},
	{"latin-1", charmapDecode(charmap.ISO8859_1)},
	{"windows-1252", charmapDecode(charmap.Windows1252)},
	{"iso-8859-1", charmapDecode(charmap.ISO8859_1)},
}

// RowWarning reports a skipped row. Row is 1-based.
type RowWarning struct {
	Row     int
	Message string
}

func (w RowWarning) String() string {
	return fmt.Sprintf("skipping row %d: %s", w.Row, w.Message)
}

// Ingest reads the CSV at path and returns the ordered question/answer
// pairs it contains. Only the first two columns of each row are used.
// A missing file surfaces as an error satisfying errors.Is(err,
// fs.ErrNotExist); structural problems surface as *MalformedRowError,
// and undecodable content as *EncodingExhaustedError.
func Ingest(path string) ([]quiz.RawPair, []RowWarning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	text, err := decodeWith(data, candidateEncodings)
	if err != nil {
		return nil, nil, err
	}

	return parseRows(text)
}

// decodeWith tries each decoder in order and returns the first
// successful decoding of the full input.
func decodeWith(data []byte, decoders []decoder) (string, error) {
	var lastErr error
	for _, d := range decoders {
		text, err := d.decode(data)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}

	names := make([]string, len(decoders))
	for i, d := range decoders {
		names[i] = d.name
	}
	return "", &EncodingExhaustedError{Attempted: names, Last: lastErr}
}

// parseRows parses decoded CSV text into pairs, applying header
// detection and empty-row filtering.
func parseRows(text string) ([]quiz.RawPair, []RowWarning, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}

	var pairs []quiz.RawPair
	var warnings []RowWarning
	for i, record := range records {
		row := i + 1
		if len(record) < 2 {
			return nil, nil, &MalformedRowError{Row: row, Columns: len(record)}
		}

		question := strings.TrimSpace(record[0])
		answer := strings.TrimSpace(record[1])

		if row == 1 && isHeader(question, answer) {
			continue
		}

		if question == "" || answer == "" {
			warnings = append(warnings, RowWarning{Row: row, Message: "empty question or answer"})
			continue
		}

		pairs = append(pairs, quiz.RawPair{Question: question, Answer: answer})
	}

	return pairs, warnings, nil
}

// isHeader reports whether the first row looks like a column header.
func isHeader(first, second string) bool {
	for _, field := range []string{strings.ToLower(first), strings.ToLower(second)} {
		if strings.Contains(field, "question") || strings.Contains(field, "answer") {
			return true
		}
	}
	return false
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("invalid utf-8 sequence")
	}
	return string(data), nil
}

func decodeUTF8BOM(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	return decodeUTF8(data)
}

func charmapDecode(cm *charmap.Charmap) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		out, _, err := transform.Bytes(cm.NewDecoder(), data)
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", cm, err)
		}
		return string(out), nil
	}
}
