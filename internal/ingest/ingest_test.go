package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.csv")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestIngestStripsHeader(t *testing.T) {
	path := writeCSV(t, []byte("Question,Answer\nWhat is 2+2?,4\n"))

	pairs, warnings, err := Ingest(path)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if len(pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(pairs))
	}
	if pairs[0].Question != "What is 2+2?" || pairs[0].Answer != "4" {
		t.Errorf("pair = %+v", pairs[0])
	}
}

func TestIngestHeaderDetectionVariants(t *testing.T) {
	tests := []struct {
		name      string
		firstRow  string
		wantPairs int
	}{
		{"question in first field", "My Questions,Col2\na,b\n", 1},
		{"answer in second field", "Col1,Answers\na,b\n", 1},
		{"case insensitive", "QUESTION,ANSWER\na,b\n", 1},
		{"no header", "Capital of France?,Paris\na,b\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, []byte(tt.firstRow))
			pairs, _, err := Ingest(path)
			if err != nil {
				t.Fatalf("ingest: %v", err)
			}
			if len(pairs) != tt.wantPairs {
				t.Errorf("pairs = %d, want %d", len(pairs), tt.wantPairs)
			}
		})
	}
}

func TestIngestSkipsEmptyRowsWithWarning(t *testing.T) {
	path := writeCSV(t, []byte("q1,a1\n , \nq2,\nq3,a3\n"))

	pairs, warnings, err := Ingest(path)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("pairs = %d, want 2", len(pairs))
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %d, want 2: %v", len(warnings), warnings)
	}
	if warnings[0].Row != 2 || warnings[1].Row != 3 {
		t.Errorf("warning rows = %d, %d, want 2, 3", warnings[0].Row, warnings[1].Row)
	}
}

func TestIngestMalformedRow(t *testing.T) {
	path := writeCSV(t, []byte("q1,a1\nonly-one-column\n"))

	_, _, err := Ingest(path)
	var merr *MalformedRowError
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want *MalformedRowError", err)
	}
	if merr.Row != 2 {
		t.Errorf("row = %d, want 2", merr.Row)
	}
	if merr.Columns != 1 {
		t.Errorf("columns = %d, want 1", merr.Columns)
	}
}

func TestIngestExtraColumnsIgnored(t *testing.T) {
	path := writeCSV(t, []byte("q1,a1,extra,more\n"))

	pairs, _, err := Ingest(path)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Answer != "a1" {
		t.Errorf("pairs = %+v", pairs)
	}
}

func TestIngestQuotedFields(t *testing.T) {
	path := writeCSV(t, []byte("\"Primary colors?\",\"red, blue, yellow\"\n\"Multi\nline question\",answer\n"))

	pairs, _, err := Ingest(path)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("pairs = %d, want 2", len(pairs))
	}
	if pairs[0].Answer != "red, blue, yellow" {
		t.Errorf("quoted answer = %q", pairs[0].Answer)
	}
	if pairs[1].Question != "Multi\nline question" {
		t.Errorf("multiline question = %q", pairs[1].Question)
	}
}

func TestIngestLatin1Fallback(t *testing.T) {
	// "café,caf\xe9" — 0xE9 is é in Latin-1 but invalid UTF-8.
	path := writeCSV(t, []byte{'c', 'a', 'f', 0xE9, ',', 'o', 'u', 'i', '\n'})

	pairs, _, err := Ingest(path)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(pairs))
	}
	if pairs[0].Question != "café" {
		t.Errorf("question = %q, want %q", pairs[0].Question, "café")
	}
}

func TestIngestMissingFile(t *testing.T) {
	_, _, err := Ingest(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestDecodeWithExhaustsEncodings(t *testing.T) {
	failing := []decoder{
		{"enc-a", func([]byte) (string, error) { return "", fmt.Errorf("enc-a cannot decode") }},
		{"enc-b", func([]byte) (string, error) { return "", fmt.Errorf("enc-b cannot decode") }},
	}

	_, err := decodeWith([]byte{0xFF}, failing)
	var eerr *EncodingExhaustedError
	if !errors.As(err, &eerr) {
		t.Fatalf("err = %v, want *EncodingExhaustedError", err)
	}
	if len(eerr.Attempted) != 2 || eerr.Attempted[0] != "enc-a" || eerr.Attempted[1] != "enc-b" {
		t.Errorf("attempted = %v", eerr.Attempted)
	}
}

func TestIngestUTF8BOM(t *testing.T) {
	// BOM followed by a header row; the header is detected and stripped
	// regardless of which UTF-8 variant decoded the bytes.
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Question,Answer\nq1,a1\n")...)
	path := writeCSV(t, data)

	pairs, _, err := Ingest(path)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Question != "q1" {
		t.Errorf("pairs = %+v", pairs)
	}
}
