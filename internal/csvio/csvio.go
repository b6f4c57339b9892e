// Package csvio is the document boundary: CSV files in, CSV files out. Rows
// are plain string slices; the grid model normalizes ragged input after
// loading.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyFile marks a CSV file that parsed to zero rows.
var ErrEmptyFile = errors.New("csvio: file contains no rows")

// Load reads and parses a CSV file. Rows may have differing lengths; the
// caller is expected to normalize. A parse failure returns the error without
// partial data, so the caller's current document stays intact.
func Load(path string) ([][]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes CSV bytes into rows.
func Parse(b []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(b))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvio: parse: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rows, nil
}

// Save encodes rows as CSV and writes them to path via a temp file and
// rename, so a failed write never truncates an existing document.
func Save(path string, rows [][]string) error {
	b, err := Encode(rows)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Encode serializes rows to CSV bytes. Quoting and escaping of commas,
// quotes and embedded newlines follow the standard CSV writer.
func Encode(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("csvio: encode: %w", err)
	}
	return buf.Bytes(), nil
}
