package csvio

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.csv")
	rows := [][]string{
		{"name", "qty"},
		{"widget, large", "3"},
		{"quote \"here\"", ""},
	}
	if err := Save(path, rows); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Fatalf("round trip mismatch: %v", got)
	}
}

func TestParseRaggedRows(t *testing.T) {
	got, err := Parse([]byte("a,b,c\nd\ne,f\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(got) != 3 || len(got[0]) != 3 || len(got[1]) != 1 {
		t.Fatalf("ragged rows mishandled: %v", got)
	}
}

func TestParseEmptyFile(t *testing.T) {
	if _, err := Parse(nil); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}

func TestParseMalformedQuote(t *testing.T) {
	if _, err := Parse([]byte("a,\"unterminated\nb,c\n")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestSaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.csv")
	if err := Save(path, [][]string{{"v1"}}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := Save(path, [][]string{{"v2"}}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temp file left behind")
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got[0][0] != "v2" {
		t.Fatalf("unexpected content: %v", got)
	}
}
