package editor

import (
	"testing"

	"github.com/fairhill1/csv-app/pkg/grid"
)

func TestPerformSearchRowMajor(t *testing.T) {
	s := sessionWith([][]string{
		{"apple", "banana"},
		{"grape", "apple pie"},
	})
	n := s.PerformSearch("apple", true)
	if n != 2 {
		t.Fatalf("expected 2 matches, got %d", n)
	}
	want := []CellRef{{Row: 0, Col: 0}, {Row: 1, Col: 1}}
	got := s.SearchResults()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("result %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPerformSearchCaseFolding(t *testing.T) {
	s := sessionWith([][]string{{"Apple"}})
	if n := s.PerformSearch("apple", true); n != 0 {
		t.Fatalf("case-sensitive search matched %d", n)
	}
	if n := s.PerformSearch("APPLE", false); n != 1 {
		t.Fatalf("case-insensitive search matched %d", n)
	}
}

func TestEmptyQueryClearsResults(t *testing.T) {
	s := sessionWith([][]string{{"a"}})
	s.PerformSearch("a", false)
	if n := s.PerformSearch("", false); n != 0 {
		t.Fatalf("empty query matched %d", n)
	}
	if len(s.SearchResults()) != 0 {
		t.Fatal("empty query should clear old results")
	}
}

func TestResultNavigationWraps(t *testing.T) {
	s := sessionWith([][]string{{"x", ""}, {"", "x"}})
	s.PerformSearch("x", false)

	if !s.NextResult() {
		t.Fatal("next should succeed with results")
	}
	if ref, _ := s.CurrentResult(); ref != (CellRef{Row: 0, Col: 0}) {
		t.Fatalf("first next landed on %v", ref)
	}
	s.NextResult()
	s.NextResult()
	if ref, _ := s.CurrentResult(); ref != (CellRef{Row: 0, Col: 0}) {
		t.Fatalf("next should wrap to the first match, got %v", ref)
	}
	s.PrevResult()
	if ref, _ := s.CurrentResult(); ref != (CellRef{Row: 1, Col: 1}) {
		t.Fatalf("prev should wrap to the last match, got %v", ref)
	}

	r, c, ok := grid.IsSingleCell(s.Selection)
	if !ok || r != 1 || c != 1 {
		t.Fatalf("navigation should select the match cell, got %#v", s.Selection)
	}
}

func TestResultNavigationWithNoResults(t *testing.T) {
	s := sessionWith([][]string{{"a"}})
	s.PerformSearch("zzz", false)
	if s.NextResult() || s.PrevResult() {
		t.Fatal("navigation with no results should report false")
	}
}

func TestResultNavigationCommitsEdit(t *testing.T) {
	s := sessionWith([][]string{{"x", "other"}})
	s.PerformSearch("x", false)
	s.StartEdit(0, 1)
	s.SetEditBuffer("typed")
	s.NextResult()
	if s.Grid.Cell(0, 1) != "typed" {
		t.Fatalf("jumping to a result should commit the edit, got %q", s.Grid.Cell(0, 1))
	}
}
