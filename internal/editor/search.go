package editor

import (
	"strings"

	"github.com/fairhill1/csv-app/pkg/grid"
)

// CellRef addresses one cell by coordinate.
type CellRef struct {
	Row, Col int
}

// PerformSearch scans the grid in row-major order for cells whose value
// contains query as a substring, folding case when caseSensitive is false.
// An empty query clears the results. Returns the number of matches. The
// result cursor resets; the first NextResult lands on the first match.
func (s *Session) PerformSearch(query string, caseSensitive bool) int {
	s.searchQuery = query
	s.searchResults = nil
	s.searchIndex = -1
	if query == "" {
		return 0
	}
	needle := query
	if !caseSensitive {
		needle = strings.ToLower(needle)
	}
	for r, row := range s.Grid.Rows {
		for c, cell := range row {
			hay := cell
			if !caseSensitive {
				hay = strings.ToLower(hay)
			}
			if strings.Contains(hay, needle) {
				s.searchResults = append(s.searchResults, CellRef{Row: r, Col: c})
			}
		}
	}
	return len(s.searchResults)
}

// NextResult advances the result cursor, wrapping past the last match, and
// selects the match cell. Any in-flight edit is committed first. Returns
// false when there are no results.
func (s *Session) NextResult() bool {
	if len(s.searchResults) == 0 {
		return false
	}
	s.searchIndex = (s.searchIndex + 1) % len(s.searchResults)
	s.focusResult()
	return true
}

// PrevResult steps the result cursor backwards, wrapping before the first
// match, and selects the match cell. Any in-flight edit is committed first.
// Returns false when there are no results.
func (s *Session) PrevResult() bool {
	n := len(s.searchResults)
	if n == 0 {
		return false
	}
	if s.searchIndex < 0 {
		s.searchIndex = n - 1
	} else {
		s.searchIndex = (s.searchIndex - 1 + n) % n
	}
	s.focusResult()
	return true
}

// SearchResults returns the current match list in row-major order.
func (s *Session) SearchResults() []CellRef { return s.searchResults }

// SearchQuery returns the last searched query.
func (s *Session) SearchQuery() string { return s.searchQuery }

// CurrentResult returns the match under the result cursor, if the cursor has
// been placed by NextResult or PrevResult.
func (s *Session) CurrentResult() (CellRef, bool) {
	if s.searchIndex < 0 || s.searchIndex >= len(s.searchResults) {
		return CellRef{}, false
	}
	return s.searchResults[s.searchIndex], true
}

func (s *Session) focusResult() {
	if s.editing {
		s.CommitEdit()
	}
	ref := s.searchResults[s.searchIndex]
	s.Selection = grid.SingleCell(ref.Row, ref.Col)
}

func (s *Session) clearSearch() {
	s.searchQuery = ""
	s.searchResults = nil
	s.searchIndex = -1
}
