package editor

import (
	"sort"
	"strconv"
	"strings"
)

// SortByColumn reorders the rows by the values in col behind a history
// snapshot. The sort is stable, so equal keys keep their relative order.
// When the header is frozen, row 0 stays pinned and only the rows below it
// move. Each pairwise comparison is numeric when both values parse as
// floats and ordinal otherwise; missing cells compare as the empty string.
// Out-of-range columns are a no-op.
func (s *Session) SortByColumn(col int, ascending bool) {
	if col < 0 || col >= s.Grid.ColCount() {
		return
	}
	if s.editing {
		s.CommitEdit()
	}
	s.SaveUndoState()

	start := 0
	if s.frozenHeader && s.Grid.RowCount() > 1 {
		start = 1
	}
	body := s.Grid.Rows[start:]
	sort.SliceStable(body, func(i, j int) bool {
		a, b := "", ""
		if col < len(body[i]) {
			a = body[i][col]
		}
		if col < len(body[j]) {
			b = body[j][col]
		}
		cmp := compareCells(a, b)
		if ascending {
			return cmp < 0
		}
		return cmp > 0
	})

	s.sorted = true
	s.sortCol = col
	s.sortAsc = ascending
}

// SortIndicator reports the column and direction of the last sort, if one is
// still current. The indicator is display-only; undo, redo and structural
// row or column edits clear it, while plain cell edits leave it in place.
func (s *Session) SortIndicator() (col int, ascending bool, ok bool) {
	if !s.sorted {
		return 0, false, false
	}
	return s.sortCol, s.sortAsc, true
}

func (s *Session) clearSortIndicator() {
	s.sorted = false
}

// compareCells orders two cell values: numerically when both parse as
// floats, lexically otherwise.
func compareCells(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
