package editor

// DefaultColWidth is the display width of a column with no stored override.
const DefaultColWidth = 120.0

const (
	minColWidth = 30.0
	maxColWidth = 600.0
)

// ColWidth returns the display width for col.
func (s *Session) ColWidth(col int) float64 {
	if w, ok := s.colWidths[col]; ok {
		return w
	}
	return DefaultColWidth
}

// SetColWidth stores a resized width for col, clamped to sane display
// limits.
func (s *Session) SetColWidth(col int, width float64) {
	if col < 0 {
		return
	}
	if width < minColWidth {
		width = minColWidth
	}
	if width > maxColWidth {
		width = maxColWidth
	}
	s.colWidths[col] = width
}

// AddRow appends a blank row behind a history snapshot.
func (s *Session) AddRow() {
	s.SaveUndoState()
	s.Grid.AddRow()
	s.clearSortIndicator()
}

// AddColumn appends a blank column behind a history snapshot.
func (s *Session) AddColumn() {
	s.SaveUndoState()
	s.Grid.AddColumn()
	s.clearSortIndicator()
}

// InsertRowAt inserts a blank row at index row behind a history snapshot.
// An edit in flight on a row at or below the insertion point follows its
// cell down.
func (s *Session) InsertRowAt(row int) {
	s.SaveUndoState()
	s.Grid.InsertRowAt(row)
	if s.editing && s.editRow >= row {
		s.editRow++
	}
	s.clearSortIndicator()
}

// DeleteRow removes the row at index row behind a history snapshot.
// Out-of-range indices are a no-op with no snapshot. An edit in flight on
// the deleted row is discarded; one below it follows its cell up.
func (s *Session) DeleteRow(row int) {
	if row < 0 || row >= s.Grid.RowCount() {
		return
	}
	s.SaveUndoState()
	s.Grid.DeleteRow(row)
	if s.editing {
		switch {
		case s.editRow == row:
			s.CancelEdit()
		case s.editRow > row:
			s.editRow--
		}
	}
	s.clearSortIndicator()
}

// InsertColumnAt inserts a blank column at index col behind a history
// snapshot. Stored widths at or after the insertion point shift right; the
// new column starts at the default width. An edit in flight follows its
// cell.
func (s *Session) InsertColumnAt(col int) {
	s.SaveUndoState()
	s.Grid.InsertColumnAt(col)
	shifted := make(map[int]float64, len(s.colWidths))
	for c, w := range s.colWidths {
		if c >= col {
			shifted[c+1] = w
		} else {
			shifted[c] = w
		}
	}
	s.colWidths = shifted
	if s.editing && s.editCol >= col {
		s.editCol++
	}
	s.clearSortIndicator()
}

// DeleteColumn removes the column at index col behind a history snapshot.
// Out-of-range indices are a no-op with no snapshot. The deleted column's
// stored width is dropped and widths after it shift left. An edit in flight
// on the deleted column is discarded; one after it follows its cell.
func (s *Session) DeleteColumn(col int) {
	if col < 0 || col >= s.Grid.ColCount() {
		return
	}
	s.SaveUndoState()
	s.Grid.DeleteColumn(col)
	shifted := make(map[int]float64, len(s.colWidths))
	for c, w := range s.colWidths {
		switch {
		case c == col:
			// dropped with the column
		case c > col:
			shifted[c-1] = w
		default:
			shifted[c] = w
		}
	}
	s.colWidths = shifted
	if s.editing {
		switch {
		case s.editCol == col:
			s.CancelEdit()
		case s.editCol > col:
			s.editCol--
		}
	}
	s.clearSortIndicator()
}
