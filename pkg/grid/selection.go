package grid

// Selection is the highlighted region of the grid: exactly one of None,
// CellRange, Column, or Row. The closed interface keeps the four shapes
// mutually exclusive and forces exhaustive switches at call sites.
type Selection interface {
	isSelection()
}

// None is the absence of a selection.
type None struct{}

// CellRange is an axis-aligned rectangle between two corners. The corners may
// be given in any order; Bounds normalizes. A single selected cell is a
// CellRange whose corners coincide.
type CellRange struct {
	StartRow, StartCol int
	EndRow, EndCol     int
}

// Column selects every row's cell at one column.
type Column struct {
	Col int
}

// Row selects every cell in one row.
type Row struct {
	Row int
}

func (None) isSelection()      {}
func (CellRange) isSelection() {}
func (Column) isSelection()    {}
func (Row) isSelection()       {}

// SingleCell returns a one-cell CellRange at (row, col).
func SingleCell(row, col int) CellRange {
	return CellRange{StartRow: row, StartCol: col, EndRow: row, EndCol: col}
}

// IsSingleCell reports whether sel is a CellRange covering exactly one cell,
// and that cell's coordinate.
func IsSingleCell(sel Selection) (row, col int, ok bool) {
	r, isRange := sel.(CellRange)
	if !isRange || r.StartRow != r.EndRow || r.StartCol != r.EndCol {
		return 0, 0, false
	}
	return r.StartRow, r.StartCol, true
}

// Bounds returns the normalized (minRow, maxRow, minCol, maxCol) covered by
// sel against g's current extent. ok is false for None and for degenerate
// grids where the variant selects nothing.
func Bounds(sel Selection, g *Grid) (minRow, maxRow, minCol, maxCol int, ok bool) {
	switch s := sel.(type) {
	case CellRange:
		minRow, maxRow = s.StartRow, s.EndRow
		if minRow > maxRow {
			minRow, maxRow = maxRow, minRow
		}
		minCol, maxCol = s.StartCol, s.EndCol
		if minCol > maxCol {
			minCol, maxCol = maxCol, minCol
		}
		return minRow, maxRow, minCol, maxCol, true
	case Column:
		if g.RowCount() == 0 {
			return 0, 0, 0, 0, false
		}
		return 0, g.RowCount() - 1, s.Col, s.Col, true
	case Row:
		if g.ColCount() == 0 {
			return 0, 0, 0, 0, false
		}
		return s.Row, s.Row, 0, g.ColCount() - 1, true
	default:
		return 0, 0, 0, 0, false
	}
}

// Contains reports whether (row, col) falls inside sel. Membership agrees
// exactly with ClearCells and ExtractText.
func Contains(sel Selection, row, col int) bool {
	switch s := sel.(type) {
	case CellRange:
		minRow, maxRow := s.StartRow, s.EndRow
		if minRow > maxRow {
			minRow, maxRow = maxRow, minRow
		}
		minCol, maxCol := s.StartCol, s.EndCol
		if minCol > maxCol {
			minCol, maxCol = maxCol, minCol
		}
		return row >= minRow && row <= maxRow && col >= minCol && col <= maxCol
	case Column:
		return col == s.Col
	case Row:
		return row == s.Row
	default:
		return false
	}
}

// ClearCells empties every existing cell contained in sel. Cells outside the
// grid's extent are skipped, never created.
func ClearCells(g *Grid, sel Selection) {
	switch s := sel.(type) {
	case CellRange:
		minRow, maxRow, minCol, maxCol, ok := Bounds(s, g)
		if !ok {
			return
		}
		for r := minRow; r <= maxRow && r < len(g.Rows); r++ {
			if r < 0 {
				continue
			}
			for c := minCol; c <= maxCol && c < len(g.Rows[r]); c++ {
				if c < 0 {
					continue
				}
				g.Rows[r][c] = ""
			}
		}
	case Column:
		for r := range g.Rows {
			if s.Col >= 0 && s.Col < len(g.Rows[r]) {
				g.Rows[r][s.Col] = ""
			}
		}
	case Row:
		if s.Row < 0 || s.Row >= len(g.Rows) {
			return
		}
		for c := range g.Rows[s.Row] {
			g.Rows[s.Row][c] = ""
		}
	}
}

// SelectAll returns a CellRange spanning the whole grid, or None when the
// grid has no rows or no columns.
func SelectAll(g *Grid) Selection {
	rows := g.RowCount()
	cols := g.ColCount()
	if rows == 0 || cols == 0 {
		return None{}
	}
	return CellRange{StartRow: 0, StartCol: 0, EndRow: rows - 1, EndCol: cols - 1}
}

// Anchor returns the paste anchor for sel: a CellRange's start corner as
// given (not normalized), (r, 0) for Row, (0, c) for Column, and the origin
// for None.
func Anchor(sel Selection) (row, col int) {
	switch s := sel.(type) {
	case CellRange:
		return s.StartRow, s.StartCol
	case Row:
		return s.Row, 0
	case Column:
		return 0, s.Col
	default:
		return 0, 0
	}
}
