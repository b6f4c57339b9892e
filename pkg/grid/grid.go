// Package grid holds the tabular document model: a rectangular matrix of
// text cells, the selection shapes over it, and the tab/newline clipboard
// codec. All coordinates are zero-based (row, col).
package grid

const (
	// DefaultRows and DefaultCols size a fresh, unloaded document.
	DefaultRows = 20
	DefaultCols = 10
)

// Grid is the cell matrix. Invariant: after any exported operation returns,
// every row has the same length. Paste is the only operation allowed to leave
// rows ragged mid-flight, and it restores the invariant via Normalize before
// returning.
type Grid struct {
	Rows [][]string
}

// New returns a grid of rows×cols empty cells. Non-positive extents yield an
// empty grid.
func New(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		return &Grid{}
	}
	g := &Grid{Rows: make([][]string, rows)}
	for i := range g.Rows {
		g.Rows[i] = make([]string, cols)
	}
	return g
}

// FromData wraps a loaded 2D string array and normalizes it to rectangular
// shape. The slice is taken over, not copied.
func FromData(data [][]string) *Grid {
	g := &Grid{Rows: data}
	g.Normalize()
	return g
}

// RowCount reports the number of rows.
func (g *Grid) RowCount() int { return len(g.Rows) }

// ColCount reports the maximum row length. Once Normalize has run this is
// every row's length.
func (g *Grid) ColCount() int {
	maxCols := 0
	for _, row := range g.Rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	return maxCols
}

// Cell returns the value at (row, col), or the empty string when the
// coordinate is outside the current extent.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.Rows) {
		return ""
	}
	if col < 0 || col >= len(g.Rows[row]) {
		return ""
	}
	return g.Rows[row][col]
}

// SetCell overwrites the value at (row, col). Out-of-range coordinates are
// ignored; callers that need growth go through PasteText.
func (g *Grid) SetCell(row, col int, value string) {
	if row < 0 || row >= len(g.Rows) {
		return
	}
	if col < 0 || col >= len(g.Rows[row]) {
		return
	}
	g.Rows[row][col] = value
}

// ClearCell empties the value at (row, col) if it exists.
func (g *Grid) ClearCell(row, col int) {
	g.SetCell(row, col, "")
}

// Normalize pads every row with empty cells up to the longest row's length.
// It never shrinks a row and is idempotent.
func (g *Grid) Normalize() {
	maxCols := g.ColCount()
	for i, row := range g.Rows {
		for len(row) < maxCols {
			row = append(row, "")
		}
		g.Rows[i] = row
	}
}

// AddRow appends a blank row sized to the first row's length, or DefaultCols
// when the grid is empty.
func (g *Grid) AddRow() {
	cols := DefaultCols
	if len(g.Rows) > 0 {
		cols = len(g.Rows[0])
	}
	g.Rows = append(g.Rows, make([]string, cols))
}

// AddColumn appends one blank cell to every row, or creates a single-cell row
// when the grid is empty.
func (g *Grid) AddColumn() {
	if len(g.Rows) == 0 {
		g.Rows = append(g.Rows, make([]string, 1))
		return
	}
	for i := range g.Rows {
		g.Rows[i] = append(g.Rows[i], "")
	}
}

// InsertRowAt inserts a blank row at index row, shifting subsequent rows
// down. row is clamped to [0, RowCount]; inserting at RowCount appends.
func (g *Grid) InsertRowAt(row int) {
	if row < 0 {
		row = 0
	}
	if row > len(g.Rows) {
		row = len(g.Rows)
	}
	cols := DefaultCols
	if len(g.Rows) > 0 {
		cols = len(g.Rows[0])
	}
	g.Rows = append(g.Rows, nil)
	copy(g.Rows[row+1:], g.Rows[row:])
	g.Rows[row] = make([]string, cols)
}

// InsertColumnAt inserts a blank cell at index col in every row, shifting
// subsequent cells right. col is clamped per row. An empty grid gains a
// single-cell row.
func (g *Grid) InsertColumnAt(col int) {
	if col < 0 {
		col = 0
	}
	if len(g.Rows) == 0 {
		g.Rows = append(g.Rows, make([]string, 1))
		return
	}
	for i, row := range g.Rows {
		at := col
		if at > len(row) {
			at = len(row)
		}
		row = append(row, "")
		copy(row[at+1:], row[at:])
		row[at] = ""
		g.Rows[i] = row
	}
}

// DeleteRow removes the row at index row. Out-of-range indices are a no-op.
func (g *Grid) DeleteRow(row int) {
	if row < 0 || row >= len(g.Rows) {
		return
	}
	g.Rows = append(g.Rows[:row], g.Rows[row+1:]...)
}

// DeleteColumn removes the cell at index col from every row that has one.
// Rows already shorter than col are left untouched.
func (g *Grid) DeleteColumn(col int) {
	if col < 0 {
		return
	}
	for i, row := range g.Rows {
		if col >= len(row) {
			continue
		}
		g.Rows[i] = append(row[:col], row[col+1:]...)
	}
}

// Clone returns a deep copy of the grid, used as an undo/redo snapshot.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: make([][]string, len(g.Rows))}
	for i, row := range g.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// Data returns a deep copy of the cell matrix for the save boundary.
func (g *Grid) Data() [][]string {
	return g.Clone().Rows
}

// IsEmpty reports whether the grid has no rows.
func (g *Grid) IsEmpty() bool { return len(g.Rows) == 0 }
