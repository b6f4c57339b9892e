// Package editor holds the spreadsheet session: the grid under edit, the
// current selection, the cell edit lifecycle, undo/redo history, column
// widths, search and sort. It is pure state; the app layer translates input
// events into calls here.
package editor

import (
	"github.com/fairhill1/csv-app/pkg/grid"
)

// Session is the complete editing state for one open document.
type Session struct {
	Grid      *grid.Grid
	Selection grid.Selection

	editing    bool
	editRow    int
	editCol    int
	editBuffer string

	undoStack []*grid.Grid
	redoStack []*grid.Grid

	colWidths map[int]float64

	searchQuery   string
	searchResults []CellRef
	searchIndex   int

	sorted  bool
	sortCol int
	sortAsc bool

	frozenHeader bool

	dirty    bool
	filePath string
}

// NewSession returns a session over a fresh default-sized blank grid.
func NewSession() *Session {
	return &Session{
		Grid:        grid.New(grid.DefaultRows, grid.DefaultCols),
		Selection:   grid.None{},
		colWidths:   map[int]float64{},
		searchIndex: -1,
	}
}

// NewDocument discards the current document and starts over with a blank
// default grid. History, widths, search state and the file association are
// all reset.
func (s *Session) NewDocument() {
	s.Grid = grid.New(grid.DefaultRows, grid.DefaultCols)
	s.Selection = grid.None{}
	s.editing = false
	s.editBuffer = ""
	s.undoStack = nil
	s.redoStack = nil
	s.colWidths = map[int]float64{}
	s.clearSearch()
	s.clearSortIndicator()
	s.dirty = false
	s.filePath = ""
}

// LoadData replaces the document wholesale with loaded cell data. The slice
// is taken over and normalized. Callers must only reach this point with a
// successful load; a failed load never disturbs the session.
func (s *Session) LoadData(data [][]string, path string) {
	s.Grid = grid.FromData(data)
	s.Selection = grid.None{}
	s.editing = false
	s.editBuffer = ""
	s.undoStack = nil
	s.redoStack = nil
	s.colWidths = map[int]float64{}
	s.clearSearch()
	s.clearSortIndicator()
	s.dirty = false
	s.filePath = path
}

// Data returns a deep copy of the cell matrix for saving.
func (s *Session) Data() [][]string {
	return s.Grid.Data()
}

// MarkSaved records a successful save to path and clears the dirty flag.
func (s *Session) MarkSaved(path string) {
	s.filePath = path
	s.dirty = false
}

// Dirty reports whether the document has unsaved changes.
func (s *Session) Dirty() bool { return s.dirty }

// FilePath returns the path the document was loaded from or last saved to,
// or "" for an unsaved document.
func (s *Session) FilePath() string { return s.filePath }

// Editing reports the cell currently being edited, if any.
func (s *Session) Editing() (row, col int, ok bool) {
	if !s.editing {
		return 0, 0, false
	}
	return s.editRow, s.editCol, true
}

// EditBuffer returns the in-flight edit text.
func (s *Session) EditBuffer() string { return s.editBuffer }

// SetEditBuffer replaces the in-flight edit text. No-op when not editing.
func (s *Session) SetEditBuffer(text string) {
	if s.editing {
		s.editBuffer = text
	}
}

// StartEdit begins editing the cell at (row, col), seeding the buffer from
// the cell's current value. An edit already in flight on another cell is
// committed first. Editing and selection are mutually exclusive, so the
// selection is cleared; selection-driven ops see nothing while the edit is
// open.
func (s *Session) StartEdit(row, col int) {
	if row < 0 || row >= s.Grid.RowCount() || col < 0 || col >= s.Grid.ColCount() {
		return
	}
	if s.editing && (s.editRow != row || s.editCol != col) {
		s.CommitEdit()
	}
	s.editing = true
	s.editRow = row
	s.editCol = col
	s.editBuffer = s.Grid.Cell(row, col)
	s.Selection = grid.None{}
}

// StartEditTyped begins editing like StartEdit but seeds the buffer from
// typed text instead of the cell's value (type-to-replace).
func (s *Session) StartEditTyped(row, col int, text string) {
	s.StartEdit(row, col)
	if s.editing {
		s.editBuffer = text
	}
}

// CommitEdit writes the buffer into the edited cell verbatim and ends the
// edit. The write marks the document dirty but takes no history snapshot and
// leaves the sort indicator alone.
func (s *Session) CommitEdit() {
	if !s.editing {
		return
	}
	s.Grid.SetCell(s.editRow, s.editCol, s.editBuffer)
	s.dirty = true
	s.editing = false
	s.editBuffer = ""
}

// CancelEdit discards the in-flight edit without touching the cell.
func (s *Session) CancelEdit() {
	s.editing = false
	s.editBuffer = ""
}

// ConfirmEdit commits the edit and moves the selection down one row, staying
// within the grid.
func (s *Session) ConfirmEdit() {
	if !s.editing {
		return
	}
	row, col := s.editRow, s.editCol
	s.CommitEdit()
	if row+1 < s.Grid.RowCount() {
		row++
	}
	s.Selection = grid.SingleCell(row, col)
}

// MoveSelection moves the selection cursor by (dRow, dCol), clamped to the
// grid. With extend set and a range selected, the anchor corner stays put and
// the far corner moves. Navigation is disabled while a cell edit is in
// flight. An empty selection snaps to the origin.
func (s *Session) MoveSelection(dRow, dCol int, extend bool) {
	if s.editing || s.Grid.IsEmpty() {
		return
	}
	switch sel := s.Selection.(type) {
	case grid.None:
		s.Selection = grid.SingleCell(0, 0)
	case grid.CellRange:
		row := s.clampRow(sel.EndRow + dRow)
		col := s.clampCol(sel.EndCol + dCol)
		if extend {
			sel.EndRow = row
			sel.EndCol = col
			s.Selection = sel
		} else {
			s.Selection = grid.SingleCell(row, col)
		}
	case grid.Row:
		s.Selection = grid.SingleCell(s.clampRow(sel.Row+dRow), s.clampCol(dCol))
	case grid.Column:
		s.Selection = grid.SingleCell(s.clampRow(dRow), s.clampCol(sel.Col+dCol))
	}
}

// SelectCell collapses the selection to the single cell at (row, col),
// committing any in-flight edit on another cell.
func (s *Session) SelectCell(row, col int) {
	if s.editing && (s.editRow != row || s.editCol != col) {
		s.CommitEdit()
	}
	s.Selection = grid.SingleCell(s.clampRow(row), s.clampCol(col))
}

// ExtendSelectionTo grows the current range so its far corner sits at
// (row, col), anchoring at the range start. Used for shift-click and drag.
func (s *Session) ExtendSelectionTo(row, col int) {
	row = s.clampRow(row)
	col = s.clampCol(col)
	if sel, ok := s.Selection.(grid.CellRange); ok {
		sel.EndRow = row
		sel.EndCol = col
		s.Selection = sel
		return
	}
	s.Selection = grid.SingleCell(row, col)
}

// SelectRow selects the whole row, committing any in-flight edit.
func (s *Session) SelectRow(row int) {
	if s.editing {
		s.CommitEdit()
	}
	if row < 0 || row >= s.Grid.RowCount() {
		return
	}
	s.Selection = grid.Row{Row: row}
}

// SelectColumn selects the whole column, committing any in-flight edit.
func (s *Session) SelectColumn(col int) {
	if s.editing {
		s.CommitEdit()
	}
	if col < 0 || col >= s.Grid.ColCount() {
		return
	}
	s.Selection = grid.Column{Col: col}
}

// SelectAll selects the entire grid.
func (s *Session) SelectAll() {
	if s.editing {
		s.CommitEdit()
	}
	s.Selection = grid.SelectAll(s.Grid)
}

// ClearSelection drops the selection.
func (s *Session) ClearSelection() {
	s.Selection = grid.None{}
}

// CopyText serializes the selection to clipboard text, or "" when nothing is
// selected.
func (s *Session) CopyText() string {
	return grid.ExtractText(s.Grid, s.Selection)
}

// CutText copies the selection and clears the selected cells behind a
// history snapshot. Returns the copied text, "" when nothing was selected.
func (s *Session) CutText() string {
	if _, isNone := s.Selection.(grid.None); isNone {
		return ""
	}
	text := grid.ExtractText(s.Grid, s.Selection)
	s.SaveUndoState()
	grid.ClearCells(s.Grid, s.Selection)
	return text
}

// Paste writes clipboard text at the selection's anchor behind a history
// snapshot. Empty text is a no-op, as is pasting while a cell edit is in
// flight.
func (s *Session) Paste(text string) {
	if text == "" || s.editing {
		return
	}
	s.SaveUndoState()
	row, col := grid.Anchor(s.Selection)
	grid.PasteText(s.Grid, text, row, col)
}

// ClearSelectedCells empties every selected cell behind a history snapshot.
// No selection means no-op.
func (s *Session) ClearSelectedCells() {
	if _, isNone := s.Selection.(grid.None); isNone {
		return
	}
	s.SaveUndoState()
	grid.ClearCells(s.Grid, s.Selection)
}

// FrozenHeader reports whether row 0 is treated as a pinned header.
func (s *Session) FrozenHeader() bool { return s.frozenHeader }

// ToggleFrozenHeader flips the pinned-header flag. Display and sort behavior
// only; not a document mutation.
func (s *Session) ToggleFrozenHeader() {
	s.frozenHeader = !s.frozenHeader
}

func (s *Session) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if max := s.Grid.RowCount() - 1; row > max {
		return max
	}
	return row
}

func (s *Session) clampCol(col int) int {
	if col < 0 {
		return 0
	}
	if max := s.Grid.ColCount() - 1; col > max {
		return max
	}
	return col
}
