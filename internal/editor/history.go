package editor

// maxHistory bounds the undo stack; the oldest snapshot is evicted first.
const maxHistory = 50

// SaveUndoState pushes a deep copy of the current grid onto the undo stack
// and invalidates the redo stack. Every call marks the document dirty. Call
// it before a mutating operation, not after.
func (s *Session) SaveUndoState() {
	s.undoStack = append(s.undoStack, s.Grid.Clone())
	if len(s.undoStack) > maxHistory {
		s.undoStack = s.undoStack[1:]
	}
	s.redoStack = nil
	s.dirty = true
}

// CanUndo reports whether an undo snapshot is available.
func (s *Session) CanUndo() bool { return len(s.undoStack) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (s *Session) CanRedo() bool { return len(s.redoStack) > 0 }

// Undo swaps the current grid with the newest undo snapshot, pushing the
// current grid onto the redo stack. Any in-flight edit is discarded and the
// sort indicator is cleared, since the restored data may no longer be in the
// displayed order. Returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	if len(s.undoStack) == 0 {
		return false
	}
	s.CancelEdit()
	top := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.redoStack = append(s.redoStack, s.Grid)
	s.Grid = top
	s.clearSortIndicator()
	s.dirty = true
	return true
}

// Redo reverses the most recent Undo. Returns false when there is nothing to
// redo.
func (s *Session) Redo() bool {
	if len(s.redoStack) == 0 {
		return false
	}
	s.CancelEdit()
	top := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	s.undoStack = append(s.undoStack, s.Grid)
	s.Grid = top
	s.clearSortIndicator()
	s.dirty = true
	return true
}

// UndoDepth reports the number of stored undo snapshots.
func (s *Session) UndoDepth() int { return len(s.undoStack) }
