package editor

import "testing"

func TestUndoRedoRoundTrip(t *testing.T) {
	s := sessionWith([][]string{{"v1"}})
	s.SaveUndoState()
	s.Grid.SetCell(0, 0, "v2")

	if !s.Undo() {
		t.Fatal("undo should succeed")
	}
	if s.Grid.Cell(0, 0) != "v1" {
		t.Fatalf("undo restored %q", s.Grid.Cell(0, 0))
	}
	if !s.Redo() {
		t.Fatal("redo should succeed")
	}
	if s.Grid.Cell(0, 0) != "v2" {
		t.Fatalf("redo restored %q", s.Grid.Cell(0, 0))
	}
}

func TestUndoOnEmptyStack(t *testing.T) {
	s := sessionWith([][]string{{"a"}})
	if s.Undo() {
		t.Fatal("undo with no history should report false")
	}
	if s.Redo() {
		t.Fatal("redo with no history should report false")
	}
}

func TestNewSnapshotInvalidatesRedo(t *testing.T) {
	s := sessionWith([][]string{{"v1"}})
	s.SaveUndoState()
	s.Grid.SetCell(0, 0, "v2")
	s.Undo()
	if !s.CanRedo() {
		t.Fatal("undo should enable redo")
	}
	s.SaveUndoState()
	if s.CanRedo() {
		t.Fatal("a new snapshot must clear the redo stack")
	}
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	s := sessionWith([][]string{{"start"}})
	for i := 0; i < maxHistory+1; i++ {
		s.SaveUndoState()
		s.Grid.SetCell(0, 0, "step")
	}
	if s.UndoDepth() != maxHistory {
		t.Fatalf("undo depth %d, want %d", s.UndoDepth(), maxHistory)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := sessionWith([][]string{{"v1"}})
	s.SaveUndoState()
	s.Grid.SetCell(0, 0, "v2")
	s.Undo()
	if s.Grid.Cell(0, 0) != "v1" {
		t.Fatalf("snapshot shared storage with the live grid: %q", s.Grid.Cell(0, 0))
	}
}

func TestUndoClearsSortIndicator(t *testing.T) {
	s := sessionWith([][]string{{"2"}, {"1"}})
	s.SortByColumn(0, true)
	if _, _, ok := s.SortIndicator(); !ok {
		t.Fatal("sort should set the indicator")
	}
	s.Undo()
	if _, _, ok := s.SortIndicator(); ok {
		t.Fatal("undo should clear the indicator")
	}
}

func TestUndoDiscardsInFlightEdit(t *testing.T) {
	s := sessionWith([][]string{{"a"}})
	s.SaveUndoState()
	s.StartEdit(0, 0)
	s.SetEditBuffer("typing")
	s.Undo()
	if _, _, ok := s.Editing(); ok {
		t.Fatal("undo should cancel the edit")
	}
	if s.Grid.Cell(0, 0) != "a" {
		t.Fatalf("discarded buffer leaked into the grid: %q", s.Grid.Cell(0, 0))
	}
}
