package grid

import "testing"

func TestBoundsNormalizesInvertedCorners(t *testing.T) {
	g := New(5, 5)
	sel := CellRange{StartRow: 2, StartCol: 2, EndRow: 0, EndCol: 0}
	minRow, maxRow, minCol, maxCol, ok := Bounds(sel, g)
	if !ok {
		t.Fatal("expected ok bounds")
	}
	if minRow != 0 || maxRow != 2 || minCol != 0 || maxCol != 2 {
		t.Fatalf("unexpected bounds: %d %d %d %d", minRow, maxRow, minCol, maxCol)
	}
	if !Contains(sel, 1, 1) {
		t.Fatal("inverted range should contain its interior")
	}
}

func TestContainsRowAndColumn(t *testing.T) {
	if !Contains(Column{Col: 2}, 99, 2) {
		t.Fatal("column selection should span every row")
	}
	if Contains(Column{Col: 2}, 0, 1) {
		t.Fatal("column selection leaked to another column")
	}
	if !Contains(Row{Row: 3}, 3, 99) {
		t.Fatal("row selection should span every column")
	}
	if Contains(None{}, 0, 0) {
		t.Fatal("none contains nothing")
	}
}

func TestIsSingleCell(t *testing.T) {
	if _, _, ok := IsSingleCell(CellRange{StartRow: 1, StartCol: 1, EndRow: 1, EndCol: 2}); ok {
		t.Fatal("multi-cell range reported as single")
	}
	r, c, ok := IsSingleCell(SingleCell(4, 7))
	if !ok || r != 4 || c != 7 {
		t.Fatalf("unexpected single cell: %d,%d ok=%v", r, c, ok)
	}
}

func TestClearCellsRange(t *testing.T) {
	g := FromData([][]string{{"a", "b"}, {"c", "d"}})
	ClearCells(g, CellRange{StartRow: 1, StartCol: 1, EndRow: 0, EndCol: 0})
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if g.Cell(r, c) != "" {
				t.Fatalf("cell (%d,%d) not cleared: %q", r, c, g.Cell(r, c))
			}
		}
	}
}

func TestClearCellsColumnAndRow(t *testing.T) {
	g := FromData([][]string{{"a", "b"}, {"c", "d"}})
	ClearCells(g, Column{Col: 0})
	if g.Cell(0, 0) != "" || g.Cell(1, 0) != "" || g.Cell(0, 1) != "b" {
		t.Fatalf("unexpected rows after column clear: %v", g.Rows)
	}
	ClearCells(g, Row{Row: 1})
	if g.Cell(1, 1) != "" || g.Cell(0, 1) != "b" {
		t.Fatalf("unexpected rows after row clear: %v", g.Rows)
	}
}

func TestClearCellsBeyondExtentIsSafe(t *testing.T) {
	g := FromData([][]string{{"a"}})
	ClearCells(g, CellRange{StartRow: 0, StartCol: 0, EndRow: 10, EndCol: 10})
	if g.RowCount() != 1 || len(g.Rows[0]) != 1 {
		t.Fatalf("clear grew the grid: %v", g.Rows)
	}
}

func TestSelectAll(t *testing.T) {
	g := FromData([][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}})
	sel, ok := SelectAll(g).(CellRange)
	if !ok || sel.EndRow != 2 || sel.EndCol != 1 {
		t.Fatalf("unexpected select-all: %#v", sel)
	}
	if _, isNone := SelectAll(&Grid{}).(None); !isNone {
		t.Fatal("select-all on empty grid should be None")
	}
}

func TestAnchor(t *testing.T) {
	r, c := Anchor(CellRange{StartRow: 3, StartCol: 2, EndRow: 1, EndCol: 1})
	if r != 3 || c != 2 {
		t.Fatalf("anchor should be the start corner as given, got %d,%d", r, c)
	}
	if r, c := Anchor(Row{Row: 5}); r != 5 || c != 0 {
		t.Fatalf("unexpected row anchor: %d,%d", r, c)
	}
	if r, c := Anchor(Column{Col: 4}); r != 0 || c != 4 {
		t.Fatalf("unexpected column anchor: %d,%d", r, c)
	}
}
