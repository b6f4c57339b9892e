package grid

import (
	"reflect"
	"testing"
)

func TestNewDefaultExtents(t *testing.T) {
	g := New(DefaultRows, DefaultCols)
	if g.RowCount() != 20 || g.ColCount() != 10 {
		t.Fatalf("unexpected extents: %dx%d", g.RowCount(), g.ColCount())
	}
	if g.Cell(19, 9) != "" {
		t.Fatalf("expected blank cell, got %q", g.Cell(19, 9))
	}
}

func TestNormalizePadsToLongestRow(t *testing.T) {
	g := FromData([][]string{{"a"}, {"b", "c", "d"}, {}})
	for i, row := range g.Rows {
		if len(row) != 3 {
			t.Fatalf("row %d has length %d, want 3", i, len(row))
		}
	}
	if g.Cell(0, 2) != "" || g.Cell(1, 2) != "d" {
		t.Fatalf("unexpected cells after normalize: %v", g.Rows)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	g := FromData([][]string{{"a", "b"}, {"c"}})
	once := g.Data()
	g.Normalize()
	if !reflect.DeepEqual(once, g.Rows) {
		t.Fatalf("second normalize changed the grid: %v vs %v", once, g.Rows)
	}
}

func TestAddRowMatchesFirstRowWidth(t *testing.T) {
	g := FromData([][]string{{"a", "b", "c"}})
	g.AddRow()
	if g.RowCount() != 2 || len(g.Rows[1]) != 3 {
		t.Fatalf("unexpected shape after AddRow: %v", g.Rows)
	}

	empty := &Grid{}
	empty.AddRow()
	if len(empty.Rows) != 1 || len(empty.Rows[0]) != DefaultCols {
		t.Fatalf("empty-grid AddRow should use default width, got %d", len(empty.Rows[0]))
	}
}

func TestAddColumn(t *testing.T) {
	g := FromData([][]string{{"a"}, {"b"}})
	g.AddColumn()
	for i, row := range g.Rows {
		if len(row) != 2 {
			t.Fatalf("row %d not widened: %v", i, row)
		}
	}

	empty := &Grid{}
	empty.AddColumn()
	if len(empty.Rows) != 1 || len(empty.Rows[0]) != 1 {
		t.Fatalf("empty-grid AddColumn should create one cell, got %v", empty.Rows)
	}
}

func TestInsertRowAtShiftsDown(t *testing.T) {
	g := FromData([][]string{{"a", "b"}, {"c", "d"}})
	g.InsertRowAt(1)
	if g.RowCount() != 3 {
		t.Fatalf("expected 3 rows, got %d", g.RowCount())
	}
	if g.Cell(1, 0) != "" || g.Cell(2, 0) != "c" {
		t.Fatalf("rows not shifted: %v", g.Rows)
	}
	if len(g.Rows[1]) != 2 {
		t.Fatalf("inserted row has width %d, want 2", len(g.Rows[1]))
	}
}

func TestInsertColumnAtShiftsRight(t *testing.T) {
	g := FromData([][]string{{"a", "b"}, {"c", "d"}})
	g.InsertColumnAt(1)
	want := [][]string{{"a", "", "b"}, {"c", "", "d"}}
	if !reflect.DeepEqual(g.Rows, want) {
		t.Fatalf("unexpected rows: %v", g.Rows)
	}
}

func TestDeleteRowOutOfRangeIsNoop(t *testing.T) {
	g := FromData([][]string{{"a"}})
	g.DeleteRow(5)
	g.DeleteRow(-1)
	if g.RowCount() != 1 {
		t.Fatalf("out-of-range delete mutated grid: %v", g.Rows)
	}
	g.DeleteRow(0)
	if !g.IsEmpty() {
		t.Fatalf("expected empty grid, got %v", g.Rows)
	}
}

func TestDeleteColumnToleratesShortRows(t *testing.T) {
	g := &Grid{Rows: [][]string{{"a", "b", "c"}, {"d"}}}
	g.DeleteColumn(1)
	want := [][]string{{"a", "c"}, {"d"}}
	if !reflect.DeepEqual(g.Rows, want) {
		t.Fatalf("unexpected rows: %v", g.Rows)
	}
}

func TestSetCellOutOfRangeIsNoop(t *testing.T) {
	g := FromData([][]string{{"a"}})
	g.SetCell(3, 3, "x")
	g.SetCell(-1, 0, "x")
	if g.RowCount() != 1 || len(g.Rows[0]) != 1 || g.Cell(0, 0) != "a" {
		t.Fatalf("out-of-range set mutated grid: %v", g.Rows)
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := FromData([][]string{{"a", "b"}})
	c := g.Clone()
	c.Rows[0][0] = "changed"
	if g.Cell(0, 0) != "a" {
		t.Fatalf("clone shares storage with original")
	}
}
