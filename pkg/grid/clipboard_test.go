package grid

import (
	"reflect"
	"testing"
)

func TestExtractTextRange(t *testing.T) {
	g := FromData([][]string{{"a", "b", "x"}, {"c", "d", "y"}})
	got := ExtractText(g, CellRange{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1})
	if got != "a\tb\nc\td" {
		t.Fatalf("unexpected extract: %q", got)
	}
}

func TestExtractTextBeyondExtent(t *testing.T) {
	g := FromData([][]string{{"a"}})
	got := ExtractText(g, CellRange{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 2})
	if got != "a\t\t" {
		t.Fatalf("cells past the extent should be empty, got %q", got)
	}
}

func TestExtractTextRowsPastExtentOmitted(t *testing.T) {
	g := FromData([][]string{{"a"}})
	got := ExtractText(g, CellRange{StartRow: 0, StartCol: 0, EndRow: 2, EndCol: 0})
	if got != "a" {
		t.Fatalf("rows past the last row should be omitted, got %q", got)
	}
}

func TestExtractTextColumnAndRow(t *testing.T) {
	g := FromData([][]string{{"a", "b"}, {"c", "d"}})
	if got := ExtractText(g, Column{Col: 1}); got != "b\nd" {
		t.Fatalf("unexpected column extract: %q", got)
	}
	if got := ExtractText(g, Row{Row: 0}); got != "a\tb" {
		t.Fatalf("unexpected row extract: %q", got)
	}
	if got := ExtractText(g, None{}); got != "" {
		t.Fatalf("none should extract nothing, got %q", got)
	}
}

func TestPasteIntoEmptyGrid(t *testing.T) {
	g := &Grid{}
	PasteText(g, "x\ty\nz\tw", 0, 0)
	want := [][]string{
		{"x", "y", "", "", "", "", "", "", "", ""},
		{"z", "w", "", "", "", "", "", "", "", ""},
	}
	if !reflect.DeepEqual(g.Rows, want) {
		t.Fatalf("unexpected rows: %v", g.Rows)
	}
}

func TestPasteGrowsRowsAndColumns(t *testing.T) {
	g := FromData([][]string{{"a", "b"}, {"c", "d"}})
	PasteText(g, "1\t2\t3\n4\t5\t6\n7\t8\t9", 1, 1)
	if g.RowCount() != 4 || g.ColCount() != 4 {
		t.Fatalf("unexpected extents: %dx%d", g.RowCount(), g.ColCount())
	}
	if g.Cell(1, 1) != "1" || g.Cell(3, 3) != "9" {
		t.Fatalf("unexpected cells: %v", g.Rows)
	}
	// the growth must leave the grid rectangular
	for i, row := range g.Rows {
		if len(row) != 4 {
			t.Fatalf("row %d has length %d after paste", i, len(row))
		}
	}
	if g.Cell(0, 3) != "" {
		t.Fatalf("padding cell should be empty, got %q", g.Cell(0, 3))
	}
}

func TestPasteRoundTrip(t *testing.T) {
	g := FromData([][]string{{"a", "b", "c"}, {"d", "e", "f"}})
	sel := CellRange{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 2}
	text := ExtractText(g, sel)

	dst := New(5, 5)
	PasteText(dst, text, 2, 1)
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if dst.Cell(2+r, 1+c) != g.Cell(r, c) {
				t.Fatalf("round trip mismatch at (%d,%d): %q", r, c, dst.Cell(2+r, 1+c))
			}
		}
	}
}

func TestPasteTolerantOfLineEndings(t *testing.T) {
	g := New(3, 3)
	PasteText(g, "a\tb\r\nc\td\r\n", 0, 0)
	if g.Cell(0, 1) != "b" || g.Cell(1, 0) != "c" {
		t.Fatalf("CRLF input mishandled: %v", g.Rows)
	}
	if g.RowCount() != 3 {
		t.Fatalf("trailing newline should not add a row, got %d rows", g.RowCount())
	}
}

func TestPasteNegativeAnchorClamps(t *testing.T) {
	g := New(2, 2)
	PasteText(g, "x", -5, -5)
	if g.Cell(0, 0) != "x" {
		t.Fatalf("negative anchor should clamp to origin: %v", g.Rows)
	}
}

func TestPasteEmptyTextIsNoop(t *testing.T) {
	g := FromData([][]string{{"a"}})
	PasteText(g, "", 0, 0)
	if g.RowCount() != 1 || g.Cell(0, 0) != "a" {
		t.Fatalf("empty paste mutated grid: %v", g.Rows)
	}
}
