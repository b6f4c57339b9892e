package grid

import "strings"

// ExtractText serializes sel to spreadsheet clipboard text: cells joined by
// tab, rows by newline. Coordinates inside the bound but outside the grid's
// extent are emitted as empty cells so the text stays rectangular for a later
// paste. Cell values are copied verbatim; embedded tabs or newlines are not
// escaped (a re-paste may split such a cell — accepted clipboard-format
// limitation). None yields the empty string, which callers must treat as
// "nothing to copy".
func ExtractText(g *Grid, sel Selection) string {
	switch s := sel.(type) {
	case CellRange:
		minRow, maxRow, minCol, maxCol, ok := Bounds(s, g)
		if !ok {
			return ""
		}
		var rows []string
		for r := minRow; r <= maxRow; r++ {
			if r < 0 || r >= len(g.Rows) {
				continue
			}
			cells := make([]string, 0, maxCol-minCol+1)
			for c := minCol; c <= maxCol; c++ {
				cells = append(cells, g.Cell(r, c))
			}
			rows = append(rows, strings.Join(cells, "\t"))
		}
		return strings.Join(rows, "\n")
	case Column:
		cells := make([]string, 0, len(g.Rows))
		for r := range g.Rows {
			cells = append(cells, g.Cell(r, s.Col))
		}
		return strings.Join(cells, "\n")
	case Row:
		if s.Row < 0 || s.Row >= len(g.Rows) {
			return ""
		}
		return strings.Join(g.Rows[s.Row], "\t")
	default:
		return ""
	}
}

// PasteText writes clipboard text into the grid starting at the anchor cell.
// Lines are split on '\n' (a trailing '\r' per line is tolerated, as is one
// final line terminator); cells within a line split on '\t'. Rows are
// appended on demand, sized to the pre-paste maximum width, and each target
// row is widened as needed. The transient raggedness this creates is closed
// by Normalize before returning.
func PasteText(g *Grid, text string, anchorRow, anchorCol int) {
	if text == "" {
		return
	}
	if anchorRow < 0 {
		anchorRow = 0
	}
	if anchorCol < 0 {
		anchorCol = 0
	}

	lines := splitLines(text)
	baseCols := g.ColCount()
	if baseCols == 0 {
		baseCols = DefaultCols
	}

	for i, line := range lines {
		row := anchorRow + i
		for row >= len(g.Rows) {
			g.Rows = append(g.Rows, make([]string, baseCols))
		}
		cells := strings.Split(line, "\t")
		for j, cell := range cells {
			col := anchorCol + j
			for col >= len(g.Rows[row]) {
				g.Rows[row] = append(g.Rows[row], "")
			}
			g.Rows[row][col] = cell
		}
	}
	g.Normalize()
}

// splitLines splits on '\n', dropping one trailing line terminator and any
// '\r' left by CRLF input.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
