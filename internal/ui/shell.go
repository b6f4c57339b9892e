package ui

import (
	"github.com/fairhill1/csv-app/internal/render"
)

// Layout is the pixel geometry of the spreadsheet chrome for one frame:
// menu and toolbar strips on top, column header and row gutter framing the
// sheet viewport, status bar at the bottom.
type Layout struct {
	MenuH    int
	ToolbarH int
	StatusH  int

	HeaderY int
	HeaderH int
	GutterW int

	SheetX int
	SheetY int
	SheetW int
	SheetH int

	RowH      int
	StatusBar int
}

func ComputeLayout(w, h int, theme Theme, scale float32) Layout {
	if scale <= 0 {
		scale = 1
	}

	dp := func(v int) int { return int(float32(v) * scale) }

	menuH := dp(theme.MenuHeightDp)
	toolbarH := dp(theme.ToolbarHeightDp)
	statusH := dp(theme.StatusHeightDp)
	headerH := dp(theme.ColHeaderHeightDp)
	gutterW := dp(theme.RowGutterWidthDp)

	headerY := menuH + toolbarH
	sheetY := headerY + headerH
	sheetH := h - sheetY - statusH
	if sheetH < 0 {
		sheetH = 0
	}
	sheetW := w - gutterW
	if sheetW < 0 {
		sheetW = 0
	}

	return Layout{
		MenuH:     menuH,
		ToolbarH:  toolbarH,
		StatusH:   statusH,
		HeaderY:   headerY,
		HeaderH:   headerH,
		GutterW:   gutterW,
		SheetX:    gutterW,
		SheetY:    sheetY,
		SheetW:    sheetW,
		SheetH:    sheetH,
		RowH:      dp(theme.RowHeightDp),
		StatusBar: h - statusH,
	}
}

// DrawShell paints the static chrome around the sheet and returns the frame
// geometry. Cell content, headers and overlays are painted on top by the
// app layer.
func DrawShell(fb *render.FrameBuffer, theme Theme, scale float32) Layout {
	layout := ComputeLayout(fb.W, fb.H, theme, scale)

	fb.Clear(theme.AppBackground)

	// Menu + toolbar
	fb.FillRect(0, 0, fb.W, layout.MenuH, theme.TopBar)
	fb.FillRect(0, layout.MenuH, fb.W, layout.ToolbarH, theme.Toolbar)
	fb.StrokeRect(0, 0, fb.W, layout.MenuH+layout.ToolbarH, 1, theme.Border)

	// Column header strip and row gutter
	fb.FillRect(0, layout.HeaderY, fb.W, layout.HeaderH, theme.HeaderBg)
	fb.HLine(0, layout.SheetY-1, fb.W, theme.Border)
	fb.FillRect(0, layout.SheetY, layout.GutterW, layout.SheetH, theme.HeaderBg)
	fb.VLine(layout.GutterW-1, layout.HeaderY, layout.HeaderH+layout.SheetH, theme.Border)

	// Sheet viewport
	fb.FillRect(layout.SheetX, layout.SheetY, layout.SheetW, layout.SheetH, theme.CellBg)

	// Status bar
	fb.FillRect(0, layout.StatusBar, fb.W, layout.StatusH, theme.StatusBar)
	fb.StrokeRect(0, layout.StatusBar, fb.W, layout.StatusH, 1, theme.Border)

	return layout
}
