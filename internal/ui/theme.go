package ui

import "image/color"

type Theme struct {
	AppBackground color.RGBA
	TopBar        color.RGBA
	Toolbar       color.RGBA
	CellBg        color.RGBA
	HeaderBg      color.RGBA
	FrozenBg      color.RGBA
	GridLine      color.RGBA
	Border        color.RGBA
	SelectionFill color.RGBA
	SearchFill    color.RGBA
	EditFill      color.RGBA
	StatusBar     color.RGBA
	Accent        color.RGBA

	MenuHeightDp      int
	ToolbarHeightDp   int
	StatusHeightDp    int
	ColHeaderHeightDp int
	RowGutterWidthDp  int
	RowHeightDp       int
}

func DefaultTheme() Theme {
	return Theme{
		AppBackground: color.RGBA{0xF3, 0xF5, 0xF8, 0xFF},
		TopBar:        color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		Toolbar:       color.RGBA{0xF7, 0xF9, 0xFC, 0xFF},
		CellBg:        color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		HeaderBg:      color.RGBA{0xE8, 0xEC, 0xF3, 0xFF},
		FrozenBg:      color.RGBA{0xDD, 0xE6, 0xF2, 0xFF},
		GridLine:      color.RGBA{0xD4, 0xDA, 0xE3, 0xFF},
		Border:        color.RGBA{0xB2, 0xBF, 0xD0, 0xFF},
		SelectionFill: color.RGBA{0xC9, 0xDC, 0xF5, 0xFF},
		SearchFill:    color.RGBA{0xF5, 0xE8, 0xB8, 0xFF},
		EditFill:      color.RGBA{0xFF, 0xFD, 0xE7, 0xFF},
		StatusBar:     color.RGBA{0xEA, 0xEF, 0xF6, 0xFF},
		Accent:        color.RGBA{0x2B, 0x57, 0x9A, 0xFF},

		MenuHeightDp:      34,
		ToolbarHeightDp:   42,
		StatusHeightDp:    28,
		ColHeaderHeightDp: 26,
		RowGutterWidthDp:  48,
		RowHeightDp:       26,
	}
}
