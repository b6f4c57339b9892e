package app

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"unicode/utf8"

	"github.com/fairhill1/csv-app/internal/clipio"
	"github.com/fairhill1/csv-app/internal/csvio"
	"github.com/fairhill1/csv-app/internal/editor"
	"github.com/fairhill1/csv-app/internal/platform"
	"github.com/fairhill1/csv-app/internal/render"
	"github.com/fairhill1/csv-app/internal/ui"
	"github.com/fairhill1/csv-app/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type rect struct {
	x int
	y int
	w int
	h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && y >= r.y && x < r.x+r.w && y < r.y+r.h
}

type actionButton struct {
	id     string
	label  string
	r      rect
	active bool
}

type textLabel struct {
	text string
	x    int
	y    int
	clr  color.RGBA
	bold bool
}

type fontKey struct {
	size  int
	bold  bool
	scale int
}

type fontBank struct {
	regular *opentype.Font
	bold    *opentype.Font
	cache   map[fontKey]font.Face
}

func newFontBank() fontBank {
	bank := fontBank{cache: map[fontKey]font.Face{}}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return bank
	}
	bol, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return bank
	}
	bank.regular = reg
	bank.bold = bol
	return bank
}

// resize handles this close to a column edge grab the edge, not the cell.
const resizeGrabPx = 5

type App struct {
	theme   ui.Theme
	session *editor.Session

	frameBuffer *render.FrameBuffer
	canvas      *ebiten.Image

	fonts fontBank

	uiScales   []float32
	uiScaleIdx int
	status     string
	frameTick  uint64

	showHelp  bool
	helpRect  rect
	helpClose rect

	findActive bool
	findBuffer string
	findRect   rect

	topActions     []actionButton
	toolbarActions []actionButton
	cellLabels     []textLabel

	layout    ui.Layout
	sheetRect rect

	scrollX float64
	scrollY float64
	maxX    float64
	maxY    float64

	dragSelecting bool
	resizingCol   int
	resizeStartX  int
	resizeStartW  float64

	lastClickTick uint64
	lastClickRow  int
	lastClickCol  int

	inbox   platform.Inbox
	loading bool

	screenW int
	screenH int
}

func New() *App {
	return &App{
		theme:          ui.DefaultTheme(),
		session:        editor.NewSession(),
		fonts:          newFontBank(),
		uiScales:       []float32{1.0, 1.25, 1.5, 2.0},
		status:         "New spreadsheet",
		resizingCol:    -1,
		lastClickRow:   -1,
		lastClickCol:   -1,
		topActions:     make([]actionButton, 0, 12),
		toolbarActions: make([]actionButton, 0, 12),
		cellLabels:     make([]textLabel, 0, 512),
	}
}

func (a *App) Run() error {
	ebiten.SetWindowTitle("CSV Editor")
	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(900, 560, -1, -1)
	ebiten.MaximizeWindow()
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

func (a *App) Update() error {
	a.frameTick++
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	winW, winH := a.currentViewportSize()
	if a.showHelp {
		a.layoutHelpDialogBounds(winW, winH)
	}

	if res, ok := a.inbox.Take(); ok {
		a.loading = false
		if res.Err != nil {
			a.status = "Open failed: " + res.Err.Error()
		} else {
			a.session.LoadData(res.Rows, res.Path)
			a.scrollX, a.scrollY = 0, 0
			a.status = "Opened " + filepath.Base(res.Path)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		switch {
		case a.showHelp:
			a.showHelp = false
		case a.findActive:
			a.findActive = false
		default:
			if _, _, editing := a.session.Editing(); editing {
				a.session.CancelEdit()
			} else {
				a.session.ClearSelection()
			}
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.showHelp = !a.showHelp
	}
	if a.showHelp {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if !a.helpRect.contains(x, y) || a.helpClose.contains(x, y) {
				a.showHelp = false
			}
		}
		return nil
	}

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.findActive = !a.findActive
		if a.findActive {
			a.findBuffer = a.session.SearchQuery()
		}
		return nil
	}
	if a.findActive && a.handleFindInput(shift) {
		return nil
	}

	wheelX, wheelY := ebiten.Wheel()
	if shift && wheelY != 0 {
		a.scrollX -= wheelY * 48
	} else if wheelY != 0 {
		a.scrollY -= wheelY * float64(a.rowHeight())
	}
	if wheelX != 0 {
		a.scrollX -= wheelX * 48
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		a.scrollY += float64(a.sheetRect.h) * 0.8
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		a.scrollY -= float64(a.sheetRect.h) * 0.8
	}
	a.clampScroll()

	a.handleMouse(shift)

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		if a.session.Undo() {
			a.status = "Undo"
		}
		return nil
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyY) {
		if a.session.Redo() {
			a.status = "Redo"
		}
		return nil
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.invokeAction("new")
		return nil
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO) {
		a.invokeAction("open")
		return nil
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if shift {
			a.invokeAction("save_as")
		} else {
			a.invokeAction("save")
		}
		return nil
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyA) {
		a.session.SelectAll()
	}
	// Clipboard shortcuts act on the selection, never on an open edit buffer.
	_, _, editing := a.session.Editing()
	if ctrl && !editing && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if t := a.session.CopyText(); t != "" {
			if err := clipio.Write(t); err != nil {
				a.status = "Copy failed: " + err.Error()
			}
		}
	}
	if ctrl && !editing && inpututil.IsKeyJustPressed(ebiten.KeyX) {
		if t := a.session.CutText(); t != "" {
			if err := clipio.Write(t); err != nil {
				a.status = "Cut failed: " + err.Error()
			}
		}
	}
	if ctrl && !editing && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		t, err := clipio.Read()
		if err != nil {
			a.status = "Paste failed: " + err.Error()
		} else {
			a.session.Paste(t)
		}
	}
	if ctrl && (inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd)) {
		a.bumpUIScale(1)
		a.status = fmt.Sprintf("UI scale %.0f%%", a.uiScales[a.uiScaleIdx]*100)
	}
	if ctrl && (inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract)) {
		a.bumpUIScale(-1)
		a.status = fmt.Sprintf("UI scale %.0f%%", a.uiScales[a.uiScaleIdx]*100)
	}
	if ctrl {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		if _, _, editing := a.session.Editing(); editing {
			a.session.ConfirmEdit()
		} else if r, c, ok := grid.IsSingleCell(a.session.Selection); ok {
			a.session.StartEdit(r, c)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		if r, c, ok := grid.IsSingleCell(a.session.Selection); ok {
			a.session.StartEdit(r, c)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if r, c, editing := a.session.Editing(); editing {
			a.session.CommitEdit()
			a.session.SelectCell(r, c+1)
		} else {
			a.session.MoveSelection(0, 1, false)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if _, _, editing := a.session.Editing(); editing {
			buf := a.session.EditBuffer()
			if len(buf) > 0 {
				_, size := utf8.DecodeLastRuneInString(buf)
				if size <= 0 {
					size = 1
				}
				a.session.SetEditBuffer(buf[:len(buf)-size])
			}
		} else {
			a.session.ClearSelectedCells()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		if _, _, editing := a.session.Editing(); !editing {
			a.session.ClearSelectedCells()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		a.session.MoveSelection(-1, 0, shift)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		a.session.MoveSelection(1, 0, shift)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		a.session.MoveSelection(0, -1, shift)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		a.session.MoveSelection(0, 1, shift)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		a.session.MoveSelection(0, -a.session.Grid.ColCount(), shift)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		a.session.MoveSelection(0, a.session.Grid.ColCount(), shift)
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if r < 0x20 || !utf8.ValidRune(r) {
			continue
		}
		if _, _, editing := a.session.Editing(); editing {
			a.session.SetEditBuffer(a.session.EditBuffer() + string(r))
		} else if row, col, ok := grid.IsSingleCell(a.session.Selection); ok {
			a.session.StartEditTyped(row, col, string(r))
		}
	}

	a.ensureSelectionVisible()
	a.clampScroll()
	return nil
}

func (a *App) handleFindInput(shift bool) bool {
	consumed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if len(a.findBuffer) > 0 {
			_, size := utf8.DecodeLastRuneInString(a.findBuffer)
			if size <= 0 {
				size = 1
			}
			a.findBuffer = a.findBuffer[:len(a.findBuffer)-size]
		}
		consumed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		if a.findBuffer != a.session.SearchQuery() {
			n := a.session.PerformSearch(a.findBuffer, false)
			a.status = fmt.Sprintf("%d matches", n)
		}
		var moved bool
		if shift {
			moved = a.session.PrevResult()
		} else {
			moved = a.session.NextResult()
		}
		if moved {
			a.ensureSelectionVisible()
		} else if a.findBuffer != "" {
			a.status = "No matches"
		}
		consumed = true
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if r < 0x20 || r == 0x7F || !utf8.ValidRune(r) {
			continue
		}
		a.findBuffer += string(r)
		consumed = true
	}
	return consumed
}

func (a *App) handleMouse(shift bool) {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if id, ok := a.actionAt(x, y); ok {
			a.invokeAction(id)
			return
		}
		for _, btn := range a.toolbarActions {
			if btn.r.contains(x, y) {
				a.invokeAction(btn.id)
				return
			}
		}
		headerStrip := rect{x: a.sheetRect.x, y: a.layout.HeaderY, w: a.sheetRect.w, h: a.layout.HeaderH}
		if headerStrip.contains(x, y) {
			col, edge := a.headerHit(x)
			if edge {
				a.resizingCol = col
				a.resizeStartX = x
				a.resizeStartW = a.session.ColWidth(col)
			} else if col >= 0 {
				a.session.SelectColumn(col)
			}
			return
		}
		gutter := rect{x: 0, y: a.sheetRect.y, w: a.layout.GutterW, h: a.sheetRect.h}
		if gutter.contains(x, y) {
			if row, ok := a.rowAtY(y); ok {
				a.session.SelectRow(row)
			}
			return
		}
		if a.sheetRect.contains(x, y) {
			row, col, ok := a.hitCell(x, y)
			if !ok {
				a.session.ClearSelection()
				return
			}
			if shift {
				a.session.ExtendSelectionTo(row, col)
				return
			}
			doubleClick := a.frameTick-a.lastClickTick < 20 && row == a.lastClickRow && col == a.lastClickCol
			a.lastClickTick = a.frameTick
			a.lastClickRow, a.lastClickCol = row, col
			if doubleClick {
				a.session.StartEdit(row, col)
				return
			}
			a.session.SelectCell(row, col)
			a.dragSelecting = true
		}
		return
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if a.resizingCol >= 0 {
			a.session.SetColWidth(a.resizingCol, a.resizeStartW+float64(x-a.resizeStartX))
			return
		}
		if a.dragSelecting {
			if row, col, ok := a.hitCell(x, y); ok {
				a.session.ExtendSelectionTo(row, col)
			}
		}
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.dragSelecting = false
		a.resizingCol = -1
	}
}

func (a *App) actionAt(x, y int) (string, bool) {
	for _, btn := range a.topActions {
		if btn.r.contains(x, y) {
			return btn.id, true
		}
	}
	return "", false
}

func (a *App) invokeAction(id string) {
	anchorRow, anchorCol := grid.Anchor(a.session.Selection)
	switch id {
	case "new":
		a.session.NewDocument()
		a.scrollX, a.scrollY = 0, 0
		a.status = "New spreadsheet"
	case "open":
		a.openDocument()
	case "save":
		a.saveDocument(false)
	case "save_as":
		a.saveDocument(true)
	case "undo":
		if a.session.Undo() {
			a.status = "Undo"
		}
	case "redo":
		if a.session.Redo() {
			a.status = "Redo"
		}
	case "scale_down":
		a.bumpUIScale(-1)
		a.status = fmt.Sprintf("UI scale %.0f%%", a.uiScales[a.uiScaleIdx]*100)
	case "scale_up":
		a.bumpUIScale(1)
		a.status = fmt.Sprintf("UI scale %.0f%%", a.uiScales[a.uiScaleIdx]*100)
	case "help":
		a.showHelp = !a.showHelp
	case "add_row":
		a.session.AddRow()
		a.status = "Row added"
	case "add_col":
		a.session.AddColumn()
		a.status = "Column added"
	case "ins_row":
		a.session.InsertRowAt(anchorRow)
		a.status = fmt.Sprintf("Row inserted at %d", anchorRow+1)
	case "ins_col":
		a.session.InsertColumnAt(anchorCol)
		a.status = "Column inserted at " + colIndexToLetter(anchorCol)
	case "del_row":
		a.session.DeleteRow(anchorRow)
		a.status = fmt.Sprintf("Row %d deleted", anchorRow+1)
	case "del_col":
		a.session.DeleteColumn(anchorCol)
		a.status = "Column " + colIndexToLetter(anchorCol) + " deleted"
	case "sort_asc":
		a.session.SortByColumn(anchorCol, true)
		a.status = "Sorted " + colIndexToLetter(anchorCol) + " ascending"
	case "sort_desc":
		a.session.SortByColumn(anchorCol, false)
		a.status = "Sorted " + colIndexToLetter(anchorCol) + " descending"
	case "freeze":
		a.session.ToggleFrozenHeader()
		if a.session.FrozenHeader() {
			a.status = "Header row frozen"
		} else {
			a.status = "Header row unfrozen"
		}
	case "find":
		a.findActive = !a.findActive
		if a.findActive {
			a.findBuffer = a.session.SearchQuery()
		}
	}
}

func (a *App) openDocument() {
	path, err := platform.OpenCSVDialog()
	if err != nil {
		if !platform.Cancelled(err) {
			a.status = "Open failed: " + err.Error()
		}
		return
	}
	if path == "" {
		return
	}
	path = filepath.Clean(path)
	a.loading = true
	a.status = "Loading " + filepath.Base(path)
	go func() {
		rows, err := csvio.Load(path)
		a.inbox.Deposit(platform.LoadResult{Path: path, Rows: rows, Err: err})
	}()
}

func (a *App) saveDocument(saveAs bool) {
	if _, _, editing := a.session.Editing(); editing {
		a.session.CommitEdit()
	}
	path := a.session.FilePath()
	if saveAs || path == "" {
		p, err := platform.SaveCSVDialog()
		if err != nil {
			if !platform.Cancelled(err) {
				a.status = "Save failed: " + err.Error()
			}
			return
		}
		if p == "" {
			return
		}
		if filepath.Ext(p) == "" {
			p += ".csv"
		}
		path = p
	}
	if err := csvio.Save(path, a.session.Data()); err != nil {
		a.status = "Save failed: " + err.Error()
		return
	}
	a.session.MarkSaved(path)
	a.status = "Saved " + filepath.Base(path)
}

func (a *App) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if a.frameBuffer == nil || a.frameBuffer.W != w || a.frameBuffer.H != h {
		a.frameBuffer = render.NewFrameBuffer(w, h)
		a.canvas = ebiten.NewImage(w, h)
	}

	layout := ui.DrawShell(a.frameBuffer, a.theme, a.uiScales[a.uiScaleIdx])
	a.layout = layout
	a.sheetRect = rect{x: layout.SheetX, y: layout.SheetY, w: layout.SheetW, h: layout.SheetH}
	a.computeScrollBounds()

	menuFace := a.uiFace(11, false)
	toolbarFace := a.uiFace(11, false)
	cellFace := a.uiFace(11, false)
	statusFace := a.uiFace(10, false)

	a.layoutTopActions(menuFace, layout)
	a.layoutToolbarControls(toolbarFace, layout)
	a.drawSheet(cellFace)

	a.canvas.WritePixels(a.frameBuffer.Pixels)
	screen.DrawImage(a.canvas, nil)

	a.drawTopActionLabels(screen, menuFace)
	a.drawToolbarLabels(screen, toolbarFace)
	a.drawCellLabels(screen, cellFace)
	a.drawEditCaret(screen, cellFace)
	a.drawFindBar(screen, toolbarFace)
	a.drawStatusBar(screen, statusFace, h)

	if a.showHelp {
		a.drawHelpOverlay(screen, toolbarFace)
	}
}

func (a *App) drawStatusBar(screen *ebiten.Image, face font.Face, h int) {
	g := a.session.Grid
	name := a.session.FilePath()
	if name == "" {
		name = "Untitled"
	} else {
		name = filepath.Base(name)
	}
	if a.session.Dirty() {
		name += "*"
	}
	mode := "Ready"
	if _, _, editing := a.session.Editing(); editing {
		mode = "Edit"
	}
	if a.loading {
		mode = "Loading"
	}
	pos := "-"
	if r, c, ok := grid.IsSingleCell(a.session.Selection); ok {
		pos = cellName(r, c)
	} else if minRow, maxRow, minCol, maxCol, ok := grid.Bounds(a.session.Selection, g); ok {
		pos = cellName(minRow, minCol) + ":" + cellName(maxRow, maxCol)
	}
	statusLeft := fmt.Sprintf("[ %s ] [ %dx%d ] [ %s ]", pos, g.RowCount(), g.ColCount(), mode)
	statusRight := fmt.Sprintf("[ %s ] [ %s ]", name, a.status)
	clr := color.RGBA{R: 42, G: 56, B: 80, A: 255}
	text.Draw(screen, statusLeft, face, 12, h-10, clr)
	text.Draw(screen, statusRight, face, 320, h-10, clr)
}

func (a *App) layoutTopActions(face font.Face, layout ui.Layout) {
	a.topActions = a.topActions[:0]
	x := 10
	y := 4
	h := layout.MenuH - 8
	if h < 24 {
		h = 24
	}
	buttons := []actionButton{
		{id: "new", label: "New"},
		{id: "open", label: "Open"},
		{id: "save", label: "Save"},
		{id: "save_as", label: "Save As"},
		{id: "undo", label: "Undo", active: a.session.CanUndo()},
		{id: "redo", label: "Redo", active: a.session.CanRedo()},
		{id: "scale_down", label: "A-"},
		{id: "scale_up", label: "A+"},
		{id: "help", label: "Help", active: a.showHelp},
	}
	mx, my := ebiten.CursorPosition()
	for _, btn := range buttons {
		tw := a.measureString(face, btn.label)
		pad := 14
		w := tw + pad*2
		if w < 64 {
			w = 64
		}
		r := rect{x: x, y: y, w: w, h: h}
		hover := r.contains(mx, my)
		bg := color.RGBA{R: 46, G: 84, B: 145, A: 255}
		if btn.active {
			bg = color.RGBA{R: 71, G: 116, B: 186, A: 255}
		}
		if hover {
			bg = color.RGBA{R: 58, G: 102, B: 172, A: 255}
		}
		a.frameBuffer.FillRect(r.x, r.y, r.w, r.h, bg)
		a.frameBuffer.StrokeRect(r.x, r.y, r.w, r.h, 1, color.RGBA{R: 27, G: 54, B: 97, A: 255})
		btn.r = r
		a.topActions = append(a.topActions, btn)
		x += w + 8
	}
}

func (a *App) layoutToolbarControls(face font.Face, layout ui.Layout) {
	a.toolbarActions = a.toolbarActions[:0]
	x := 14
	y := layout.MenuH + 8
	h := layout.ToolbarH - 16
	if h < 24 {
		h = 24
	}
	mx, my := ebiten.CursorPosition()

	addBtn := func(id, label string, active bool) {
		tw := a.measureString(face, label)
		pad := 10
		w := tw + pad*2
		if w < 48 {
			w = 48
		}
		r := rect{x: x, y: y, w: w, h: h}
		hover := r.contains(mx, my)
		bg := color.RGBA{R: 241, G: 245, B: 251, A: 255}
		if active {
			bg = color.RGBA{R: 215, G: 229, B: 248, A: 255}
		}
		if hover {
			bg = color.RGBA{R: 223, G: 236, B: 252, A: 255}
		}
		a.frameBuffer.FillRect(r.x, r.y, r.w, r.h, bg)
		a.frameBuffer.StrokeRect(r.x, r.y, r.w, r.h, 1, color.RGBA{R: 181, G: 194, B: 214, A: 255})
		a.toolbarActions = append(a.toolbarActions, actionButton{id: id, label: label, r: r, active: active})
		x += w + 6
	}

	addBtn("add_row", "+ Row", false)
	addBtn("add_col", "+ Col", false)
	addBtn("ins_row", "Ins Row", false)
	addBtn("ins_col", "Ins Col", false)
	addBtn("del_row", "Del Row", false)
	addBtn("del_col", "Del Col", false)
	x += 6
	addBtn("sort_asc", "Sort A-Z", false)
	addBtn("sort_desc", "Sort Z-A", false)
	addBtn("freeze", "Freeze", a.session.FrozenHeader())
	addBtn("find", "Find", a.findActive)
}

func (a *App) drawTopActionLabels(screen *ebiten.Image, face font.Face) {
	textColor := color.RGBA{R: 244, G: 248, B: 255, A: 255}
	for _, btn := range a.topActions {
		tw := a.measureString(face, btn.label)
		ascent := face.Metrics().Ascent.Round()
		descent := face.Metrics().Descent.Round()
		textHeight := ascent + descent
		x := btn.r.x + (btn.r.w-tw)/2
		baseline := btn.r.y + (btn.r.h+textHeight)/2 - descent
		text.Draw(screen, btn.label, face, x, baseline, textColor)
	}
}

func (a *App) drawToolbarLabels(screen *ebiten.Image, face font.Face) {
	for _, btn := range a.toolbarActions {
		labelColor := color.RGBA{R: 44, G: 58, B: 82, A: 255}
		if btn.active {
			labelColor = color.RGBA{R: 19, G: 62, B: 122, A: 255}
		}
		tw := a.measureString(face, btn.label)
		ascent := face.Metrics().Ascent.Round()
		descent := face.Metrics().Descent.Round()
		textHeight := ascent + descent
		x := btn.r.x + (btn.r.w-tw)/2
		baseline := btn.r.y + (btn.r.h+textHeight)/2 - descent
		text.Draw(screen, btn.label, face, x, baseline, labelColor)
	}
}

// drawSheet paints headers, gutter, gridlines and cell backgrounds into the
// framebuffer and queues cell text for the screen pass.
func (a *App) drawSheet(face font.Face) {
	a.cellLabels = a.cellLabels[:0]
	g := a.session.Grid
	rows := g.RowCount()
	cols := g.ColCount()
	if rows == 0 || cols == 0 || a.sheetRect.w <= 0 || a.sheetRect.h <= 0 {
		return
	}
	rowH := a.rowHeight()
	frozen := a.session.FrozenHeader()
	sortCol, sortAsc, sorted := a.session.SortIndicator()

	matches := map[editor.CellRef]bool{}
	for _, ref := range a.session.SearchResults() {
		matches[ref] = true
	}
	current, hasCurrent := a.session.CurrentResult()
	editRow, editCol, editing := a.session.Editing()

	textClr := color.RGBA{R: 32, G: 40, B: 54, A: 255}
	headerClr := color.RGBA{R: 52, G: 66, B: 92, A: 255}

	// column headers
	for col := 0; col < cols; col++ {
		x0, x1, visible := a.colSpan(col)
		if !visible {
			continue
		}
		selected := false
		if c, ok := a.session.Selection.(grid.Column); ok && c.Col == col {
			selected = true
		}
		bg := a.theme.HeaderBg
		if selected {
			bg = a.theme.SelectionFill
		}
		a.frameBuffer.FillRect(x0, a.layout.HeaderY, x1-x0, a.layout.HeaderH, bg)
		a.frameBuffer.VLine(x1-1, a.layout.HeaderY, a.layout.HeaderH, a.theme.GridLine)
		label := colIndexToLetter(col)
		if sorted && col == sortCol {
			if sortAsc {
				label += " ^"
			} else {
				label += " v"
			}
		}
		tw := a.measureString(face, label)
		a.cellLabels = append(a.cellLabels, textLabel{
			text: label,
			x:    x0 + (x1-x0-tw)/2,
			y:    a.layout.HeaderY + a.layout.HeaderH - 8,
			clr:  headerClr,
			bold: true,
		})
	}

	// rows: pinned header first when frozen, then body
	for row := 0; row < rows; row++ {
		y, ok := a.rowScreenY(row)
		if !ok {
			continue
		}
		pinned := frozen && row == 0

		// gutter number
		gutterBg := a.theme.HeaderBg
		if r, isRow := a.session.Selection.(grid.Row); isRow && r.Row == row {
			gutterBg = a.theme.SelectionFill
		}
		a.frameBuffer.FillRect(0, y, a.layout.GutterW-1, rowH, gutterBg)
		a.frameBuffer.HLine(0, y+rowH-1, a.layout.GutterW, a.theme.GridLine)
		num := fmt.Sprintf("%d", row+1)
		tw := a.measureString(face, num)
		a.cellLabels = append(a.cellLabels, textLabel{
			text: num,
			x:    a.layout.GutterW - 8 - tw,
			y:    y + rowH - 8,
			clr:  headerClr,
		})

		for col := 0; col < cols; col++ {
			x0, x1, visible := a.colSpan(col)
			if !visible {
				continue
			}
			cellW := x1 - x0
			bg := a.theme.CellBg
			if pinned {
				bg = a.theme.FrozenBg
			}
			if matches[editor.CellRef{Row: row, Col: col}] {
				bg = a.theme.SearchFill
			}
			if grid.Contains(a.session.Selection, row, col) {
				bg = a.theme.SelectionFill
			}
			isEditCell := editing && row == editRow && col == editCol
			if isEditCell {
				bg = a.theme.EditFill
			}
			a.frameBuffer.FillRect(x0, y, cellW, rowH, bg)
			a.frameBuffer.HLine(x0, y+rowH-1, cellW, a.theme.GridLine)
			a.frameBuffer.VLine(x1-1, y, rowH, a.theme.GridLine)
			if hasCurrent && current.Row == row && current.Col == col && !isEditCell {
				a.frameBuffer.StrokeRect(x0, y, cellW, rowH, 2, a.theme.Accent)
			}
			if isEditCell {
				a.frameBuffer.StrokeRect(x0, y, cellW, rowH, 2, a.theme.Accent)
			}

			value := g.Cell(row, col)
			if isEditCell {
				value = a.session.EditBuffer()
			}
			if value == "" {
				continue
			}
			value = a.truncateToWidth(face, value, cellW-10)
			a.cellLabels = append(a.cellLabels, textLabel{
				text: value,
				x:    x0 + 5,
				y:    y + rowH - 8,
				clr:  textClr,
			})
		}
	}

	// re-paint the header strip corner over anything scrolled beneath it
	a.frameBuffer.FillRect(0, a.layout.HeaderY, a.layout.GutterW-1, a.layout.HeaderH, a.theme.HeaderBg)
}

func (a *App) drawCellLabels(screen *ebiten.Image, face font.Face) {
	boldFace := a.uiFace(11, true)
	for _, l := range a.cellLabels {
		f := face
		if l.bold {
			f = boldFace
		}
		text.Draw(screen, l.text, f, l.x, l.y, l.clr)
	}
}

func (a *App) drawEditCaret(screen *ebiten.Image, face font.Face) {
	editRow, editCol, editing := a.session.Editing()
	if !editing || (a.frameTick/30)%2 != 0 {
		return
	}
	y, ok := a.rowScreenY(editRow)
	if !ok {
		return
	}
	x0, _, visible := a.colSpan(editCol)
	if !visible {
		return
	}
	caretX := x0 + 5 + a.measureString(face, a.session.EditBuffer())
	ebitenutil.DrawLine(screen, float64(caretX), float64(y+4), float64(caretX), float64(y+a.rowHeight()-4), color.RGBA{R: 21, G: 84, B: 164, A: 255})
}

func (a *App) drawFindBar(screen *ebiten.Image, face font.Face) {
	if !a.findActive {
		a.findRect = rect{}
		return
	}
	w := 300
	h := 30
	x := a.screenW - w - 16
	y := a.layout.MenuH + a.layout.ToolbarH - h - 6
	if x < 0 {
		x = 0
	}
	a.findRect = rect{x: x, y: y, w: w, h: h}
	a.drawFilledRectOnScreen(screen, x, y, w, h, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	border := color.RGBA{R: 77, G: 134, B: 205, A: 255}
	ebitenutil.DrawLine(screen, float64(x), float64(y), float64(x+w), float64(y), border)
	ebitenutil.DrawLine(screen, float64(x), float64(y+h), float64(x+w), float64(y+h), border)
	ebitenutil.DrawLine(screen, float64(x), float64(y), float64(x), float64(y+h), border)
	ebitenutil.DrawLine(screen, float64(x+w), float64(y), float64(x+w), float64(y+h), border)

	label := "Find: " + a.findBuffer
	text.Draw(screen, label, face, x+8, y+20, color.RGBA{R: 42, G: 56, B: 80, A: 255})
	if (a.frameTick/30)%2 == 0 {
		caretX := x + 8 + a.measureString(face, label)
		ebitenutil.DrawLine(screen, float64(caretX), float64(y+6), float64(caretX), float64(y+h-6), color.RGBA{R: 21, G: 84, B: 164, A: 255})
	}
	if n := len(a.session.SearchResults()); n > 0 {
		count := fmt.Sprintf("%d", n)
		tw := a.measureString(face, count)
		text.Draw(screen, count, face, x+w-tw-8, y+20, color.RGBA{R: 90, G: 104, B: 128, A: 255})
	}
}

func (a *App) layoutHelpDialogBounds(w, h int) {
	panelW := int(float64(w) * 0.62)
	panelH := int(float64(h) * 0.62)
	if panelW > w-40 {
		panelW = w - 40
	}
	if panelH > h-40 {
		panelH = h - 40
	}
	px := (w - panelW) / 2
	py := (h - panelH) / 2
	a.helpRect = rect{x: px, y: py, w: panelW, h: panelH}
	a.helpClose = rect{x: px + panelW - 94, y: py + 12, w: 78, h: 30}
}

func (a *App) drawHelpOverlay(screen *ebiten.Image, face font.Face) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	a.layoutHelpDialogBounds(w, h)
	r := a.helpRect
	a.drawFilledRectOnScreen(screen, 0, 0, w, h, color.RGBA{R: 0, G: 0, B: 0, A: 90})
	a.drawFilledRectOnScreen(screen, r.x, r.y, r.w, r.h, color.RGBA{R: 250, G: 251, B: 253, A: 255})
	border := color.RGBA{R: 170, G: 184, B: 202, A: 255}
	ebitenutil.DrawLine(screen, float64(r.x), float64(r.y), float64(r.x+r.w), float64(r.y), border)
	ebitenutil.DrawLine(screen, float64(r.x), float64(r.y+r.h), float64(r.x+r.w), float64(r.y+r.h), border)
	ebitenutil.DrawLine(screen, float64(r.x), float64(r.y), float64(r.x), float64(r.y+r.h), border)
	ebitenutil.DrawLine(screen, float64(r.x+r.w), float64(r.y), float64(r.x+r.w), float64(r.y+r.h), border)

	a.drawFilledRectOnScreen(screen, a.helpClose.x, a.helpClose.y, a.helpClose.w, a.helpClose.h, color.RGBA{R: 236, G: 241, B: 248, A: 255})
	text.Draw(screen, "Close", face, a.helpClose.x+22, a.helpClose.y+20, color.RGBA{R: 52, G: 66, B: 92, A: 255})

	titleFace := a.uiFace(12, true)
	text.Draw(screen, "Help", titleFace, r.x+22, r.y+30, color.RGBA{R: 30, G: 45, B: 67, A: 255})

	lines := []string{
		"Ctrl+S: Save | Ctrl+Shift+S: Save As",
		"Ctrl+O: Open | Ctrl+N: New",
		"Ctrl+Z: Undo | Ctrl+Y: Redo",
		"Ctrl+C/X/V: Copy / Cut / Paste",
		"Ctrl+A: Select all | Ctrl+F: Find",
		"Arrows move selection | Shift+arrows extend",
		"Enter or F2 edits the selected cell; Enter commits, Esc cancels",
		"Type into a selected cell to replace its value",
		"Click column letters or row numbers to select whole columns/rows",
		"Drag a column header edge to resize",
		"Delete clears selected cells",
		"F1 or Esc closes this dialog",
	}
	y := r.y + 62
	labelFace := a.uiFace(10, false)
	for _, l := range lines {
		text.Draw(screen, l, labelFace, r.x+20, y, color.RGBA{R: 48, G: 60, B: 78, A: 255})
		y += int(24 * a.uiScales[a.uiScaleIdx])
	}
}

// drawFilledRectOnScreen draws a filled rectangle on the screen by drawing horizontal lines.
func (a *App) drawFilledRectOnScreen(screen *ebiten.Image, x, y, w, h int, c color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		ebitenutil.DrawLine(screen, float64(x), float64(yy), float64(x+w), float64(yy), c)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth < 900 {
		outsideWidth = 900
	}
	if outsideHeight < 560 {
		outsideHeight = 560
	}
	a.screenW = outsideWidth
	a.screenH = outsideHeight
	return outsideWidth, outsideHeight
}

func (a *App) currentViewportSize() (int, int) {
	if a.screenW > 0 && a.screenH > 0 {
		return a.screenW, a.screenH
	}
	w, h := ebiten.WindowSize()
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 800
	}
	return w, h
}

func (a *App) rowHeight() int {
	if a.layout.RowH > 0 {
		return a.layout.RowH
	}
	return 26
}

// colDocX returns the doc-space x offset of a column's left edge.
func (a *App) colDocX(col int) float64 {
	x := 0.0
	for c := 0; c < col; c++ {
		x += a.session.ColWidth(c)
	}
	return x
}

// colSpan returns the screen-space horizontal extent of a column within the
// sheet viewport, clipped against it.
func (a *App) colSpan(col int) (x0, x1 int, visible bool) {
	left := a.colDocX(col) - a.scrollX
	right := left + a.session.ColWidth(col)
	if right <= 0 || left >= float64(a.sheetRect.w) {
		return 0, 0, false
	}
	x0 = a.sheetRect.x + int(left)
	x1 = a.sheetRect.x + int(right)
	if x0 < a.sheetRect.x {
		x0 = a.sheetRect.x
	}
	if x1 > a.sheetRect.x+a.sheetRect.w {
		x1 = a.sheetRect.x + a.sheetRect.w
	}
	if x1 <= x0 {
		return 0, 0, false
	}
	return x0, x1, true
}

// rowScreenY maps a row index to its viewport y. With a frozen header, row 0
// sits pinned at the top and body rows scrolled under it are hidden.
func (a *App) rowScreenY(row int) (int, bool) {
	rowH := a.rowHeight()
	frozen := a.session.FrozenHeader()
	if frozen && row == 0 {
		return a.sheetRect.y, true
	}
	y := a.sheetRect.y + row*rowH - int(a.scrollY)
	minY := a.sheetRect.y
	if frozen {
		minY += rowH
	}
	if y+rowH <= minY || y >= a.sheetRect.y+a.sheetRect.h {
		return 0, false
	}
	return y, true
}

func (a *App) rowAtY(y int) (int, bool) {
	rowH := a.rowHeight()
	if y < a.sheetRect.y || y >= a.sheetRect.y+a.sheetRect.h {
		return 0, false
	}
	if a.session.FrozenHeader() && y < a.sheetRect.y+rowH {
		return 0, true
	}
	row := (y - a.sheetRect.y + int(a.scrollY)) / rowH
	if row < 0 || row >= a.session.Grid.RowCount() {
		return 0, false
	}
	return row, true
}

func (a *App) colAtX(x int) (int, bool) {
	docX := float64(x-a.sheetRect.x) + a.scrollX
	if docX < 0 {
		return 0, false
	}
	edge := 0.0
	for col := 0; col < a.session.Grid.ColCount(); col++ {
		edge += a.session.ColWidth(col)
		if docX < edge {
			return col, true
		}
	}
	return 0, false
}

func (a *App) hitCell(x, y int) (row, col int, ok bool) {
	row, rok := a.rowAtY(y)
	col, cok := a.colAtX(x)
	if !rok || !cok {
		return 0, 0, false
	}
	return row, col, true
}

// headerHit resolves a click in the column header strip: the column under
// the cursor, and whether the cursor grabbed a resize edge.
func (a *App) headerHit(x int) (col int, edge bool) {
	docX := float64(x-a.sheetRect.x) + a.scrollX
	if docX < 0 {
		return -1, false
	}
	right := 0.0
	for c := 0; c < a.session.Grid.ColCount(); c++ {
		right += a.session.ColWidth(c)
		if math.Abs(docX-right) <= resizeGrabPx {
			return c, true
		}
		if docX < right {
			return c, false
		}
	}
	return -1, false
}

func (a *App) computeScrollBounds() {
	g := a.session.Grid
	totalW := a.colDocX(g.ColCount())
	totalH := float64(g.RowCount() * a.rowHeight())
	a.maxX = math.Max(0, totalW-float64(a.sheetRect.w))
	a.maxY = math.Max(0, totalH-float64(a.sheetRect.h))
	a.clampScroll()
}

func (a *App) clampScroll() {
	if a.scrollX < 0 {
		a.scrollX = 0
	}
	if a.scrollY < 0 {
		a.scrollY = 0
	}
	if a.scrollX > a.maxX {
		a.scrollX = a.maxX
	}
	if a.scrollY > a.maxY {
		a.scrollY = a.maxY
	}
}

// ensureSelectionVisible scrolls so the selection cursor cell stays in view.
func (a *App) ensureSelectionVisible() {
	var row, col int
	switch sel := a.session.Selection.(type) {
	case grid.CellRange:
		row, col = sel.EndRow, sel.EndCol
	case grid.Row:
		row, col = sel.Row, 0
	case grid.Column:
		row, col = 0, sel.Col
	default:
		return
	}
	rowH := float64(a.rowHeight())
	top := float64(row) * rowH
	bottom := top + rowH
	pinned := 0.0
	if a.session.FrozenHeader() && row > 0 {
		pinned = rowH
	}
	if top < a.scrollY+pinned {
		a.scrollY = top - pinned
	}
	if bottom > a.scrollY+float64(a.sheetRect.h) {
		a.scrollY = bottom - float64(a.sheetRect.h)
	}

	left := a.colDocX(col)
	right := left + a.session.ColWidth(col)
	if left < a.scrollX {
		a.scrollX = left
	}
	if right > a.scrollX+float64(a.sheetRect.w) {
		a.scrollX = right - float64(a.sheetRect.w)
	}
	a.clampScroll()
}

func (a *App) bumpUIScale(delta int) {
	if len(a.uiScales) == 0 {
		return
	}
	prev := a.uiScaleIdx
	a.uiScaleIdx += delta
	if a.uiScaleIdx < 0 {
		a.uiScaleIdx = 0
	}
	if a.uiScaleIdx >= len(a.uiScales) {
		a.uiScaleIdx = len(a.uiScales) - 1
	}
	if prev != a.uiScaleIdx {
		a.fonts.cache = map[fontKey]font.Face{}
	}
}

// measureString returns approximate pixel width of a string for given face.
func (a *App) measureString(face font.Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	adv := font.MeasureString(face, s)
	px := (int(adv) + 32) >> 6
	if px < 0 {
		px = 0
	}
	return px
}

func (a *App) truncateToWidth(face font.Face, s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if a.measureString(face, s) <= maxW {
		return s
	}
	for len(s) > 0 {
		_, size := utf8.DecodeLastRuneInString(s)
		if size <= 0 {
			size = 1
		}
		s = s[:len(s)-size]
		if a.measureString(face, s) <= maxW {
			break
		}
	}
	return s
}

// uiFace returns a cached face for the UI, scaling by current UI scale.
func (a *App) uiFace(size int, bold bool) font.Face {
	scaleKey := int(math.Round(float64(a.uiScales[a.uiScaleIdx] * 1000)))
	key := fontKey{size: size, bold: bold, scale: scaleKey}
	if f, ok := a.fonts.cache[key]; ok {
		return f
	}
	base := a.fonts.regular
	if bold {
		base = a.fonts.bold
	}
	if base == nil {
		return basicfont.Face7x13
	}
	opts := &opentype.FaceOptions{Size: float64(size) * float64(a.uiScales[a.uiScaleIdx]), DPI: 72, Hinting: font.HintingFull}
	face, err := opentype.NewFace(base, opts)
	if err != nil {
		return basicfont.Face7x13
	}
	a.fonts.cache[key] = face
	return face
}

// colIndexToLetter renders a zero-based column index as its spreadsheet
// letter name: 0->A, 25->Z, 26->AA.
func colIndexToLetter(col int) string {
	if col < 0 {
		return ""
	}
	name := ""
	for {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
		if col < 0 {
			break
		}
	}
	return name
}

// cellName renders a coordinate in A1 notation.
func cellName(row, col int) string {
	return fmt.Sprintf("%s%d", colIndexToLetter(col), row+1)
}
