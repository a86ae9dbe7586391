// Package tui renders the picker in a terminal: a query line above a
// scrollable, collapsible tree of candidate types.
//
// The package only draws what the picker supplies; filtering and
// tree construction stay in the core packages.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/typepick/internal/catalog"
	"github.com/dshills/typepick/internal/icon"
	"github.com/dshills/typepick/internal/picker"
)

// App owns the terminal screen for one picker session.
type App struct {
	screen    tcell.Screen
	picker    *picker.Picker
	icons     *icon.Resolver
	glyphs    map[string]rune
	collapsed map[string]bool
	cursor    int
	offset    int
	status    string
	result    *catalog.Descriptor
}

// NewApp creates a terminal app over a picker. The resolver supplies
// icon references; glyphs maps references to display runes and may be
// nil.
func NewApp(p *picker.Picker, icons *icon.Resolver, glyphs map[string]rune) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &App{
		screen:    screen,
		picker:    p,
		icons:     icons,
		glyphs:    glyphs,
		collapsed: make(map[string]bool),
	}, nil
}

// Run enters the event loop and blocks until the user selects a type
// or quits. Returns the selected descriptor, nil when the session was
// dismissed.
func (a *App) Run() (*catalog.Descriptor, error) {
	if err := a.screen.Init(); err != nil {
		return nil, err
	}
	defer a.screen.Fini()

	// Wake the event loop when a manifest reload rebuilds the tree.
	// PostEvent is the only screen call safe from other goroutines.
	a.picker.OnChange(func() {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})

	for {
		a.draw()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			// Redraw on the next loop iteration.
		case *tcell.EventKey:
			if done := a.handleKey(ev); done {
				return a.result, nil
			}
		}
	}
}

// handleKey processes one key event. Returns true when the session
// is over.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.result = nil
		return true

	case tcell.KeyEnter:
		return a.activate()

	case tcell.KeyUp:
		a.moveCursor(-1)
	case tcell.KeyDown:
		a.moveCursor(1)
	case tcell.KeyPgUp:
		a.moveCursor(-a.pageSize())
	case tcell.KeyPgDn:
		a.moveCursor(a.pageSize())

	case tcell.KeyLeft:
		a.setExpanded(false)
	case tcell.KeyRight:
		a.setExpanded(true)

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		query := a.picker.Query()
		if query != "" {
			a.setQuery(query[:len(query)-1])
		}

	case tcell.KeyRune:
		a.setQuery(a.picker.Query() + string(ev.Rune()))
	}
	return false
}

// activate toggles the grouping row under the cursor, or selects the
// leaf row and ends the session.
func (a *App) activate() bool {
	rows := a.rows()
	if a.cursor >= len(rows) {
		return false
	}
	row := rows[a.cursor]

	if row.IsGroup() {
		a.collapsed[row.Path] = !a.collapsed[row.Path]
		return false
	}

	d, err := a.picker.Select(row.Node.ID)
	if err != nil {
		a.status = err.Error()
		return false
	}
	a.result = d
	return true
}

func (a *App) setExpanded(expanded bool) {
	rows := a.rows()
	if a.cursor >= len(rows) {
		return
	}
	row := rows[a.cursor]
	if row.IsGroup() {
		a.collapsed[row.Path] = !expanded
	}
}

func (a *App) setQuery(query string) {
	a.picker.SetQuery(query)
	a.cursor = 0
	a.offset = 0
	a.status = ""
}

func (a *App) rows() []Row {
	return flatten(a.picker.Tree(), a.collapsed)
}

func (a *App) moveCursor(delta int) {
	rows := a.rows()
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor >= len(rows) {
		a.cursor = len(rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// pageSize is the number of tree rows visible on screen.
func (a *App) pageSize() int {
	_, height := a.screen.Size()
	size := height - treeTop
	if size < 1 {
		return 1
	}
	return size
}

// Screen layout: query line, status line, then the tree.
const treeTop = 2

func (a *App) draw() {
	a.screen.Clear()
	width, _ := a.screen.Size()

	queryStyle := tcell.StyleDefault.Bold(true)
	a.drawText(0, 0, queryStyle, "> "+a.picker.Query())

	status := a.status
	if status == "" {
		status = fmt.Sprintf("%d candidates", len(a.picker.Candidates()))
	}
	a.drawText(0, 1, tcell.StyleDefault.Foreground(tcell.ColorGray), status)

	rows := a.rows()
	a.clampScroll(len(rows))

	for i := 0; i < a.pageSize() && a.offset+i < len(rows); i++ {
		row := rows[a.offset+i]
		style := tcell.StyleDefault
		if a.offset+i == a.cursor {
			style = style.Reverse(true)
		}
		a.drawText(0, treeTop+i, style, a.renderRow(row, width))
	}

	a.screen.ShowCursor(len("> "+a.picker.Query()), 0)
	a.screen.Show()
}

// clampScroll keeps the cursor inside the visible window.
func (a *App) clampScroll(rowCount int) {
	if a.cursor >= rowCount {
		a.cursor = rowCount - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	page := a.pageSize()
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+page {
		a.offset = a.cursor - page + 1
	}
	if a.offset < 0 {
		a.offset = 0
	}
}

// renderRow formats one tree row: indentation, expand marker or icon
// glyph, then the label.
func (a *App) renderRow(row Row, width int) string {
	indent := make([]byte, 0, row.Depth*2)
	for i := 0; i < row.Depth; i++ {
		indent = append(indent, ' ', ' ')
	}

	var marker rune
	switch {
	case row.IsGroup() && row.Expanded:
		marker = '▾'
	case row.IsGroup():
		marker = '▸'
	default:
		marker = a.glyph(row.Node.Descriptor)
	}

	line := fmt.Sprintf("%s%c %s", indent, marker, row.Node.Label)
	if width > 0 {
		if runes := []rune(line); len(runes) > width {
			line = string(runes[:width])
		}
	}
	return line
}

// glyph maps a leaf's resolved icon reference to a display rune.
func (a *App) glyph(d *catalog.Descriptor) rune {
	if a.icons == nil {
		return '·'
	}
	ref := a.icons.Resolve(d)
	if ref == "" {
		return '·'
	}
	if g, ok := a.glyphs[ref]; ok {
		return g
	}
	return '●'
}

func (a *App) drawText(x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		a.screen.SetContent(col, y, r, nil, style)
		col++
	}
}
