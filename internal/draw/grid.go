package draw

import (
	"strings"

	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

// hudRows is the number of terminal rows kept below the arena for status text.
const hudRows = 1

// Grid is a character buffer that maps logical arena coordinates onto
// terminal cells. The arena is never drawn larger than its logical size and
// is centered when the terminal is bigger.
type Grid struct {
	logical physics.Rect
	cols    int
	rows    int
	offCol  int
	offRow  int
	cells   []rune
}

// NewGrid creates a grid for an arena of the given logical size. Call
// Resize before drawing.
func NewGrid(logical physics.Rect) *Grid {
	return &Grid{logical: logical}
}

// Resize fits the grid to a terminal of termWidth x termHeight cells.
func (g *Grid) Resize(termWidth, termHeight int) {
	cols := min(termWidth, int(g.logical.Width))
	rows := min(termHeight-hudRows, int(g.logical.Height))
	cols, rows = max(cols, 1), max(rows, 1)

	g.offCol = max((termWidth-cols)/2, 0)
	g.offRow = max((termHeight-rows-hudRows)/2, 0)
	if cols == g.cols && rows == g.rows {
		return
	}
	g.cols, g.rows = cols, rows
	g.cells = make([]rune, cols*rows)
	g.Clear()
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (cols, rows int) { return g.cols, g.rows }

// Offset returns the 0-based terminal column and row of the grid's corner.
func (g *Grid) Offset() (col, row int) { return g.offCol, g.offRow }

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
}

// cell maps a logical position to a cell, reporting false when off-grid.
func (g *Grid) cell(p physics.Vec) (col, row int, ok bool) {
	if g.cols == 0 || p.X < 0 || p.Y < 0 {
		return 0, 0, false
	}
	col = int(p.X * float64(g.cols) / g.logical.Width)
	row = int(p.Y * float64(g.rows) / g.logical.Height)
	if col >= g.cols || row >= g.rows {
		return 0, 0, false
	}
	return col, row, true
}

// Plot puts r at the logical position p. Positions outside the arena are ignored.
func (g *Grid) Plot(p physics.Vec, r rune) {
	if col, row, ok := g.cell(p); ok {
		g.cells[row*g.cols+col] = r
	}
}

// DrawObjects plots every visible drawable. Later objects cover earlier ones.
func (g *Grid) DrawObjects(objs []object.Object) {
	for _, obj := range objs {
		d, ok := obj.(object.Drawable)
		if !ok {
			continue
		}
		if r, visible := d.Glyph(); visible {
			g.Plot(d.GetPosition(), r)
		}
	}
}

// Row returns one row of the grid as a string.
func (g *Grid) Row(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	return string(g.cells[row*g.cols : (row+1)*g.cols])
}

// Render writes the whole grid and a status line below it. Every cell is
// rewritten, so the screen never needs clearing between frames.
func (g *Grid) Render(cw *ChunkWriter, status string) {
	cw.SetOffset(g.offCol, g.offRow)
	for row := 0; row < g.rows; row++ {
		cw.MoveCursor(1, row+1)
		cw.WriteString(g.Row(row))
	}
	cw.MoveCursor(1, g.rows+1)
	cw.WriteString(padRunes(status, g.cols))
}

// padRunes truncates or pads s to exactly n runes.
func padRunes(s string, n int) string {
	r := []rune(s)
	if len(r) >= n {
		return string(r[:n])
	}
	return string(r) + strings.Repeat(" ", n-len(r))
}
