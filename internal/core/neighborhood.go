package core

// MaxWindow is the number of cells in an unclipped neighborhood window, and
// therefore the largest alive count a rule can observe.
const MaxWindow = 9

// Window is the clipped 3x3 block around a cell, the cell itself included.
type Window struct {
	Cells []Cell
	Alive int
}

// Size returns the number of cells in the window.
func (w Window) Size() int { return len(w.Cells) }

// Bounds returns the inclusive clipped window bounds around (x, y).
func (g Grid) Bounds(x, y int) (x0, y0, x1, y1 int) {
	x0, y0, x1, y1 = x-1, y-1, x+1, y+1
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > g.w-1 {
		x1 = g.w - 1
	}
	if y1 > g.h-1 {
		y1 = g.h - 1
	}
	return x0, y0, x1, y1
}

// Sample returns the neighborhood window of (x, y) in row-major order and
// the number of live cells in it. The cell at (x, y) counts toward Alive.
func Sample(g Grid, x, y int) (Window, error) {
	if !g.Contains(x, y) {
		return Window{}, &InvalidCoordinateError{X: x, Y: y, W: g.w, H: g.h}
	}
	x0, y0, x1, y1 := g.Bounds(x, y)
	win := Window{Cells: make([]Cell, 0, (x1-x0+1)*(y1-y0+1))}
	for ny := y0; ny <= y1; ny++ {
		for nx := x0; nx <= x1; nx++ {
			c := g.data[ny*g.w+nx]
			win.Cells = append(win.Cells, c)
			if c == Alive {
				win.Alive++
			}
		}
	}
	return win, nil
}

// AliveAround counts live cells in the window of (x, y) without allocating.
// The coordinate must be inside the grid.
func (g Grid) AliveAround(x, y int) int {
	x0, y0, x1, y1 := g.Bounds(x, y)
	n := 0
	for ny := y0; ny <= y1; ny++ {
		row := g.data[ny*g.w : (ny+1)*g.w]
		for nx := x0; nx <= x1; nx++ {
			if row[nx] == Alive {
				n++
			}
		}
	}
	return n
}
