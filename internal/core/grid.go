package core

import "fmt"

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String returns "alive" or "dead".
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Grid stores a rectangular 2D field of cells in row-major order. A Grid is
// immutable once constructed; all constructors copy their input.
type Grid struct {
	w, h int
	data []Cell
}

// NewGrid builds a Grid from rows of cells. Every row must have the same
// non-zero length and there must be at least one row.
func NewGrid(rows [][]Cell) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, &InvalidGridError{Reason: "no rows"}
	}
	w := len(rows[0])
	if w == 0 {
		return Grid{}, &InvalidGridError{Height: len(rows), Reason: "no columns"}
	}
	data := make([]Cell, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return Grid{}, &InvalidGridError{
				Width:  w,
				Height: len(rows),
				Reason: fmt.Sprintf("row %d has %d cells", y, len(row)),
			}
		}
		data = append(data, row...)
	}
	return Grid{w: w, h: len(rows), data: data}, nil
}

// NewFilledGrid allocates a w*h grid with every cell set to c.
func NewFilledGrid(w, h int, c Cell) (Grid, error) {
	if w <= 0 || h <= 0 {
		return Grid{}, &InvalidGridError{Width: w, Height: h, Reason: "dimensions must be positive"}
	}
	data := make([]Cell, w*h)
	if c != Dead {
		for i := range data {
			data[i] = c
		}
	}
	return Grid{w: w, h: h, data: data}, nil
}

// FromCells builds a w*h grid from a row-major cell slice. The slice is
// copied so the caller may keep mutating its buffer.
func FromCells(w, h int, cells []Cell) (Grid, error) {
	if w <= 0 || h <= 0 {
		return Grid{}, &InvalidGridError{Width: w, Height: h, Reason: "dimensions must be positive"}
	}
	if len(cells) != w*h {
		return Grid{}, &InvalidGridError{Width: w, Height: h, Reason: fmt.Sprintf("got %d cells", len(cells))}
	}
	data := make([]Cell, len(cells))
	copy(data, cells)
	return Grid{w: w, h: h, data: data}, nil
}

// Next builds a grid of the same dimensions whose cell at (x, y) is
// f(x, y, g.At(x, y)). f reads g, never the grid being built. A zero-value
// Grid yields another zero-value Grid.
func (g Grid) Next(f func(x, y int, c Cell) Cell) Grid {
	next := make([]Cell, len(g.data))
	for y := 0; y < g.h; y++ {
		row := g.data[y*g.w : (y+1)*g.w]
		for x, c := range row {
			next[y*g.w+x] = f(x, y, c)
		}
	}
	return adopt(g.w, g.h, next)
}

// adopt wraps data without copying. The caller must hand over ownership of a
// slice holding exactly w*h cells.
func adopt(w, h int, data []Cell) Grid {
	return Grid{w: w, h: h, data: data}
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.w + x }

// Contains reports whether (x, y) lies inside the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y) without bounds reporting. Out of range
// coordinates are a caller bug and panic.
func (g Grid) At(x, y int) Cell { return g.data[y*g.w+x] }

// CellAt returns the cell at (x, y).
func (g Grid) CellAt(x, y int) (Cell, error) {
	if !g.Contains(x, y) {
		return Dead, &InvalidCoordinateError{X: x, Y: y, W: g.w, H: g.h}
	}
	return g.data[y*g.w+x], nil
}

// Alive counts the live cells in the whole grid.
func (g Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// Rows returns a fresh copy of the grid as rows of cells.
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.h)
	for y := range rows {
		row := make([]Cell, g.w)
		copy(row, g.data[y*g.w:(y+1)*g.w])
		rows[y] = row
	}
	return rows
}

// Encode writes the grid as 0/1 bytes into buf, growing it when needed, and
// returns the filled slice.
func (g Grid) Encode(buf []uint8) []uint8 {
	if cap(buf) < len(g.data) {
		buf = make([]uint8, len(g.data))
	}
	buf = buf[:len(g.data)]
	for i, c := range g.data {
		buf[i] = uint8(c)
	}
	return buf
}

// Equal reports whether both grids have the same dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	if g.w != o.w || g.h != o.h || len(g.data) != len(o.data) {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
