package core

import (
	"errors"
	"slices"
	"testing"
)

func mustGrid(t *testing.T, rows [][]Cell) Grid {
	t.Helper()
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestNewGridRejectsInvalidShapes(t *testing.T) {
	cases := map[string][][]Cell{
		"no rows":    nil,
		"no columns": {{}, {}},
		"ragged":     {{Dead, Alive}, {Dead}},
	}
	for name, rows := range cases {
		_, err := NewGrid(rows)
		var gridErr *InvalidGridError
		if !errors.As(err, &gridErr) {
			t.Fatalf("%s: expected InvalidGridError, got %v", name, err)
		}
	}

	if _, err := NewFilledGrid(0, 3, Dead); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := FromCells(2, 2, make([]Cell, 3)); err == nil {
		t.Fatal("expected error for cell count mismatch")
	}
}

func TestGridCopiesInput(t *testing.T) {
	rows := [][]Cell{{Alive, Dead}, {Dead, Dead}}
	g := mustGrid(t, rows)
	rows[0][0] = Dead

	if got := g.At(0, 0); got != Alive {
		t.Fatalf("grid changed after caller mutated rows: got %v", got)
	}

	out := g.Rows()
	out[1][1] = Alive
	if got := g.At(1, 1); got != Dead {
		t.Fatalf("grid changed after mutating Rows() result: got %v", got)
	}
}

func TestCellAtBounds(t *testing.T) {
	g := mustGrid(t, [][]Cell{{Dead, Alive, Dead}, {Alive, Dead, Dead}})
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("unexpected size %dx%d", g.Width(), g.Height())
	}
	c, err := g.CellAt(1, 0)
	if err != nil || c != Alive {
		t.Fatalf("CellAt(1,0) = %v, %v; want alive", c, err)
	}
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		_, err := g.CellAt(p[0], p[1])
		var coordErr *InvalidCoordinateError
		if !errors.As(err, &coordErr) {
			t.Fatalf("CellAt(%d,%d): expected InvalidCoordinateError, got %v", p[0], p[1], err)
		}
	}
}

func TestWindowSizes(t *testing.T) {
	const w, h = 6, 5
	g, err := NewFilledGrid(w, h, Dead)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			win, err := Sample(g, x, y)
			if err != nil {
				t.Fatalf("Sample(%d,%d): %v", x, y, err)
			}
			edgeX := x == 0 || x == w-1
			edgeY := y == 0 || y == h-1
			want := 9
			switch {
			case edgeX && edgeY:
				want = 4
			case edgeX || edgeY:
				want = 6
			}
			if win.Size() != want {
				t.Fatalf("window at (%d,%d) has %d cells, want %d", x, y, win.Size(), want)
			}
		}
	}
}

func TestSampleIncludesSelf(t *testing.T) {
	cells := make([]Cell, 25)
	cells[2*5+2] = Alive
	g, err := FromCells(5, 5, cells)
	if err != nil {
		t.Fatal(err)
	}
	win, err := Sample(g, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if win.Alive != 1 {
		t.Fatalf("alive count at the lone live cell = %d, want 1", win.Alive)
	}
	want := []Cell{Dead, Dead, Dead, Dead, Alive, Dead, Dead, Dead, Dead}
	if !slices.Equal(win.Cells, want) {
		t.Fatalf("window cells = %v, want %v", win.Cells, want)
	}
}

func TestSampleClipsWithoutWrapping(t *testing.T) {
	g := mustGrid(t, [][]Cell{
		{Alive, Dead, Dead, Alive},
		{Dead, Dead, Dead, Dead},
		{Alive, Dead, Dead, Alive},
	})
	win, err := Sample(g, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Only the left column counts; the right column would join on a torus.
	if win.Alive != 2 {
		t.Fatalf("alive at (0,1) = %d, want 2", win.Alive)
	}
	if _, err := Sample(g, 4, 0); err == nil {
		t.Fatal("expected error sampling outside the grid")
	}
}

func TestAliveAroundMatchesSample(t *testing.T) {
	g := mustGrid(t, [][]Cell{
		{Alive, Alive, Dead, Alive, Dead},
		{Dead, Alive, Alive, Dead, Dead},
		{Alive, Dead, Alive, Alive, Alive},
		{Dead, Dead, Alive, Dead, Alive},
	})
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			win, err := Sample(g, x, y)
			if err != nil {
				t.Fatal(err)
			}
			if got := g.AliveAround(x, y); got != win.Alive {
				t.Fatalf("AliveAround(%d,%d) = %d, Sample says %d", x, y, got, win.Alive)
			}
		}
	}
}

func TestSingleCellWindow(t *testing.T) {
	g := mustGrid(t, [][]Cell{{Alive}})
	win, err := Sample(g, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if win.Size() != 1 || win.Alive != 1 {
		t.Fatalf("1x1 window = %d cells, %d alive; want 1, 1", win.Size(), win.Alive)
	}
}

func TestEncodeReusesBuffer(t *testing.T) {
	g := mustGrid(t, [][]Cell{{Alive, Dead}, {Dead, Alive}})
	buf := make([]uint8, 0, 8)
	out := g.Encode(buf)
	if !slices.Equal(out, []uint8{1, 0, 0, 1}) {
		t.Fatalf("Encode = %v", out)
	}
	if &out[0] != &buf[:1][0] {
		t.Fatal("Encode should reuse a buffer with enough capacity")
	}
	if g.Alive() != 2 {
		t.Fatalf("Alive() = %d, want 2", g.Alive())
	}
}

func TestNextReadsSourceGrid(t *testing.T) {
	g := mustGrid(t, [][]Cell{{Alive, Dead, Dead}, {Dead, Alive, Dead}})
	next := g.Next(func(x, y int, c Cell) Cell {
		if c == Alive {
			return Dead
		}
		return Alive
	})
	want := mustGrid(t, [][]Cell{{Dead, Alive, Alive}, {Alive, Dead, Alive}})
	if !next.Equal(want) {
		t.Fatalf("Next = %v, want %v", next.Rows(), want.Rows())
	}
	if g.At(0, 0) != Alive || g.Alive() != 2 {
		t.Fatal("Next modified its source grid")
	}
	if z := (Grid{}).Next(func(x, y int, c Cell) Cell { return Alive }); z.Size() != (Size{}) {
		t.Fatalf("zero grid Next has size %+v", z.Size())
	}
}
