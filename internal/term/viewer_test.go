package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"cells/internal/sims/cells"
)

func newTestViewer(t *testing.T, w, h int) (*Viewer, *cells.Session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	cfg := cells.DefaultConfig()
	cfg.Width = 6
	cfg.Height = 4
	cfg.Seed = 5
	sim, err := cells.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return NewViewer(screen, sim, 25, 5), sim, screen
}

func rowText(screen tcell.SimulationScreen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawPaintsCellsAndStatus(t *testing.T) {
	v, sim, screen := newTestViewer(t, 80, 10)
	v.Draw()

	_, aliveBg, _ := v.aliveStyle.Decompose()
	_, deadBg, _ := v.deadStyle.Decompose()
	grid := sim.Grid()
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			want := deadBg
			if c, _ := grid.CellAt(x, y); c != 0 {
				want = aliveBg
			}
			for _, sx := range []int{2 * x, 2*x + 1} {
				_, _, style, _ := screen.GetContent(sx, y)
				if _, bg, _ := style.Decompose(); bg != want {
					t.Fatalf("screen (%d,%d) background %v, want %v", sx, y, bg, want)
				}
			}
		}
	}

	status := rowText(screen, grid.Height(), 80)
	if !strings.Contains(status, "rule=noise") || !strings.Contains(status, "gen=0") {
		t.Fatalf("status line = %q", status)
	}
}

func TestDrawClipsToSmallScreen(t *testing.T) {
	v, _, screen := newTestViewer(t, 5, 3)
	v.Draw()
	status := rowText(screen, 2, 5)
	if status != "cells" {
		t.Fatalf("status on a 5-wide screen = %q", status)
	}
}

func TestHandleKey(t *testing.T) {
	v, sim, _ := newTestViewer(t, 80, 10)

	if v.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) || !v.Paused() {
		t.Fatal("space should pause without quitting")
	}
	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if sim.Generation() != 1 {
		t.Fatalf("n should single-step, generation %d", sim.Generation())
	}
	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if sim.Generation() != 0 || sim.Seed() != 5 {
		t.Fatalf("r should reset with the same seed, got gen %d seed %d", sim.Generation(), sim.Seed())
	}
	if !v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !v.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
	if v.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Fatal("enter should be ignored")
	}
}

func TestResetReplaysClockSeed(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 10)

	cfg := cells.DefaultConfig()
	cfg.Width = 16
	cfg.Height = 8
	sim, err := cells.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	v := NewViewer(screen, sim, 25, cfg.Seed)

	seed := sim.Seed()
	board := sim.Grid()
	sim.Step()
	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if sim.Seed() != seed || !sim.Grid().Equal(board) {
		t.Fatalf("r with a clock seed gave seed %d, want %d and the same board", sim.Seed(), seed)
	}

	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	reseeded := sim.Seed()
	board = sim.Grid()
	sim.Step()
	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if sim.Seed() != reseeded || !sim.Grid().Equal(board) {
		t.Fatalf("r after s gave seed %d, want %d and the same board", sim.Seed(), reseeded)
	}
}
