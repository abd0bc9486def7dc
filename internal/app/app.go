//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"time"

	"cells/internal/core"
	"cells/internal/render"
	"cells/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	size := sim.Size()
	palette := render.DefaultPalette
	if !opts.Trails {
		palette = render.OpaquePalette
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, palette),
		hud:     ui.NewHUD(sim),
		scale:   opts.Scale,
		seed:    core.CurrentSeed(sim, opts.Seed),
	}
}

// Run opens a window and drives sim until the window closes or q is pressed.
func Run(sim core.Sim, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	game := New(sim, opts)
	size := sim.Size()

	ebiten.SetWindowTitle("cells: " + sim.Name())
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(size.W*opts.Scale, size.H*opts.Scale)
	ebiten.SetScreenClearedEveryFrame(!opts.Trails)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// Reset reinitializes the simulation state with the provided seed and
// remembers the seed the sim resolved it to, so r replays the same board.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.seed = core.CurrentSeed(g.sim, seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
