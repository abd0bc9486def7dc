// Package term renders a simulation in a terminal using two character cells
// per grid cell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"cells/internal/core"
)

// Viewer draws a sim onto a tcell screen and handles keyboard control.
type Viewer struct {
	screen tcell.Screen
	sim    core.Sim
	timer  *core.FixedStep
	seed   int64
	paused bool

	aliveStyle  tcell.Style
	deadStyle   tcell.Style
	statusStyle tcell.Style
}

// NewViewer binds sim to an initialized screen.
func NewViewer(screen tcell.Screen, sim core.Sim, tps int, seed int64) *Viewer {
	return &Viewer{
		screen:      screen,
		sim:         sim,
		timer:       core.NewFixedStep(tps),
		seed:        core.CurrentSeed(sim, seed),
		aliveStyle:  tcell.StyleDefault.Background(tcell.ColorWhite),
		deadStyle:   tcell.StyleDefault.Background(tcell.NewRGBColor(55, 55, 55)),
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// Paused reports whether automatic stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Run steps and redraws until ctx is cancelled or the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(v.timer.Interval() / 2)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return nil
				}
				v.Draw()
			case *tcell.EventResize:
				v.screen.Sync()
				v.Draw()
			}
		case <-ticker.C:
			if v.paused || !v.timer.ShouldStep() {
				continue
			}
			v.sim.Step()
			v.Draw()
		}
	}
}

// HandleKey applies a key press and reports whether the viewer should quit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.sim.Step()
	case 'r':
		v.sim.Reset(v.seed)
	case 's':
		seed := time.Now().UnixNano()
		v.sim.Reset(seed)
		v.seed = core.CurrentSeed(v.sim, seed)
	}
	return false
}

// Draw paints the grid clipped to the screen, with a status line below it.
func (v *Viewer) Draw() {
	sw, sh := v.screen.Size()
	size := v.sim.Size()
	rows := min(size.H, sh-1)
	cols := min(size.W, sw/2)
	cells := v.sim.Cells()

	v.screen.Clear()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			style := v.deadStyle
			if cells[y*size.W+x] != 0 {
				style = v.aliveStyle
			}
			v.screen.SetContent(2*x, y, ' ', nil, style)
			v.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
	if rows >= 0 {
		v.drawText(0, rows, v.status())
	}
	v.screen.Show()
}

func (v *Viewer) status() string {
	line := v.sim.Name()
	if p, ok := v.sim.(core.ParameterProvider); ok {
		snap := p.Parameters()
		rule, _ := snap.Lookup("rule")
		gen, _ := snap.Lookup("generation")
		alive, _ := snap.Lookup("alive")
		line = fmt.Sprintf("%s rule=%s gen=%s alive=%s", line, rule, gen, alive)
	}
	if v.paused {
		line += " [paused]"
	}
	return line + "  space:pause n:step r:reset s:reseed q:quit"
}

func (v *Viewer) drawText(x, y int, s string) {
	sw, _ := v.screen.Size()
	for _, r := range s {
		if x >= sw {
			return
		}
		v.screen.SetContent(x, y, r, nil, v.statusStyle)
		x++
	}
}
