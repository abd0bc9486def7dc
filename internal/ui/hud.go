//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"cells/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudLineHeight = 16
	hudPadding    = 6
	hudCharWidth  = 6
)

// HUD prints the sim's parameter snapshot in the top-left corner.
type HUD struct {
	sim     core.Sim
	visible bool
	lines   []string
	bg      color.RGBA
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true, bg: color.RGBA{A: 200}}
}

// Update refreshes the cached lines and handles the toggle key.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.lines = []string{h.sim.Name()}
		return
	}
	h.lines = formatSnapshot(h.sim.Name(), provider.Parameters())
}

// Draw renders the panel when visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	widest := 0
	for _, l := range h.lines {
		if len(l) > widest {
			widest = len(l)
		}
	}
	w := float32(widest*hudCharWidth + 2*hudPadding)
	ht := float32(len(h.lines)*hudLineHeight + 2*hudPadding)
	vector.DrawFilledRect(screen, 0, 0, w, ht, h.bg, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(h.lines, "\n"), hudPadding, hudPadding)
}

func formatSnapshot(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return lines
}
