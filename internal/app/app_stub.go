//go:build !ebiten

package app

import (
	"errors"

	"cells/internal/core"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the GUI requires building with -tags ebiten")

// Run reports that the GUI build tag is missing.
func Run(core.Sim, Options) error {
	return ErrNoGUI
}
