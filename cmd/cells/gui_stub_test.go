//go:build !ebiten

package main

import (
	"errors"
	"testing"

	"cells/internal/app"
)

func TestGUIRequiresBuildTag(t *testing.T) {
	_, _, err := execute(t, "gui", "--screen-width", "40", "--screen-height", "30", "--seed", "1")
	if !errors.Is(err, app.ErrNoGUI) {
		t.Fatalf("expected ErrNoGUI, got %v", err)
	}
}
