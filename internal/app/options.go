package app

// Options configures the GUI window.
type Options struct {
	Scale int
	TPS   int
	Seed  int64
	// Trails draws translucent frames over the previous ones instead of
	// clearing the screen.
	Trails bool
}
