package core

import "fmt"

// InvalidGridError reports a grid that cannot be constructed: zero rows or
// columns, or rows of differing length.
type InvalidGridError struct {
	Width, Height int
	Reason        string
}

func (e *InvalidGridError) Error() string {
	return fmt.Sprintf("invalid %dx%d grid: %s", e.Width, e.Height, e.Reason)
}

// InvalidCoordinateError reports a coordinate outside the grid.
type InvalidCoordinateError struct {
	X, Y int
	W, H int
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("coordinate (%d,%d) outside %dx%d grid", e.X, e.Y, e.W, e.H)
}
