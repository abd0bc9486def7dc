package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestDefaultPalettePremultiplies(t *testing.T) {
	buf := make([]byte, 8)
	DefaultPalette.Fill(buf, []uint8{1, 0})

	// White at alpha 20 premultiplies to 20 in every channel.
	if !slices.Equal(buf[:4], []byte{20, 20, 20, 20}) {
		t.Fatalf("alive pixel = %v", buf[:4])
	}
	if buf[7] != 10 {
		t.Fatalf("dead pixel alpha = %d, want 10", buf[7])
	}
	if buf[4] > buf[7] {
		t.Fatalf("premultiplied channel %d exceeds alpha %d", buf[4], buf[7])
	}
}
