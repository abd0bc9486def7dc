package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(25)
	fs.now = func() time.Time { return clock }

	if fs.Interval() != 40*time.Millisecond {
		t.Fatalf("interval = %v, want 40ms", fs.Interval())
	}
	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	clock = clock.Add(10 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not step 10ms into a 40ms tick")
	}
	clock = clock.Add(30 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should step once a full tick has elapsed")
	}

	// A long stall yields at most two catch-up ticks.
	clock = clock.Add(time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps != 2 {
		t.Fatalf("steps after stall = %d, want 2", steps)
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/DefaultTPS {
		t.Fatalf("interval = %v, want %v", fs.Interval(), time.Second/DefaultTPS)
	}
}
