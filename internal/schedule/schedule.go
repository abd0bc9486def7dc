// Package schedule rotates through a playlist of rule sets, holding each one
// active for a fixed number of generations.
package schedule

import (
	"errors"
	"fmt"

	"cells/internal/rules"
)

// DefaultPeriod is the number of generations a rule stays active.
const DefaultPeriod = 50

var (
	// ErrEmptyPlaylist is returned when a scheduler is built without rules.
	ErrEmptyPlaylist = errors.New("playlist is empty")
	// ErrInvalidPeriod is returned for rotation periods below one.
	ErrInvalidPeriod = errors.New("rotation period must be at least 1")
)

// Scheduler tracks the active playlist entry and the generations spent on it.
type Scheduler struct {
	playlist []rules.RuleSet
	index    int
	ticks    int
	period   int
}

// New returns a scheduler at index 0 with no ticks counted. The playlist is
// copied.
func New(playlist []rules.RuleSet, period int) (*Scheduler, error) {
	if len(playlist) == 0 {
		return nil, ErrEmptyPlaylist
	}
	if period < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPeriod, period)
	}
	for i, rs := range playlist {
		if rs == nil {
			return nil, fmt.Errorf("playlist entry %d is nil", i)
		}
	}
	return &Scheduler{
		playlist: append([]rules.RuleSet(nil), playlist...),
		period:   period,
	}, nil
}

// Active returns the rule set for the current generation.
func (s *Scheduler) Active() rules.RuleSet { return s.playlist[s.index] }

// Advance counts one generation and moves to the next playlist entry once
// the period is reached, wrapping after the last one.
func (s *Scheduler) Advance() {
	s.ticks++
	if s.ticks < s.period {
		return
	}
	s.ticks = 0
	s.index = (s.index + 1) % len(s.playlist)
}

// Reset returns to the first playlist entry with no ticks counted.
func (s *Scheduler) Reset() {
	s.index = 0
	s.ticks = 0
}

// Index returns the active playlist position.
func (s *Scheduler) Index() int { return s.index }

// Ticks returns the generations counted since the last rotation.
func (s *Scheduler) Ticks() int { return s.ticks }

// Period returns the rotation period.
func (s *Scheduler) Period() int { return s.period }

// Len returns the playlist length.
func (s *Scheduler) Len() int { return len(s.playlist) }

// Playlist returns a copy of the playlist.
func (s *Scheduler) Playlist() []rules.RuleSet {
	return append([]rules.RuleSet(nil), s.playlist...)
}
