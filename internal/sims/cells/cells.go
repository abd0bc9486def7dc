// Package cells drives a rule-rotating cellular automaton: it owns the
// current grid and the rule scheduler and advances both once per tick.
package cells

import (
	"log/slog"
	"time"

	"cells/internal/core"
	"cells/internal/engine"
	"cells/internal/logging"
	"cells/internal/rules"
	"cells/internal/schedule"
	prng "cells/pkg/core"
)

// Session is the state a driver loop owns between ticks.
type Session struct {
	name string
	cfg  Config

	grid       core.Grid
	sched      *schedule.Scheduler
	seed       int64
	generation int
	display    []uint8

	log *slog.Logger
}

// New builds a session and seeds its first grid from cfg.Seed.
func New(cfg Config) (*Session, error) {
	playlist, err := schedule.Resolve(cfg.Playlist)
	if err != nil {
		return nil, err
	}
	sched, err := schedule.New(playlist, cfg.RotationPeriod)
	if err != nil {
		return nil, err
	}
	s := &Session{
		name:  "cells",
		cfg:   cfg,
		sched: sched,
		log:   logging.Discard(),
	}
	if err := s.reset(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// SetLogger routes rotation and reset events to l.
func (s *Session) SetLogger(l *slog.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	s.log = l
}

// Name returns the simulation identifier.
func (s *Session) Name() string { return s.name }

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return s.grid.Size() }

// Cells exposes the current grid as 0/1 bytes in row-major order. The
// buffer is reused across calls.
func (s *Session) Cells() []uint8 {
	s.display = s.grid.Encode(s.display)
	return s.display
}

// Grid returns the current generation.
func (s *Session) Grid() core.Grid { return s.grid }

// Active returns the rule set the next Step applies.
func (s *Session) Active() rules.RuleSet { return s.sched.Active() }

// Scheduler exposes the rule scheduler for inspection.
func (s *Session) Scheduler() *schedule.Scheduler { return s.sched }

// Generation returns the number of steps taken since the last reset.
func (s *Session) Generation() int { return s.generation }

// Seed returns the seed the current grid was built from.
func (s *Session) Seed() int64 { return s.seed }

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Reset reseeds the grid and rewinds the scheduler. A zero seed falls back
// to the configured seed, then to the clock.
func (s *Session) Reset(seed int64) {
	if err := s.reset(seed); err != nil {
		s.log.Error("reset failed", "seed", seed, "err", err)
	}
}

func (s *Session) reset(seed int64) error {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	if effective == 0 {
		effective = time.Now().UnixNano()
	}
	grid, err := engine.Initialize(s.cfg.Width, s.cfg.Height, s.cfg.AliveChance, prng.NewRNG(effective))
	if err != nil {
		return err
	}
	s.grid = grid
	s.seed = effective
	s.generation = 0
	s.sched.Reset()
	s.log.Info("grid seeded",
		"sim", s.name,
		"seed", effective,
		"size", s.cfg.Width*s.cfg.Height,
		"alive", grid.Alive(),
		"rule", s.sched.Active().Name())
	return nil
}

// Step replaces the grid with its next generation under the active rule and
// then counts the tick on the scheduler.
func (s *Session) Step() {
	s.grid = engine.Step(s.grid, s.sched.Active())
	prev := s.sched.Index()
	s.sched.Advance()
	s.generation++
	if idx := s.sched.Index(); idx != prev {
		s.log.Debug("rule rotated",
			"generation", s.generation,
			"index", idx,
			"rule", s.sched.Active().Name(),
			"alive", s.grid.Alive())
	}
}

// Parameters reports the session state for HUD and status line display.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.grid.Width()),
				core.IntParam("h", "Height", s.grid.Height()),
				core.Int64Param("seed", "Seed", s.seed),
				core.FloatParam("alive_chance", "Alive chance", s.cfg.AliveChance),
				core.IntParam("alive", "Alive", s.grid.Alive()),
				core.IntParam("generation", "Generation", s.generation),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", s.sched.Active().Name()),
				core.IntParam("index", "Playlist index", s.sched.Index()),
				core.IntParam("playlist_len", "Playlist length", s.sched.Len()),
				core.IntParam("ticks", "Ticks", s.sched.Ticks()),
				core.IntParam("rotation_period", "Rotation period", s.sched.Period()),
			},
		},
	}}
}

func init() {
	core.Register("cells", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
	for _, name := range rules.Names() {
		name := name
		core.Register("cells/"+name, func(cfg map[string]string) (core.Sim, error) {
			c := FromMap(cfg)
			c.Playlist = []string{name}
			s, err := New(c)
			if err != nil {
				return nil, err
			}
			s.name = "cells/" + name
			return s, nil
		})
	}
}
