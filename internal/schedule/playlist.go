package schedule

import (
	"fmt"

	"cells/internal/rules"
)

var defaultPlaylist = []rules.RuleSet{
	rules.Noise,
	rules.Geometric,
	rules.Pulsing,
	rules.Island,
	rules.Geometric4,
	rules.Camo,
	rules.Pulsing,
	rules.Geometric3,
	rules.Camo3,
	rules.Pulsing3,
	rules.Island,
	rules.Nice,
	rules.Camo2,
	rules.Pulsing3,
	rules.Island2,
	rules.Pulsing,
	rules.OK,
	rules.Dilating,
	rules.Life,
	rules.Pulsing2,
	rules.Geometric,
	rules.Pulsing,
	rules.Noise,
	rules.Geometric2,
	rules.Island,
	rules.GridRule,
	rules.Maze,
	rules.Camo,
	rules.Dilating,
	rules.Spotty,
	rules.OK,
	rules.Life,
	rules.Geometric4,
	rules.Maze,
	rules.Pulsing,
	rules.Island,
	rules.Geometric2,
	rules.Pulsing,
	rules.GridRule,
	rules.Maze,
	rules.Camo,
	rules.Dilating,
}

// DefaultPlaylist returns a fresh copy of the reference rotation.
func DefaultPlaylist() []rules.RuleSet {
	return append([]rules.RuleSet(nil), defaultPlaylist...)
}

// DefaultNames returns the rule names of the reference rotation in order.
func DefaultNames() []string {
	return Names(defaultPlaylist)
}

// Names maps a playlist to its rule names.
func Names(playlist []rules.RuleSet) []string {
	names := make([]string, len(playlist))
	for i, rs := range playlist {
		names[i] = rs.Name()
	}
	return names
}

// Resolve builds a playlist from catalog names. An empty list resolves to
// the default playlist.
func Resolve(names []string) ([]rules.RuleSet, error) {
	if len(names) == 0 {
		return DefaultPlaylist(), nil
	}
	playlist := make([]rules.RuleSet, 0, len(names))
	for i, name := range names {
		rs, err := rules.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("playlist entry %d: %w", i, err)
		}
		playlist = append(playlist, rs)
	}
	return playlist, nil
}
