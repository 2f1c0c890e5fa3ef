// internal/corpus/presets.go
package corpus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xkilldash9x/typogen/internal/typo"
)

// Named rate presets for the demo driver. They differ only in the
// space, drop and word drop rates.
var presets = map[string]typo.Config{
	"balanced": {
		ErrorRate: 0.15, SwapRate: 0.5, AdjacentBias: 0.7,
		SpaceErrorRate: 0.1, DropRate: 0.2, WordDropRate: 0.05,
	},
	"aggressive": {
		ErrorRate: 0.15, SwapRate: 0.5, AdjacentBias: 0.7,
		SpaceErrorRate: 0.2, DropRate: 0.3, WordDropRate: 0.1,
	},
	"conservative": {
		ErrorRate: 0.15, SwapRate: 0.5, AdjacentBias: 0.7,
		SpaceErrorRate: 0.05, DropRate: 0.1, WordDropRate: 0.02,
	},
}

// Preset returns the named configuration. Names are case-insensitive.
func Preset(name string) (typo.Config, error) {
	cfg, ok := presets[strings.ToLower(name)]
	if !ok {
		return typo.Config{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return cfg, nil
}

// PresetNames lists the available presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
