// internal/typo/config.go
package typo

import (
	"math/rand"
)

// Source is the random number stream consumed by the engine.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// Config holds the probabilities that drive the typo simulation.
//
// Every rate is nominally in [0, 1]. Values outside that range are accepted and
// simply saturate the corresponding decision (always or never taken).
type Config struct {
	// ErrorRate is the chance that a surviving word receives any mutation.
	ErrorRate float64 `json:"error_rate" yaml:"error_rate" mapstructure:"error_rate"`
	// SwapRate is the chance that a non-drop mutation is swap-family rather than
	// the traditional transposition/substitution coin flip.
	SwapRate float64 `json:"swap_rate" yaml:"swap_rate" mapstructure:"swap_rate"`
	// AdjacentBias is the chance that a swap-family mutation uses a keyboard
	// neighbor instead of the digraph table.
	AdjacentBias float64 `json:"adjacent_bias" yaml:"adjacent_bias" mapstructure:"adjacent_bias"`
	// SpaceErrorRate is the chance that the joined output gets a spacing mistake.
	SpaceErrorRate float64 `json:"space_error_rate" yaml:"space_error_rate" mapstructure:"space_error_rate"`
	// DropRate is the chance that a word's mutation is a dropped letter.
	DropRate float64 `json:"drop_rate" yaml:"drop_rate" mapstructure:"drop_rate"`
	// WordDropRate is the chance that a word is removed entirely.
	WordDropRate float64 `json:"word_drop_rate" yaml:"word_drop_rate" mapstructure:"word_drop_rate"`

	// Seed makes the engine reproducible when non-zero.
	Seed int64 `json:"seed" yaml:"seed" mapstructure:"seed"`
	// Rng overrides Seed when set.
	Rng Source `json:"-" yaml:"-" mapstructure:"-"`
}

// Default rates, matching an average typist.
const (
	DefaultErrorRate      = 0.15
	DefaultSwapRate       = 0.5
	DefaultAdjacentBias   = 0.7
	DefaultSpaceErrorRate = 0.1
	DefaultDropRate       = 0.2
	DefaultWordDropRate   = 0.1
)

// DefaultConfig returns the documented default rates.
func DefaultConfig() Config {
	return Config{
		ErrorRate:      DefaultErrorRate,
		SwapRate:       DefaultSwapRate,
		AdjacentBias:   DefaultAdjacentBias,
		SpaceErrorRate: DefaultSpaceErrorRate,
		DropRate:       DefaultDropRate,
		WordDropRate:   DefaultWordDropRate,
	}
}

// RandomConfig draws all six rates uniformly from [0, 1).
func RandomConfig(rng Source) Config {
	return Config{
		ErrorRate:      rng.Float64(),
		SwapRate:       rng.Float64(),
		AdjacentBias:   rng.Float64(),
		SpaceErrorRate: rng.Float64(),
		DropRate:       rng.Float64(),
		WordDropRate:   rng.Float64(),
	}
}

// Rates returns the six probabilities keyed by their configuration names.
func (c Config) Rates() map[string]float64 {
	return map[string]float64{
		"error_rate":       c.ErrorRate,
		"swap_rate":        c.SwapRate,
		"adjacent_bias":    c.AdjacentBias,
		"space_error_rate": c.SpaceErrorRate,
		"drop_rate":        c.DropRate,
		"word_drop_rate":   c.WordDropRate,
	}
}

// OutOfRange lists the names of rates outside [0, 1]. The engine accepts
// such values; callers use this for diagnostics only.
func (c Config) OutOfRange() []string {
	var names []string
	rates := c.Rates()
	for _, name := range rateNames {
		if v := rates[name]; v < 0 || v > 1 {
			names = append(names, name)
		}
	}
	return names
}

// rateNames fixes the reporting order of Rates.
var rateNames = []string{
	"error_rate", "swap_rate", "adjacent_bias",
	"space_error_rate", "drop_rate", "word_drop_rate",
}

// newSource resolves the random stream for a config.
func newSource(c Config, fallbackSeed int64) Source {
	if c.Rng != nil {
		return c.Rng
	}
	seed := c.Seed
	if seed == 0 {
		seed = fallbackSeed
	}
	return rand.New(rand.NewSource(seed))
}
