// File: cmd/flags.go
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/typogen/internal/config"
	"github.com/xkilldash9x/typogen/internal/observability"
	"github.com/xkilldash9x/typogen/internal/typo"
)

// rateFlags maps flag names onto the typo.Config field they override.
var rateFlags = []struct {
	name  string
	usage string
	field func(*typo.Config) *float64
}{
	{"error-rate", "probability that a word receives an error", func(c *typo.Config) *float64 { return &c.ErrorRate }},
	{"swap-rate", "probability of a swap-family error over a traditional one", func(c *typo.Config) *float64 { return &c.SwapRate }},
	{"adjacent-bias", "probability of a neighboring key over a digraph swap", func(c *typo.Config) *float64 { return &c.AdjacentBias }},
	{"space-error-rate", "probability of a spacing error per text", func(c *typo.Config) *float64 { return &c.SpaceErrorRate }},
	{"drop-rate", "probability that an error is a dropped letter", func(c *typo.Config) *float64 { return &c.DropRate }},
	{"word-drop-rate", "probability that a word is dropped", func(c *typo.Config) *float64 { return &c.WordDropRate }},
}

// addTypoFlags registers the rate overrides and a --seed flag on cmd.
func addTypoFlags(cmd *cobra.Command) {
	defaults := typo.DefaultConfig()
	for _, f := range rateFlags {
		cmd.Flags().Float64(f.name, *f.field(&defaults), f.usage+" (overrides config/env)")
	}
	cmd.Flags().Int64("seed", 0, "random seed; 0 picks a time based seed (overrides config/env)")
}

// applyTypoFlags copies explicitly set flags into cfg's typo section.
// Unset flags leave the configured values alone. Rates outside [0,1], from
// any source, are reported once the flags are merged.
func applyTypoFlags(cmd *cobra.Command, cfg config.Interface) error {
	tc := cfg.Typo()
	for _, f := range rateFlags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(f.name)
		if err != nil {
			return err
		}
		*f.field(&tc) = v
	}
	if cmd.Flags().Changed("seed") {
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}
		tc.Seed = seed
	}
	cfg.SetTypoConfig(tc)
	warnOutOfRangeRates(observability.GetLogger(), tc)
	return nil
}

// warnOutOfRangeRates logs rates outside [0,1]. They are still used as given.
func warnOutOfRangeRates(logger *zap.Logger, tc typo.Config) {
	bad := tc.OutOfRange()
	if len(bad) == 0 {
		return
	}
	rates := tc.Rates()
	fields := make([]zap.Field, 0, len(bad))
	for _, name := range bad {
		fields = append(fields, zap.Float64(name, rates[name]))
	}
	logger.Warn("Typo rates outside [0,1] saturate to always or never.", fields...)
}
