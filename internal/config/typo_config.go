// File: internal/config/typo_config.go
// Defaults for the typo engine section. The engine's own constants are the
// source of truth so the CLI and library callers agree on an "average typist".
package config

import (
	"github.com/spf13/viper"

	"github.com/xkilldash9x/typogen/internal/typo"
)

// setTypoDefaults registers the typo.* keys.
func setTypoDefaults(v *viper.Viper) {
	v.SetDefault("typo.error_rate", typo.DefaultErrorRate)
	v.SetDefault("typo.swap_rate", typo.DefaultSwapRate)
	v.SetDefault("typo.adjacent_bias", typo.DefaultAdjacentBias)
	v.SetDefault("typo.space_error_rate", typo.DefaultSpaceErrorRate)
	v.SetDefault("typo.drop_rate", typo.DefaultDropRate)
	v.SetDefault("typo.word_drop_rate", typo.DefaultWordDropRate)
	v.SetDefault("typo.seed", 0)
}
