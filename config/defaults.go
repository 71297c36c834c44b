package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "manaql.db")

	// Query guard defaults
	v.SetDefault("query.max_variations", 10000)
	v.SetDefault("query.cache_size", 4096)
	v.SetDefault("query.max_rows", 1000)

	// Logging defaults
	v.SetDefault("log.json", false)
}
