// Package config loads manaql configuration with Viper.
//
// Configuration is read from ~/.manaql/config.toml when present, with
// MANAQL_-prefixed environment variables overriding file values and
// package defaults filling the rest.
package config

// Config represents the manaql configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Query    QueryConfig    `mapstructure:"query"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig configures the SQLite card database
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// QueryConfig bounds the mana SQL functions.
//
// Comparing two costs examines the cross product of their interpretations,
// which is exponential in the number of hybrid groups. A hostile cost like
// {1/2/3/4/5} repeated four times yields 625 variations per side; the cap
// refuses comparisons whose combined product exceeds it instead of letting
// a table scan run away.
type QueryConfig struct {
	MaxVariations int `mapstructure:"max_variations"` // cap on left×right interpretation product (default: 10000)
	CacheSize     int `mapstructure:"cache_size"`     // parsed-cost LRU entries (default: 4096)
	MaxRows       int `mapstructure:"max_rows"`       // rows rendered per query, 0 = unlimited (default: 1000)
}

// LogConfig configures logger output
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}
