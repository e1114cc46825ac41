package configs

import "time"

// Cache configures memoization of computed metrics.
type Cache struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// MaxCost is the maximum number of cached entries.
	MaxCost int64         `env:"MAX_COST" envDefault:"10000"`
	TTL     time.Duration `env:"TTL" envDefault:"10m"`
}

// Redis configures the optional shared cache tier. An empty Addr disables
// it.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}
