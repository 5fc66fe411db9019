package configs

import "strings"

// Supported values of Storage.Driver.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Storage selects where the campaign collection and the view ledger are
// persisted. KeyPrefix names the two records: <prefix>_popups and
// <prefix>_viewed_popups.
type Storage struct {
	Driver    string `env:"DRIVER" envDefault:"memory"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"sniptaste"`
	// SeedDemo creates a demo catalog when the store is empty.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}

// NormalizedDriver lower-cases Driver. Unknown values are returned as-is so
// the caller can reject them.
func (s Storage) NormalizedDriver() string {
	return strings.ToLower(strings.TrimSpace(s.Driver))
}
