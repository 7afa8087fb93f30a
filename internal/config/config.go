// Package config defines fetcher configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// CacheDir is the directory holding cached entries and structures.
	CacheDir string `koanf:"cache_dir"`

	// APIURL is the archive API base URL.
	APIURL string `koanf:"api_url"`

	// StructureURL is the structure download base URL.
	StructureURL string `koanf:"structure_url"`

	// HTTPTimeoutMS bounds individual remote calls.
	HTTPTimeoutMS int `koanf:"http_timeout_ms"`

	// MetricsAddr configures the Prometheus exposition listener,
	// e.g. ":9090". Empty disables it.
	MetricsAddr string `koanf:"metrics_addr"`

	// Entries overrides the seed catalog with explicit archive IDs.
	Entries []int `koanf:"entries"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		CacheDir:      "./bmrb_data",
		APIURL:        "https://api.bmrb.io/v2",
		StructureURL:  "https://files.rcsb.org/download",
		HTTPTimeoutMS: 30_000,
		MetricsAddr:   "",
	}
}
