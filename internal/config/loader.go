package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if LARMOR_CONFIG is set
//  3. env (prefix LARMOR_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("LARMOR_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: LARMOR_CACHE_DIR, LARMOR_API_URL, ...
	// Map env keys like LARMOR_CACHE_DIR -> cache_dir (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("LARMOR_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "larmor_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.CacheDir == "" {
		return nil, fmt.Errorf("%w: cache_dir must not be empty", ErrInvalidConfig)
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("%w: api_url must not be empty", ErrInvalidConfig)
	}
	if cfg.StructureURL == "" {
		return nil, fmt.Errorf("%w: structure_url must not be empty", ErrInvalidConfig)
	}
	return &cfg, nil
}
