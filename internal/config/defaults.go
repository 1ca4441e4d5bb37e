package config

import "github.com/rbright/cubicconf/internal/paths"

// DefaultVersion is the schema marker written by this package.
const DefaultVersion = 5

// Default returns the canonical configuration used when no file is present.
func Default() Config {
	return Config{
		Paths:   paths.DefaultConfiguration(),
		Version: DefaultVersion,
	}
}

// New returns a default configuration bound to pathCfg with its directories provisioned.
func New(resolver *paths.Resolver, pathCfg paths.Configuration) (*Config, error) {
	cfg := Default()
	if _, err := cfg.SetPathConfiguration(resolver, pathCfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
