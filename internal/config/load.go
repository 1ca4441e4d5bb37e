package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rbright/cubicconf/internal/paths"
)

// Loaded captures resolved config path, decoded values, and non-fatal warnings.
type Loaded struct {
	Path     string
	Config   Config
	Warnings []Warning
	Exists   bool
}

// LoadFile resolves, reads, and decodes the editable configuration. A missing
// file yields defaults with a warning. A non-nil override replaces the path
// configuration and provisions its directories.
func LoadFile(explicitPath string, resolver *paths.Resolver, override *paths.Configuration) (Loaded, error) {
	resolvedPath, err := ResolvePath(explicitPath)
	if err != nil {
		return Loaded{}, err
	}

	content, err := os.ReadFile(resolvedPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Loaded{}, fmt.Errorf("read config %q: %w", resolvedPath, err)
		}

		base := Default()
		if override != nil {
			if _, err := base.SetPathConfiguration(resolver, *override); err != nil {
				return Loaded{}, err
			}
		}
		return Loaded{
			Path:   resolvedPath,
			Config: base,
			Warnings: []Warning{{
				Message: fmt.Sprintf("config file %q not found; using defaults", resolvedPath),
			}},
			Exists: false,
		}, nil
	}

	cfg, warnings, err := decode(string(content))
	if err != nil {
		return Loaded{}, fmt.Errorf("parse config %q: %w", resolvedPath, err)
	}
	if override != nil {
		if _, err := cfg.SetPathConfiguration(resolver, *override); err != nil {
			return Loaded{}, err
		}
	}

	return Loaded{
		Path:     resolvedPath,
		Config:   cfg,
		Warnings: warnings,
		Exists:   true,
	}, nil
}
