package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/rbright/cubicconf/internal/paths"
)

// ErrParse reports malformed configuration text.
var ErrParse = errors.New("malformed config text")

// ToText encodes cfg as-is. Paths are written exactly as held, so for the
// canonical model this is the relative view. No layout correction is applied.
func ToText(cfg Config) (string, error) {
	if r := cfg.Recognizer; r != nil && r.MaxAudioBytes != nil && *r.MaxAudioBytes > math.MaxInt64 {
		return "", fmt.Errorf("encode config: recognizer.MaxAudioBytes %d exceeds the TOML integer range", *r.MaxAudioBytes)
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(cfg); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}

// Load decodes text on top of Default. When override is non-nil it replaces
// the decoded path configuration and provisions its directories.
func Load(text string, resolver *paths.Resolver, override *paths.Configuration) (*Config, error) {
	cfg, _, err := decode(text)
	if err != nil {
		return nil, err
	}
	if override != nil {
		if _, err := cfg.SetPathConfiguration(resolver, *override); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// decode parses text and reports keys that no field consumed.
func decode(text string) (Config, []Warning, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(cfg.Models) == 0 {
		cfg.Models = nil
	}

	var warnings []Warning
	for _, key := range md.Undecoded() {
		warnings = append(warnings, Warning{Message: fmt.Sprintf("unknown key %q ignored", key.String())})
	}
	return cfg, warnings, nil
}
