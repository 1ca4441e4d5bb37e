package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rbright/cubicconf/internal/paths"
)

// Render encodes cfg and applies the section layout correction.
func Render(cfg Config) (string, error) {
	text, err := ToText(cfg)
	if err != nil {
		return "", err
	}
	return correctLayout(text), nil
}

// Save writes the absolute view of cfg to destination and returns the relative
// view as text. Both views carry the corrected section layout.
//
// Save does not coordinate with other writers: concurrent saves to the same
// destination must be serialized by the caller.
func Save(resolver *paths.Resolver, cfg Config, destination string) (string, error) {
	roots, err := resolver.Roots(cfg.Paths)
	if err != nil {
		return "", fmt.Errorf("save config: %w", err)
	}

	live, err := Render(cfg.AbsoluteView(roots))
	if err != nil {
		return "", err
	}
	relative, err := Render(cfg)
	if err != nil {
		return "", err
	}

	if err := writeFileAtomic(destination, []byte(live)); err != nil {
		return "", fmt.Errorf("write config %q: %w", destination, err)
	}
	return relative, nil
}

// WriteText atomically writes already-rendered text, e.g. the relative view
// returned by Save, to path.
func WriteText(path, text string) error {
	if err := writeFileAtomic(path, []byte(text)); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	return nil
}

// writeFileAtomic replaces path through a sibling temp file and rename, so a
// reader sees either the previous file or the complete new one.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
