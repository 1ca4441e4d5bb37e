package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rbright/cubicconf/internal/paths"
)

// LiveFileName is the absolute-path copy read by the server, under the resource root.
const LiveFileName = "cubicsvr.toml"

// ResolvePath applies CLI/XDG/home fallback rules for the editable config.toml location.
func ResolvePath(explicit string) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		return explicit, nil
	}

	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "cubicconf", "config.toml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("unable to resolve user home for config fallback")
	}

	return filepath.Join(home, ".config", "cubicconf", "config.toml"), nil
}

// LivePath returns the explicit live path or the default one under the resource root.
func LivePath(explicit string, roots paths.Roots) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return filepath.Join(roots.ResourceRoot, LiveFileName)
}
