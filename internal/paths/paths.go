// Package paths resolves the resource root and its license/models directories.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrEnvironmentUnavailable reports that the standard document location cannot be resolved.
	ErrEnvironmentUnavailable = errors.New("document directory unavailable")
	// ErrInvalidConfiguration reports an empty or non-relative path configuration segment.
	ErrInvalidConfiguration = errors.New("invalid path configuration")
)

// Configuration names the resource root under the document directory and its
// license/models subdirectories. All three are relative segments.
type Configuration struct {
	ResourceRoot  string
	LicenseSubdir string
	ModelsSubdir  string
}

// DefaultConfiguration returns the layout used when none is supplied.
func DefaultConfiguration() Configuration {
	return Configuration{
		ResourceRoot:  "Cubicsvr",
		LicenseSubdir: "license",
		ModelsSubdir:  "models",
	}
}

// Check rejects empty or absolute segments.
func (c Configuration) Check() error {
	segments := []struct {
		name  string
		value string
	}{
		{"resource root", c.ResourceRoot},
		{"license subdir", c.LicenseSubdir},
		{"models subdir", c.ModelsSubdir},
	}
	for _, s := range segments {
		if strings.TrimSpace(s.value) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidConfiguration, s.name)
		}
		if filepath.IsAbs(s.value) {
			return fmt.Errorf("%w: %s %q is absolute", ErrInvalidConfiguration, s.name, s.value)
		}
	}
	return nil
}

// Roots are the absolute directories derived from a Configuration.
type Roots struct {
	ResourceRoot string
	LicenseDir   string
	ModelsDir    string
}

// Dirs lists every directory that provisioning must create.
func (r Roots) Dirs() []string {
	return []string{r.ResourceRoot, r.LicenseDir, r.ModelsDir}
}

// ToAbsolute joins a relative segment onto root. It never touches the filesystem.
func ToAbsolute(root, relative string) string {
	return filepath.Join(root, relative)
}

// DocumentDir selects XDG_DOCUMENTS_DIR when available, otherwise ~/Documents.
func DocumentDir() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", ErrEnvironmentUnavailable
	}
	return filepath.Join(home, "Documents"), nil
}
