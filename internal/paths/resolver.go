package paths

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Resolver maps a Configuration onto the host document directory and
// provisions the resulting directories.
type Resolver struct {
	// DocumentDir locates the standard document directory. Nil uses DocumentDir.
	DocumentDir func() (string, error)
	// Logger receives best-effort provisioning failures. Nil discards them.
	Logger *slog.Logger
}

// NewResolver returns a resolver backed by the host document directory.
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{DocumentDir: DocumentDir, Logger: logger}
}

// Roots computes the resource root and its license/models directories.
func (r *Resolver) Roots(cfg Configuration) (Roots, error) {
	if err := cfg.Check(); err != nil {
		return Roots{}, err
	}

	locate := DocumentDir
	if r != nil && r.DocumentDir != nil {
		locate = r.DocumentDir
	}
	docs, err := locate()
	if err != nil {
		if errors.Is(err, ErrEnvironmentUnavailable) {
			return Roots{}, err
		}
		return Roots{}, fmt.Errorf("%w: %v", ErrEnvironmentUnavailable, err)
	}
	if docs == "" {
		return Roots{}, ErrEnvironmentUnavailable
	}

	root := ToAbsolute(docs, cfg.ResourceRoot)
	return Roots{
		ResourceRoot: root,
		LicenseDir:   ToAbsolute(root, cfg.LicenseSubdir),
		ModelsDir:    ToAbsolute(root, cfg.ModelsSubdir),
	}, nil
}

// EnsureDirectories creates every missing directory with its parents.
// Failures are logged and skipped so the remaining directories are still attempted.
func (r *Resolver) EnsureDirectories(dirs ...string) {
	logger := r.logger()
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			continue
		}
		if err == nil {
			logger.Error("provision directory failed", "path", dir, "error", "path exists and is not a directory")
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("provision directory failed", "path", dir, "error", err.Error())
			continue
		}
		logger.Debug("provisioned directory", "path", dir)
	}
}

// Provision resolves the roots for cfg and makes sure they exist on disk.
func (r *Resolver) Provision(cfg Configuration) (Roots, error) {
	roots, err := r.Roots(cfg)
	if err != nil {
		r.logger().Error("resolve resource roots failed", "error", err.Error())
		return Roots{}, err
	}
	r.EnsureDirectories(roots.Dirs()...)
	return roots, nil
}

func (r *Resolver) logger() *slog.Logger {
	if r == nil || r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
