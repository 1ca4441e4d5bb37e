// Package doctor runs readiness diagnostics for the resource layout, license, models, and server endpoint.
package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rbright/cubicconf/internal/config"
	"github.com/rbright/cubicconf/internal/paths"
	"github.com/rbright/cubicconf/internal/probe"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// Options selects optional network checks. Probe checks the gRPC listener and,
// when configured, the HTTP ops listener.
type Options struct {
	Probe   bool
	Timeout time.Duration
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes layout/license/model checks for a loaded config.
func Run(ctx context.Context, loaded config.Loaded, resolver *paths.Resolver, opts Options) Report {
	checks := []Check{configCheck(loaded)}
	cfg := loaded.Config

	roots, err := resolver.Roots(cfg.Paths)
	if err != nil {
		checks = append(checks, Check{Name: "paths", Pass: false, Message: err.Error()})
		return Report{Checks: checks}
	}

	checks = append(checks,
		checkDir("resource_root", roots.ResourceRoot),
		checkDir("license_dir", roots.LicenseDir),
		checkDir("models_dir", roots.ModelsDir),
		checkLicense(cfg, roots),
	)
	checks = append(checks, checkModels(cfg, roots)...)

	if opts.Probe {
		checks = append(checks, checkGRPC(ctx, cfg, opts.Timeout))
		if check, ok := checkOps(ctx, cfg, opts.Timeout); ok {
			checks = append(checks, check)
		}
	}

	return Report{Checks: checks}
}

func configCheck(loaded config.Loaded) Check {
	if !loaded.Exists {
		return Check{Name: "config", Pass: true, Message: fmt.Sprintf("%q not found; using defaults", loaded.Path)}
	}
	return Check{Name: "config", Pass: true, Message: fmt.Sprintf("loaded %q", loaded.Path)}
}

// checkDir validates that path exists and is a directory.
func checkDir(name, path string) Check {
	info, err := os.Stat(path)
	if err != nil {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("missing directory %s", path)}
	}
	if !info.IsDir() {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("not a directory: %s", path)}
	}
	return Check{Name: name, Pass: true, Message: path}
}

// checkFile validates that path exists and is a regular file.
func checkFile(name, path string) Check {
	info, err := os.Stat(path)
	if err != nil {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("file not found: %s", path)}
	}
	if info.IsDir() {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("expected file, found directory: %s", path)}
	}
	return Check{Name: name, Pass: true, Message: path}
}

func checkLicense(cfg config.Config, roots paths.Roots) Check {
	if strings.TrimSpace(cfg.License.KeyFile) == "" {
		return Check{Name: "license.KeyFile", Pass: false, Message: "license key file is not set"}
	}
	return checkFile("license.KeyFile", paths.ToAbsolute(roots.LicenseDir, cfg.License.KeyFile))
}

// checkModels validates each model's files and reports duplicate ids.
func checkModels(cfg config.Config, roots paths.Roots) []Check {
	if len(cfg.Models) == 0 {
		return []Check{{Name: "models", Pass: false, Message: "no models configured"}}
	}

	checks := make([]Check, 0, len(cfg.Models)+1)
	if dups := cfg.DuplicateModelIDs(); len(dups) > 0 {
		checks = append(checks, Check{
			Name:    "models.ID",
			Pass:    false,
			Message: fmt.Sprintf("duplicate model ids: %s", strings.Join(dups, ", ")),
		})
	} else {
		checks = append(checks, Check{Name: "models.ID", Pass: true, Message: fmt.Sprintf("%d unique ids", len(cfg.Models))})
	}

	for _, m := range cfg.Models {
		checks = append(checks, checkFile("model "+m.ID, paths.ToAbsolute(roots.ModelsDir, m.ModelConfigPath)))
		if m.FormatterConfigPath != nil {
			checks = append(checks, checkFile("formatter "+m.ID, paths.ToAbsolute(roots.ModelsDir, *m.FormatterConfigPath)))
		}
	}
	return checks
}

// checkGRPC probes the configured gRPC listener.
func checkGRPC(ctx context.Context, cfg config.Config, timeout time.Duration) Check {
	addr := cfg.Server.GRPC.Address
	if addr == nil || strings.TrimSpace(*addr) == "" {
		return Check{Name: "server.grpc", Pass: false, Message: "server.grpc.Address is not set"}
	}
	if err := probe.GRPCReady(ctx, *addr, timeout); err != nil {
		return Check{Name: "server.grpc", Pass: false, Message: err.Error()}
	}
	return Check{Name: "server.grpc", Pass: true, Message: fmt.Sprintf("ready at %s", *addr)}
}

// checkOps probes the HTTP ops listener. ok is false when none is configured.
func checkOps(ctx context.Context, cfg config.Config, timeout time.Duration) (Check, bool) {
	srv := cfg.Server.HTTP
	if srv == nil || srv.Ops == nil || srv.Ops.Address == nil || strings.TrimSpace(*srv.Ops.Address) == "" {
		return Check{}, false
	}
	addr := *srv.Ops.Address
	if err := probe.HTTPReady(ctx, addr, timeout); err != nil {
		return Check{Name: "server.http.ops", Pass: false, Message: err.Error()}, true
	}
	return Check{Name: "server.http.ops", Pass: true, Message: fmt.Sprintf("ready at %s", addr)}, true
}
