package config

import (
	"fmt"

	"github.com/rbright/cubicconf/internal/paths"
)

// SetPathConfiguration replaces the path configuration wholesale and provisions
// its directories. Provisioning is best-effort; only an unresolvable document
// directory or an invalid configuration is returned as an error, in which case
// the previous configuration is kept.
func (c *Config) SetPathConfiguration(resolver *paths.Resolver, pathCfg paths.Configuration) (paths.Roots, error) {
	roots, err := resolver.Provision(pathCfg)
	if err != nil {
		return paths.Roots{}, fmt.Errorf("set path configuration: %w", err)
	}
	c.Paths = pathCfg
	return roots, nil
}

// AbsoluteView returns a copy whose license key and model paths are resolved
// against roots. The receiver is left untouched.
func (c Config) AbsoluteView(roots paths.Roots) Config {
	out := c.Clone()
	out.License.KeyFile = paths.ToAbsolute(roots.LicenseDir, out.License.KeyFile)
	for i := range out.Models {
		m := &out.Models[i]
		m.ModelConfigPath = paths.ToAbsolute(roots.ModelsDir, m.ModelConfigPath)
		if m.FormatterConfigPath != nil {
			resolved := paths.ToAbsolute(roots.ModelsDir, *m.FormatterConfigPath)
			m.FormatterConfigPath = &resolved
		}
	}
	return out
}

// Clone returns a deep copy that shares no pointers or slices with c.
func (c Config) Clone() Config {
	out := c
	out.Server.GRPC = GRPCConfig{
		Address:  clonePtr(c.Server.GRPC.Address),
		CertFile: clonePtr(c.Server.GRPC.CertFile),
		KeyFile:  clonePtr(c.Server.GRPC.KeyFile),
	}
	if h := c.Server.HTTP; h != nil {
		out.Server.HTTP = &HTTPConfig{}
		if h.API != nil {
			out.Server.HTTP.API = &APIConfig{
				Address:       h.API.Address,
				CertFile:      clonePtr(h.API.CertFile),
				KeyFile:       clonePtr(h.API.KeyFile),
				EnableWebDemo: clonePtr(h.API.EnableWebDemo),
				WebRootPath:   clonePtr(h.API.WebRootPath),
			}
		}
		if h.Ops != nil {
			out.Server.HTTP.Ops = &OpsConfig{
				Address:  clonePtr(h.Ops.Address),
				CertFile: clonePtr(h.Ops.CertFile),
				KeyFile:  clonePtr(h.Ops.KeyFile),
			}
		}
	}
	if l := c.Logging; l != nil {
		out.Logging = &LoggingConfig{
			DisableInfo: clonePtr(l.DisableInfo),
			EnableDebug: clonePtr(l.EnableDebug),
			EnableTrace: clonePtr(l.EnableTrace),
		}
	}
	out.License.UsageLog = clonePtr(c.License.UsageLog)
	if r := c.Recognizer; r != nil {
		out.Recognizer = &RecognizerConfig{
			MaxTTL:         clonePtr(r.MaxTTL),
			MaxIdleTimeout: clonePtr(r.MaxIdleTimeout),
			MaxAudioBytes:  clonePtr(r.MaxAudioBytes),
		}
	}
	if s := c.Storage; s != nil {
		out.Storage = &StorageConfig{
			Type:     clonePtr(s.Type),
			BasePath: clonePtr(s.BasePath),
		}
	}
	if len(c.Models) > 0 {
		out.Models = make([]ModelConfig, len(c.Models))
		for i, m := range c.Models {
			out.Models[i] = ModelConfig{
				ID:                  m.ID,
				Name:                m.Name,
				ModelConfigPath:     m.ModelConfigPath,
				FormatterConfigPath: clonePtr(m.FormatterConfigPath),
				Confidence:          clonePtr(m.Confidence),
			}
		}
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
