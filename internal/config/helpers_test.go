package config

import (
	"testing"

	"github.com/rbright/cubicconf/internal/paths"
)

func ptr[T any](v T) *T { return &v }

// testResolver roots document lookups at a fresh temp directory.
func testResolver(t *testing.T) (*paths.Resolver, string) {
	t.Helper()
	docs := t.TempDir()
	return &paths.Resolver{DocumentDir: func() (string, error) { return docs, nil }}, docs
}

// fullConfig populates every serializable field.
func fullConfig() Config {
	cfg := Default()
	cfg.Paths = paths.Configuration{ResourceRoot: "Speech", LicenseSubdir: "lic", ModelsSubdir: "mdl"}
	cfg.Server = ServerConfig{
		HTTP: &HTTPConfig{
			API: &APIConfig{
				Address:       "0.0.0.0:8080",
				CertFile:      ptr("api.crt"),
				KeyFile:       ptr("api.key"),
				EnableWebDemo: ptr(true),
				WebRootPath:   ptr("/srv/web"),
			},
			Ops: &OpsConfig{Address: ptr("0.0.0.0:8081")},
		},
		GRPC: GRPCConfig{
			Address:  ptr("0.0.0.0:2727"),
			CertFile: ptr("grpc.crt"),
			KeyFile:  ptr("grpc.key"),
		},
	}
	cfg.Logging = &LoggingConfig{DisableInfo: ptr(false), EnableDebug: ptr(true)}
	cfg.License = LicenseConfig{KeyFile: "key.lic", UsageLog: ptr("/var/log/usage.log")}
	cfg.Recognizer = &RecognizerConfig{
		MaxTTL:         ptr(int64(3_600_000_000_000)),
		MaxIdleTimeout: ptr(int64(30_000_000_000)),
		MaxAudioBytes:  ptr(uint64(1 << 30)),
	}
	cfg.Storage = &StorageConfig{Type: ptr("filesystem"), BasePath: ptr("/var/lib/cubicsvr")}
	cfg.Models = []ModelConfig{
		{
			ID:                  "en_US",
			Name:                "English (US)",
			ModelConfigPath:     "en_US/model.config",
			FormatterConfigPath: ptr("en_US/formatter.config"),
			Confidence:          &ConfidenceConfig{ModelPath: "conf/en.model", LMPath: "conf/en.lm"},
		},
		{
			ID:              "es_ES",
			Name:            "Spanish",
			ModelConfigPath: "es_ES/model.config",
		},
	}
	return cfg
}
