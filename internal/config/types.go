// Package config models, serializes, and persists the speech server configuration.
//
// The in-memory Config always holds license and model paths relative to the
// license and models directories. Absolute paths only appear in the live copy
// written by Save.
package config

import "github.com/rbright/cubicconf/internal/paths"

// Config is the root of the server configuration.
//
// Field order drives section order in the encoded text: optional top-level
// sections come last so their placeholders close out the file.
type Config struct {
	// Paths is never persisted; it is supplied at construction or after Load.
	Paths paths.Configuration `toml:"-"`

	Version    int               `toml:"Version"`
	Server     ServerConfig      `toml:"server"`
	License    LicenseConfig     `toml:"license"`
	Models     []ModelConfig     `toml:"models,omitempty"`
	Logging    *LoggingConfig    `toml:"logging"`
	Recognizer *RecognizerConfig `toml:"recognizer"`
	Storage    *StorageConfig    `toml:"storage"`
}

// ServerConfig holds the listening endpoints. HTTP precedes GRPC in the file.
type ServerConfig struct {
	HTTP *HTTPConfig `toml:"http"`
	GRPC GRPCConfig  `toml:"grpc"`
}

// GRPCConfig is the gRPC listener.
type GRPCConfig struct {
	Address  *string `toml:"Address"`
	CertFile *string `toml:"CertFile"`
	KeyFile  *string `toml:"KeyFile"`
}

// HTTPConfig groups the HTTP API and operations listeners.
type HTTPConfig struct {
	API *APIConfig `toml:"api"`
	Ops *OpsConfig `toml:"ops"`
}

// APIConfig is the HTTP API listener with optional web demo.
type APIConfig struct {
	Address       string  `toml:"Address"`
	CertFile      *string `toml:"CertFile"`
	KeyFile       *string `toml:"KeyFile"`
	EnableWebDemo *bool   `toml:"EnableWebDemo"`
	WebRootPath   *string `toml:"WebRootPath"`
}

// OpsConfig is the HTTP operations (metrics/health) listener.
type OpsConfig struct {
	Address  *string `toml:"Address"`
	CertFile *string `toml:"CertFile"`
	KeyFile  *string `toml:"KeyFile"`
}

// LoggingConfig toggles server log levels.
type LoggingConfig struct {
	DisableInfo *bool `toml:"DisableInfo"`
	EnableDebug *bool `toml:"EnableDebug"`
	EnableTrace *bool `toml:"EnableTrace"`
}

// LicenseConfig locates the license key. KeyFile is relative to the license directory.
type LicenseConfig struct {
	KeyFile  string  `toml:"KeyFile"`
	UsageLog *string `toml:"UsageLog"`
}

// RecognizerConfig bounds recognition sessions. Durations are nanoseconds.
type RecognizerConfig struct {
	MaxTTL         *int64  `toml:"MaxTTL"`
	MaxIdleTimeout *int64  `toml:"MaxIdleTimeout"`
	MaxAudioBytes  *uint64 `toml:"MaxAudioBytes"`
}

// StorageConfig selects where recognition artifacts are stored.
type StorageConfig struct {
	Type     *string `toml:"Type"`
	BasePath *string `toml:"BasePath"`
}

// ModelConfig is one recognizer model. Order in Config.Models is selection precedence.
//
// ModelConfigPath and FormatterConfigPath are relative to the models directory.
// Confidence paths are kept as authored.
type ModelConfig struct {
	ID                  string            `toml:"ID"`
	Name                string            `toml:"Name"`
	ModelConfigPath     string            `toml:"ModelConfigPath"`
	FormatterConfigPath *string           `toml:"FormatterConfigPath"`
	Confidence          *ConfidenceConfig `toml:"confidence"`
}

// ConfidenceConfig locates the confidence model and language model.
type ConfidenceConfig struct {
	ModelPath string `toml:"ModelPath"`
	LMPath    string `toml:"LMPath"`
}

// Warning is a non-fatal load message.
type Warning struct {
	Message string
}
