package types

import (
	"errors"
	"time"
)

// Supported store backend names.
const (
	BackendSQLite = "sqlite"
)

// Supported blob driver names.
const (
	BlobDriverFS     = "fs"
	BlobDriverS3     = "s3"
	BlobDriverMemory = "memory"
)

// Credential is the single volunteer credential pair held in process-wide
// configuration. This is a soft UI gate, not a security boundary.
type Credential struct {
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
}

// BlobConfig selects and parameterizes the media blob store driver.
type BlobConfig struct {
	Driver    string `json:"driver" mapstructure:"driver"`
	Root      string `json:"root" mapstructure:"root"`           // fs driver: directory root
	Bucket    string `json:"bucket" mapstructure:"bucket"`       // s3 driver
	Region    string `json:"region" mapstructure:"region"`       // s3 driver
	Endpoint  string `json:"endpoint" mapstructure:"endpoint"`   // s3 driver, optional (MinIO)
	PathStyle bool   `json:"path_style" mapstructure:"path_style"`
}

// GenAIConfig parameterizes the optional description generator.
type GenAIConfig struct {
	APIKey  string        `json:"api_key" mapstructure:"api_key"`
	Model   string        `json:"model" mapstructure:"model"`
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

// Config holds backend selection and parameters for Store.Attach plus the
// static reference data the catalog needs at startup.
type Config struct {
	Backend    string        `json:"backend" mapstructure:"backend"`
	DataDir    string        `json:"data_dir" mapstructure:"data_dir"`
	Blob       BlobConfig    `json:"blob" mapstructure:"blob"`
	Locations  []Location    `json:"locations" mapstructure:"locations"`
	Volunteer  Credential    `json:"volunteer" mapstructure:"volunteer"`
	SessionTTL time.Duration `json:"session_ttl" mapstructure:"session_ttl"`
	GenAI      GenAIConfig   `json:"genai" mapstructure:"genai"`
}

// Config validation errors.
var (
	ErrBackendEmpty       = errors.New("backend must not be empty")
	ErrBackendUnknown     = errors.New("unknown backend")
	ErrBlobUnknown        = errors.New("unknown blob driver")
	ErrNoLocations        = errors.New("locations must not be empty")
	ErrNoStorableLocation = errors.New("locations must contain a non-wildcard entry")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// knownBlobDrivers lists the blob drivers that Validate accepts.
var knownBlobDrivers = map[string]bool{
	BlobDriverFS:     true,
	BlobDriverS3:     true,
	BlobDriverMemory: true,
	"":               true, // defaults to fs
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if !knownBlobDrivers[c.Blob.Driver] {
		return ErrBlobUnknown
	}
	if len(c.Locations) == 0 {
		return ErrNoLocations
	}
	if _, ok := FirstStorable(c.Locations); !ok {
		return ErrNoStorableLocation
	}
	return nil
}

// WithDefaults returns a copy with empty optional fields filled in:
// default locations, the fs blob driver, and a one-hour session TTL.
func (c Config) WithDefaults() Config {
	if len(c.Locations) == 0 {
		c.Locations = DefaultLocations
	}
	if c.Blob.Driver == "" {
		c.Blob.Driver = BlobDriverFS
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = time.Hour
	}
	if c.GenAI.Model == "" {
		c.GenAI.Model = "gemini-2.5-flash"
	}
	if c.GenAI.Timeout <= 0 {
		c.GenAI.Timeout = 10 * time.Second
	}
	return c
}
