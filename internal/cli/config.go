// Config loading for the cattery CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/shelterpaws/cattery/internal/paths"
	"github.com/shelterpaws/cattery/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend = "backend"
)

// defaultConfigYAML is written to config.yaml on first run. The locations
// and volunteer credential match the seeded catalog; everything here is
// overridable.
const defaultConfigYAML = `# Cattery configuration

# Record store backend
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Media blob storage: fs (default), s3, memory
blob:
  driver: fs
  # root:            # fs: defaults to <data_dir>/blobs
  # bucket:          # s3
  # region:          # s3
  # endpoint:        # s3-compatible endpoint, e.g. MinIO
  # path_style: false

# Shelter locations in display order. The "all" entry is the filter
# wildcard and never holds cats.
locations:
  - id: all
    name: "כל המיקומים"
  - id: "1"
    name: "חצרות פתוחות"
  - id: "2"
    name: "חצר אקלום"
  - id: "3"
    name: "מתחם עיוורים ומוחלשים"
  - id: "4"
    name: "דיור מוגן קרוואן ימין"
  - id: "5"
    name: "דיור מוגן קרוואן שמאל"
  - id: "6"
    name: "חצר תפעולית"
  - id: "7"
    name: "יחידת אשפוז"
  - id: "8"
    name: "מתחם פרגולה + VIP"

# Volunteer credential for the edit gate
volunteer:
  username: volunteer
  password: password123

# Session lifetime for the serve command
session_ttl: 1h

# Optional description generator
genai:
  # api_key:
  model: gemini-2.5-flash
  timeout: 10s
`

// loadConfig resolves the config directory, reads config.yaml through
// Viper, and returns the full catalog configuration with the data
// directory precedence applied. The config directory and a default
// config.yaml are created on first run; a missing config.yaml afterwards
// is not an error.
func loadConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := readConfigFile(configDir)
	if err != nil {
		return types.Config{}, err
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parse config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.DataDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	cfg.DataDir = dataDir

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// readConfigFile reads config.yaml from configDir using Viper.
func readConfigFile(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml falls back to defaults.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
