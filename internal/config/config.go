package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"valuetracker/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Title      string       `toml:"title"`
	ItemsFile  string       `toml:"items_file"` // empty means the embedded seed list
	Sort       SortSettings `toml:"sort"`
	UISettings UISettings   `toml:"ui"`
	Log        LogSettings  `toml:"log"`
}

// SortSettings selects the sort state a session starts with
type SortSettings struct {
	Key       string `toml:"key"`       // name | value
	Direction string `toml:"direction"` // asc | desc
}

// UISettings represents UI-related configuration
type UISettings struct {
	NameHeader  string `toml:"name_header"`
	ValueHeader string `toml:"value_header"`
	Noun        string `toml:"noun"` // used in "<n> characters found"
	Placeholder string `toml:"placeholder"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the default config file
func NewConfigService() ConfigService {
	return &configService{
		filePath: DefaultPath(),
	}
}

// NewConfigServiceForPath creates a config service backed by path
func NewConfigServiceForPath(path string) ConfigService {
	return &configService{
		filePath: path,
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "valuetracker", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults if it doesn't exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Fields missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	if _, err := c.Sort.State(); err != nil {
		return err
	}
	return nil
}

// State converts the settings into a domain.SortState
func (s SortSettings) State() (domain.SortState, error) {
	key, err := domain.ParseSortKey(s.Key)
	if err != nil {
		return domain.SortState{}, err
	}
	dir, err := domain.ParseSortDirection(s.Direction)
	if err != nil {
		return domain.SortState{}, err
	}
	return domain.SortState{Key: key, Direction: dir}, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Title: "FNAF Character Value Tracker",
		Sort: SortSettings{
			Key:       "name",
			Direction: "asc",
		},
		UISettings: UISettings{
			NameHeader:  "Character Name",
			ValueHeader: "Value",
			Noun:        "characters",
			Placeholder: "Search characters...",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}
