package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/prefkit/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// skipNextReload suppresses the watcher reload caused by our own Save.
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// PREFKIT_DATABASE_PATH, PREFKIT_SIGNALS_COLOR_SCHEME, ...
	v.SetEnvPrefix("PREFKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "PREFKIT_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PREFKIT_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PREFKIT_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PREFKIT_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables,
// writing a default file first if none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	return m.apply(config)
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// apply normalises, validates and installs config. Caller holds m.mu.
func (m *Manager) apply(config *Config) error {
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	if class, err := entity.ParseSizeClass(config.Breakpoints.Fallback); err == nil {
		config.Breakpoints.Fallback = class.String()
	} else {
		config.Breakpoints.Fallback = entity.SizeLarge.String()
	}

	switch strings.ToLower(strings.TrimSpace(config.Signals.ColorScheme)) {
	case ColorSchemePreferDark, "dark":
		config.Signals.ColorScheme = ColorSchemePreferDark
	case ColorSchemePreferLight, "light":
		config.Signals.ColorScheme = ColorSchemePreferLight
	default:
		config.Signals.ColorScheme = ColorSchemeDefault
	}

	langs := make([]string, 0, len(config.Signals.Languages))
	for _, l := range config.Signals.Languages {
		if l = strings.TrimSpace(l); l != "" && !slices.Contains(langs, l) {
			langs = append(langs, l)
		}
	}
	config.Signals.Languages = langs

	if config.Signals.CellWidth <= 0 {
		config.Signals.CellWidth = defaultCellWidth
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return nil
	}
	configCopy := *m.config
	configCopy.Signals.Languages = slices.Clone(m.config.Signals.Languages)
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			return err
		}
	}
	if err := WriteConfigOrdered(cfg, path); err != nil {
		return err
	}

	if m.watching {
		m.skipNextReload = true
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to reread config after save: %w", err)
	}
	saved := *cfg
	m.config = &saved
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes DefaultConfig to the config file.
func (*Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	return WriteConfigOrdered(DefaultConfig(), configFile)
}

// setDefaults registers DefaultConfig values with viper so env overrides
// apply even to keys missing from the file.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("breakpoints.sm", defaults.Breakpoints.SM)
	m.viper.SetDefault("breakpoints.md", defaults.Breakpoints.MD)
	m.viper.SetDefault("breakpoints.lg", defaults.Breakpoints.LG)
	m.viper.SetDefault("breakpoints.xl", defaults.Breakpoints.XL)
	m.viper.SetDefault("breakpoints.fallback", defaults.Breakpoints.Fallback)

	m.viper.SetDefault("signals.color_scheme", defaults.Signals.ColorScheme)
	m.viper.SetDefault("signals.languages", defaults.Signals.Languages)
	m.viper.SetDefault("signals.cell_width", defaults.Signals.CellWidth)

	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("database.ephemeral", false)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// ConfigPath returns the config file path without touching the filesystem.
func ConfigPath() (string, error) {
	path, err := GetConfigFile()
	if err != nil {
		return "", err
	}
	return filepath.Clean(path), nil
}
