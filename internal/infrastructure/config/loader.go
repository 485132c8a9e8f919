package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
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

	// PROTODESK_DOWNLOADS_POLL_INTERVAL_MS, PROTODESK_NOTIFICATIONS_BACKEND, ...
	v.SetEnvPrefix("PROTODESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "PROTODESK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PROTODESK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PROTODESK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PROTODESK_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
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

	return m.decode()
}

// decode unmarshals, normalizes and validates the viper state into m.config.
// Must be called with m.mu held for write.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
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

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
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
	for i := range config.Services {
		s := &config.Services[i]
		s.ID = strings.ToLower(strings.TrimSpace(s.ID))
		s.URL = strings.TrimSpace(s.URL)
		if s.Title == "" {
			s.Title = s.ID
		}
	}

	hosts := config.Allowlist.ExtraHosts[:0]
	for _, h := range config.Allowlist.ExtraHosts {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	config.Allowlist.ExtraHosts = hosts

	config.Notifications.Backend = NotificationBackend(strings.ToLower(strings.TrimSpace(string(config.Notifications.Backend))))
	if config.Notifications.Backend == "" {
		config.Notifications.Backend = defaultNotificationSource
	}

	if config.Downloads.Directory == "" {
		config.Downloads.Directory = getDefaultDownloadDir()
	}
	if strings.HasPrefix(config.Downloads.Directory, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			config.Downloads.Directory = filepath.Join(home, config.Downloads.Directory[2:])
		}
	}

	config.Profile.Name = strings.TrimSpace(config.Profile.Name)
	if config.Profile.Name == "" {
		config.Profile.Name = defaultProfileName
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Services = append([]ServiceConfig(nil), m.config.Services...)
	configCopy.Allowlist.ExtraHosts = append([]string(nil), m.config.Allowlist.ExtraHosts...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if _, err := os.Stat(configFile); err == nil {
		return nil
	}

	return WriteConfig(DefaultConfig(), configFile)
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed

	m.viper.SetDefault("services", servicesToMaps(defaults.Services))
	m.viper.SetDefault("allowlist.extra_hosts", defaults.Allowlist.ExtraHosts)
	m.setDownloadsDefaults(defaults)
	m.setNotificationsDefaults(defaults)
	m.setWindowDefaults(defaults)
	m.viper.SetDefault("profile.name", defaults.Profile.Name)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setDownloadsDefaults(defaults *Config) {
	m.viper.SetDefault("downloads.directory", defaults.Downloads.Directory)
	m.viper.SetDefault("downloads.poll_interval_ms", defaults.Downloads.PollIntervalMs)
	m.viper.SetDefault("downloads.history", defaults.Downloads.History)
}

func (m *Manager) setNotificationsDefaults(defaults *Config) {
	m.viper.SetDefault("notifications.backend", string(defaults.Notifications.Backend))
	m.viper.SetDefault("notifications.timeout_ms", defaults.Notifications.TimeoutMs)
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.sidebar_width", defaults.Window.SidebarWidth)
	m.viper.SetDefault("window.icon_size", defaults.Window.IconSize)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
