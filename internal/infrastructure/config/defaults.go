package config

import (
	"github.com/nemuelw/protodesk/internal/domain/entity"
)

// Default configuration constants
const (
	defaultAccountHost        = "account.proton.me"
	defaultPollIntervalMs     = 500
	defaultNotificationMs     = 5000
	defaultSidebarWidth       = 60
	defaultIconSize           = 32
	defaultProfileName        = "protodesk"
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
	defaultNotificationSource = NotificationBackendDBus
)

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	services := entity.DefaultServices()
	svcCfg := make([]ServiceConfig, 0, len(services))
	for _, s := range services {
		svcCfg = append(svcCfg, ServiceConfig{
			ID:    string(s.ID),
			Title: s.Title,
			URL:   s.URL,
			Icon:  s.Icon,
		})
	}

	return &Config{
		Services: svcCfg,
		Allowlist: AllowlistConfig{
			ExtraHosts: []string{defaultAccountHost},
		},
		Downloads: DownloadsConfig{
			Directory:      getDefaultDownloadDir(),
			PollIntervalMs: defaultPollIntervalMs,
			History:        true,
		},
		Notifications: NotificationsConfig{
			Backend:   defaultNotificationSource,
			TimeoutMs: defaultNotificationMs,
		},
		Window: WindowConfig{
			SidebarWidth: defaultSidebarWidth,
			IconSize:     defaultIconSize,
		},
		Profile: ProfileConfig{
			Name: defaultProfileName,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// getDefaultDownloadDir returns the default download directory, falls back to empty string on error
func getDefaultDownloadDir() string {
	dir, err := GetDownloadDir()
	if err != nil {
		return ""
	}
	return dir
}

// servicesToMaps converts services into the generic form viper stores for
// array-of-tables keys.
func servicesToMaps(services []ServiceConfig) []map[string]any {
	out := make([]map[string]any, 0, len(services))
	for _, s := range services {
		out = append(out, map[string]any{
			"id":    s.ID,
			"title": s.Title,
			"url":   s.URL,
			"icon":  s.Icon,
		})
	}
	return out
}
