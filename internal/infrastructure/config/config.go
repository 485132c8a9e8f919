// Package config loads, validates and watches the Protodesk configuration.
package config

import (
	"time"

	"github.com/nemuelw/protodesk/internal/domain/allowlist"
	"github.com/nemuelw/protodesk/internal/domain/entity"
)

const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for protodesk.
type Config struct {
	// Services are the sidebar entries in display order. The "mail" entry is required.
	Services      []ServiceConfig     `mapstructure:"services" toml:"services" json:"services"`
	Allowlist     AllowlistConfig     `mapstructure:"allowlist" toml:"allowlist" json:"allowlist"`
	Downloads     DownloadsConfig     `mapstructure:"downloads" toml:"downloads" json:"downloads"`
	Notifications NotificationsConfig `mapstructure:"notifications" toml:"notifications" json:"notifications"`
	Window        WindowConfig        `mapstructure:"window" toml:"window" json:"window"`
	Profile       ProfileConfig       `mapstructure:"profile" toml:"profile" json:"profile"`
	Logging       LoggingConfig       `mapstructure:"logging" toml:"logging" json:"logging"`
	Database      DatabaseConfig      `mapstructure:"database" toml:"database" json:"database"`
}

// ServiceConfig describes one embedded web application.
type ServiceConfig struct {
	ID    string `mapstructure:"id" toml:"id" json:"id" jsonschema:"required"`
	Title string `mapstructure:"title" toml:"title" json:"title"`
	URL   string `mapstructure:"url" toml:"url" json:"url" jsonschema:"required,format=uri"`
	// Icon is the file name of an embedded icon (mail.svg, calendar.svg, drive.svg).
	Icon string `mapstructure:"icon" toml:"icon" json:"icon,omitempty"`
}

// AllowlistConfig extends the set of hosts kept inside the app.
type AllowlistConfig struct {
	// ExtraHosts are trusted hosts that no sidebar entry owns.
	ExtraHosts []string `mapstructure:"extra_hosts" toml:"extra_hosts" json:"extra_hosts"`
}

// DownloadsConfig controls the save dialog and the completion watcher.
type DownloadsConfig struct {
	// Directory is the folder the save dialog opens in. Empty means the XDG download dir.
	Directory string `mapstructure:"directory" toml:"directory" json:"directory"`
	// PollIntervalMs is the delay between two transfer status checks.
	PollIntervalMs int `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" jsonschema:"minimum=50"`
	// History stores download outcomes in the local database.
	History bool `mapstructure:"history" toml:"history" json:"history"`
}

// NotificationBackend selects the desktop notification sink.
type NotificationBackend string

const (
	NotificationBackendDBus NotificationBackend = "dbus"
	NotificationBackendGIO  NotificationBackend = "gio"
	NotificationBackendNone NotificationBackend = "none"
)

// NotificationsConfig selects how download notifications are shown.
type NotificationsConfig struct {
	Backend   NotificationBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=dbus,enum=gio,enum=none"`
	TimeoutMs int                 `mapstructure:"timeout_ms" toml:"timeout_ms" json:"timeout_ms" jsonschema:"minimum=0"`
}

// WindowConfig holds sidebar geometry.
type WindowConfig struct {
	SidebarWidth int `mapstructure:"sidebar_width" toml:"sidebar_width" json:"sidebar_width" jsonschema:"minimum=24"`
	IconSize     int `mapstructure:"icon_size" toml:"icon_size" json:"icon_size" jsonschema:"minimum=8"`
}

// ProfileConfig names the persistent web profile (cookies, local storage).
type ProfileConfig struct {
	Name string `mapstructure:"name" toml:"name" json:"name"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/protodesk/protodesk.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// Catalog builds the service catalog from the configured services.
func (c *Config) Catalog() (*entity.ServiceCatalog, error) {
	services := make([]entity.Service, 0, len(c.Services))
	for _, s := range c.Services {
		services = append(services, entity.Service{
			ID:    entity.ServiceID(s.ID),
			Title: s.Title,
			URL:   s.URL,
			Icon:  s.Icon,
		})
	}
	return entity.NewServiceCatalog(services)
}

// AllowedHosts returns the catalog hosts plus the configured extra hosts.
func (c *Config) AllowedHosts(catalog *entity.ServiceCatalog) allowlist.HostSet {
	hosts := append(catalog.Hosts(), c.Allowlist.ExtraHosts...)
	return allowlist.NewHostSet(hosts...)
}

// PollInterval returns the download poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Downloads.PollIntervalMs) * time.Millisecond
}
