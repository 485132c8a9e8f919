package config

import (
	"errors"
	"fmt"

	"github.com/nemuelw/protodesk/internal/domain/allowlist"
)

// validateConfig performs comprehensive validation of configuration values.
// All problems are reported together.
func validateConfig(config *Config) error {
	var errs []error

	errs = append(errs, validateServices(config)...)
	errs = append(errs, validateAllowlist(config)...)
	errs = append(errs, validateDownloads(config)...)
	errs = append(errs, validateNotifications(config)...)
	errs = append(errs, validateWindow(config)...)
	errs = append(errs, validateLogging(config)...)

	return errors.Join(errs...)
}

func validateServices(config *Config) []error {
	if _, err := config.Catalog(); err != nil {
		return []error{fmt.Errorf("services: %w", err)}
	}
	return nil
}

func validateAllowlist(config *Config) []error {
	var errs []error
	for _, h := range config.Allowlist.ExtraHosts {
		if allowlist.NormalizeHost(h) == "" {
			errs = append(errs, fmt.Errorf("allowlist.extra_hosts: invalid host %q", h))
		}
	}
	return errs
}

func validateDownloads(config *Config) []error {
	if config.Downloads.PollIntervalMs < 50 {
		return []error{errors.New("downloads.poll_interval_ms must be at least 50")}
	}
	return nil
}

func validateNotifications(config *Config) []error {
	var errs []error
	switch config.Notifications.Backend {
	case NotificationBackendDBus, NotificationBackendGIO, NotificationBackendNone:
	default:
		errs = append(errs, fmt.Errorf("notifications.backend must be one of dbus, gio, none (got %q)", config.Notifications.Backend))
	}
	if config.Notifications.TimeoutMs < 0 {
		errs = append(errs, errors.New("notifications.timeout_ms must be non-negative"))
	}
	return errs
}

func validateWindow(config *Config) []error {
	var errs []error
	if config.Window.SidebarWidth < 24 {
		errs = append(errs, errors.New("window.sidebar_width must be at least 24"))
	}
	if config.Window.IconSize < 8 || config.Window.IconSize > config.Window.SidebarWidth {
		errs = append(errs, errors.New("window.icon_size must be between 8 and window.sidebar_width"))
	}
	return errs
}

func validateLogging(config *Config) []error {
	var errs []error
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return errs
}
