package config

import (
	"testing"

	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
		wantIs  error
	}{
		{
			name:    "missing mail",
			mutate:  func(c *Config) { c.Services = c.Services[1:] },
			wantKey: "services",
			wantIs:  entity.ErrMissingFallbackService,
		},
		{
			name: "duplicate id",
			mutate: func(c *Config) {
				c.Services = append(c.Services, ServiceConfig{ID: "drive", URL: "https://drive.proton.me/2"})
			},
			wantKey: "services",
			wantIs:  entity.ErrDuplicateService,
		},
		{
			name:    "plain http service",
			mutate:  func(c *Config) { c.Services[0].URL = "http://mail.proton.me" },
			wantKey: "services",
			wantIs:  entity.ErrInvalidServiceURL,
		},
		{
			name:    "poll interval too small",
			mutate:  func(c *Config) { c.Downloads.PollIntervalMs = 0 },
			wantKey: "downloads.poll_interval_ms",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Notifications.Backend = "toast" },
			wantKey: "notifications.backend",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Notifications.TimeoutMs = -1 },
			wantKey: "notifications.timeout_ms",
		},
		{
			name:    "icon wider than sidebar",
			mutate:  func(c *Config) { c.Window.IconSize = 100 },
			wantKey: "window.icon_size",
		},
		{
			name:    "blank extra host",
			mutate:  func(c *Config) { c.Allowlist.ExtraHosts = []string{"."} },
			wantKey: "allowlist.extra_hosts",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantKey: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestValidateConfig_ReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Downloads.PollIntervalMs = 1
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "downloads.poll_interval_ms")
	assert.Contains(t, err.Error(), "logging.format")
}
