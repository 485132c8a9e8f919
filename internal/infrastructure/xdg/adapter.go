package xdg

import (
	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using the config package helpers.
type Adapter struct {
	profile     string
	downloadDir string
}

// New creates a new XDG paths adapter for the named web profile.
// downloadDir overrides the XDG download directory when non-empty.
func New(profile, downloadDir string) *Adapter {
	return &Adapter{profile: profile, downloadDir: downloadDir}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) CacheDir() (string, error) {
	return config.GetCacheDir()
}

func (a *Adapter) WebDataDir() (string, error) {
	return config.GetWebDataDir(a.profile)
}

func (a *Adapter) WebCacheDir() (string, error) {
	return config.GetWebCacheDir(a.profile)
}

func (a *Adapter) DownloadDir() (string, error) {
	if a.downloadDir != "" {
		return a.downloadDir, nil
	}
	return config.GetDownloadDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
