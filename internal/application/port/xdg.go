package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	CacheDir() (string, error)

	// WebDataDir holds the persistent web profile (cookies, local storage).
	WebDataDir() (string, error)
	// WebCacheDir holds the web engine's disk cache.
	WebCacheDir() (string, error)
	// DownloadDir is the initial folder suggested by the save dialog.
	DownloadDir() (string, error)
}
