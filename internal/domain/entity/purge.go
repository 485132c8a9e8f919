package entity

// PurgeTargetType identifies what kind of purgeable item this is.
type PurgeTargetType int

const (
	// PurgeTargetProfile is the web profile: cookies, local storage, sign-in state.
	PurgeTargetProfile PurgeTargetType = iota
	// PurgeTargetCache is the web engine's disk cache.
	PurgeTargetCache
	// PurgeTargetHistory is the download history database.
	PurgeTargetHistory
	// PurgeTargetConfig is the configuration directory.
	PurgeTargetConfig
	PurgeTargetDesktopFile
	PurgeTargetIcon
)

// String returns the flag-style name of the target type.
func (t PurgeTargetType) String() string {
	switch t {
	case PurgeTargetProfile:
		return "profile"
	case PurgeTargetCache:
		return "cache"
	case PurgeTargetHistory:
		return "history"
	case PurgeTargetConfig:
		return "config"
	case PurgeTargetDesktopFile:
		return "desktop-file"
	case PurgeTargetIcon:
		return "icon"
	default:
		return "unknown"
	}
}

// PurgeTarget represents something that can be purged.
type PurgeTarget struct {
	Type        PurgeTargetType
	Path        string
	Description string
	Size        int64
	Exists      bool
}

// PurgeResult represents the outcome of purging a single target.
type PurgeResult struct {
	Target  PurgeTarget
	Success bool
	Error   error
}
