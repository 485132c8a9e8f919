package entity

// NavigationCause tells where a navigation request came from.
type NavigationCause int

const (
	// CauseExplicitSelection is a sidebar click.
	CauseExplicitSelection NavigationCause = iota
	// CauseLinkClick is a link that asked for a new window or tab.
	CauseLinkClick
)

// String returns a human-readable representation of the cause.
func (c NavigationCause) String() string {
	switch c {
	case CauseExplicitSelection:
		return "explicit-selection"
	case CauseLinkClick:
		return "link-click"
	default:
		return "unknown"
	}
}

// NavigationRequest is a target URL plus the reason it was requested.
type NavigationRequest struct {
	URL   string
	Cause NavigationCause
}
