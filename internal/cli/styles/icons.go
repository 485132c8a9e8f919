package styles

// Nerd Font icons.
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher
	IconMail      = "" // envelope
	IconCheck     = "" // check
	IconX         = "" // x
	IconWarning   = "" // warning
	IconDesktop   = "" // desktop
	IconDownload  = "" // download
	IconGlobe     = "" // external
	IconLock      = "" // internal
	IconTrash     = "" // trash
	IconConfig    = "" // config
	IconDatabase  = "" // database
	IconCache     = "" // cache
	IconProfile   = "" // user
	IconImage     = "" // image file
)

// Selection icons.
const (
	IconCheckboxEmpty   = "" // unchecked
	IconCheckboxChecked = "" // checked
	IconCursor          = "" // chevron-right
)
