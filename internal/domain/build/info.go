// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// AppName is the user-facing application name.
const AppName = "Protodesk"

// Description is the one-line summary shown in the About dialog.
const Description = "Unofficial desktop app for Proton."

// Author returns the project author and contact address.
func Author() (name, contact string) {
	return "Nemuel Wainaina", "nemuelwainaina@proton.me"
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/nemuelw/protodesk"
}

// DonationLink is one entry in the Donate dialog.
type DonationLink struct {
	Name string
	Icon string
	URL  string
}

// DonationLinks returns the donation pages offered in the Donate dialog.
func DonationLinks() []DonationLink {
	return []DonationLink{
		{Name: "PayPal", Icon: "paypal", URL: "https://www.paypal.com/donate/?hosted_button_id=8KU8MDWA86SNJ"},
		{Name: "Ko-fi", Icon: "kofi", URL: "https://ko-fi.com/nemuelw"},
	}
}
