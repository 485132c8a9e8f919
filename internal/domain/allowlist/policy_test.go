package allowlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func protonHosts() HostSet {
	return NewHostSet("mail.proton.me", "calendar.proton.me", "drive.proton.me", "account.proton.me")
}

func TestClassify(t *testing.T) {
	allowed := protonHosts()

	tests := []struct {
		name string
		host string
		want Decision
	}{
		{name: "mail host", host: "mail.proton.me", want: Internal},
		{name: "account host", host: "account.proton.me", want: Internal},
		{name: "uppercase host is normalized", host: "CALENDAR.Proton.ME", want: Internal},
		{name: "trailing dot is normalized", host: "drive.proton.me.", want: Internal},
		{name: "unknown host", host: "example.com", want: External},
		{name: "parent domain is not trusted", host: "proton.me", want: External},
		{name: "suffix lookalike", host: "mail.proton.me.evil.com", want: External},
		{name: "empty host", host: "", want: External},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.host, allowed))
		})
	}
}

func TestClassify_IsPure(t *testing.T) {
	allowed := protonHosts()
	for i := 0; i < 3; i++ {
		assert.Equal(t, Internal, Classify("mail.proton.me", allowed))
		assert.Equal(t, External, Classify("example.com", allowed))
	}
	assert.Equal(t, 4, allowed.Len())
}

func TestHostSet_ClassifyURL(t *testing.T) {
	allowed := protonHosts()

	tests := []struct {
		raw  string
		want Decision
	}{
		{"https://calendar.proton.me/event/1", Internal},
		{"https://mail.proton.me:443/u/0/inbox", Internal},
		{"https://example.com", External},
		{"mailto:someone@proton.me", External},
		{"://not a url", External},
		{"", External},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, allowed.ClassifyURL(tt.raw))
		})
	}
}

func TestNewHostSet_IgnoresEmptyAndDuplicates(t *testing.T) {
	set := NewHostSet("", "  ", "Mail.proton.me", "mail.proton.me")
	assert.Equal(t, []string{"mail.proton.me"}, set.Hosts())
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "internal", Internal.String())
	assert.Equal(t, "external", External.String())
}
