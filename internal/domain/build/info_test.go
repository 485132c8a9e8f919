package build

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationLinks(t *testing.T) {
	links := DonationLinks()
	require.Len(t, links, 2)
	assert.Equal(t, "PayPal", links[0].Name)
	assert.Equal(t, "Ko-fi", links[1].Name)

	for _, l := range links {
		u, err := url.Parse(l.URL)
		require.NoError(t, err)
		assert.Equal(t, "https", u.Scheme, l.Name)
		assert.NotEmpty(t, l.Icon)
	}
}

func TestAuthor(t *testing.T) {
	name, contact := Author()
	assert.Equal(t, "Nemuel Wainaina", name)
	assert.Contains(t, contact, "@")
}
