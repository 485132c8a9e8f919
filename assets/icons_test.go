package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon(t *testing.T) {
	for _, name := range []string{"mail", "calendar", "drive", "donate", "about", "logo", "paypal", "kofi"} {
		t.Run(name, func(t *testing.T) {
			data, err := Icon(name)
			require.NoError(t, err)
			assert.Contains(t, string(data), "<svg")
		})
	}
}

func TestIcon_AcceptsExtension(t *testing.T) {
	data, err := Icon("mail.svg")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestIcon_Unknown(t *testing.T) {
	_, err := Icon("nope")
	assert.Error(t, err)
}

func TestLogoSVG(t *testing.T) {
	assert.NotEmpty(t, LogoSVG)
}
