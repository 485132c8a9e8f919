package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/nemuelw/protodesk/internal/application/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenExternalUseCase_Open(t *testing.T) {
	ctx := context.Background()
	browser := mocks.NewMockExternalBrowser(t)
	browser.EXPECT().OpenURL(mock.Anything, "https://ko-fi.com/nemuelw").Return(nil).Once()

	uc := NewOpenExternalUseCase(browser)
	require.NoError(t, uc.Open(ctx, " https://ko-fi.com/nemuelw "))
}

func TestOpenExternalUseCase_RejectsOtherSchemes(t *testing.T) {
	uc := NewOpenExternalUseCase(mocks.NewMockExternalBrowser(t))

	for _, raw := range []string{"file:///etc/passwd", "javascript:alert(1)", "ftp://example.com"} {
		err := uc.Open(context.Background(), raw)
		assert.ErrorIs(t, err, ErrUnsupportedScheme, raw)
	}
}

func TestOpenExternalUseCase_WrapsBrowserError(t *testing.T) {
	launchErr := errors.New("xdg-open not found")
	browser := mocks.NewMockExternalBrowser(t)
	browser.EXPECT().OpenURL(mock.Anything, mock.Anything).Return(launchErr).Once()

	err := NewOpenExternalUseCase(browser).Open(context.Background(), "https://www.paypal.com/donate/")
	assert.ErrorIs(t, err, launchErr)
}
