package desktop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserLauncher_OpenURL(t *testing.T) {
	var opened []string
	l := &BrowserLauncher{open: func(u string) error {
		opened = append(opened, u)
		return nil
	}}

	require.NoError(t, l.OpenURL(context.Background(), "https://example.com/?q=1"))
	assert.Equal(t, []string{"https://example.com/?q=1"}, opened)
}

func TestBrowserLauncher_EmptyURL(t *testing.T) {
	l := &BrowserLauncher{open: func(string) error {
		t.Fatal("must not launch")
		return nil
	}}

	assert.ErrorIs(t, l.OpenURL(context.Background(), ""), ErrEmptyURL)
}

func TestBrowserLauncher_SyncErrorIsReturned(t *testing.T) {
	launchErr := errors.New("xdg-open: not found")
	l := &BrowserLauncher{open: func(string) error { return launchErr }}

	assert.ErrorIs(t, l.OpenURL(context.Background(), "https://example.com"), launchErr)
}

func TestBrowserLauncher_AsyncDoesNotBlock(t *testing.T) {
	done := make(chan string, 1)
	l := &BrowserLauncher{async: true, open: func(u string) error {
		done <- u
		return errors.New("ignored")
	}}

	require.NoError(t, l.OpenURL(context.Background(), "https://ko-fi.com/nemuelw"))
	assert.Equal(t, "https://ko-fi.com/nemuelw", <-done)
}
