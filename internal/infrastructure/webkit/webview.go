package webkit

import (
	"context"
	"errors"
	"strings"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/logging"
)

var (
	// ErrInvalidURI is returned when asked to load an empty URI.
	ErrInvalidURI = errors.New("webkit: empty uri")
	// ErrViewDestroyed is returned by operations on a destroyed view.
	ErrViewDestroyed = errors.New("webkit: view destroyed")
	// ErrViewCreate is returned when WebKit fails to create a view.
	ErrViewCreate = errors.New("webkit: failed to create view")
)

// ViewOptions tunes the main view.
type ViewOptions struct {
	UserAgent       string
	DeveloperExtras bool
}

// WebView is the embedded browsing surface. It implements port.EmbeddedView.
type WebView struct {
	view *webkit.WebView

	mu           sync.RWMutex
	destroyed    bool
	onURIChanged func(string)
}

var _ port.EmbeddedView = (*WebView)(nil)

// NewWebView creates a view inside the persistent session of wkCtx.
func NewWebView(ctx context.Context, wkCtx *WebKitContext, opts ViewOptions) (*WebView, error) {
	var session *webkit.NetworkSession
	if wkCtx != nil {
		session = wkCtx.NetworkSession()
	}

	native := newSessionWebView(session)
	if native == nil {
		return nil, ErrViewCreate
	}

	wv := &WebView{view: native}
	wv.applySettings(opts)
	wv.connectSignals()

	logging.FromContext(ctx).Debug().
		Bool("dev_extras", opts.DeveloperExtras).
		Msg("webview created")

	return wv, nil
}

func (w *WebView) applySettings(opts ViewOptions) {
	settings := w.view.Settings()
	if settings == nil {
		return
	}
	settings.SetEnableJavascript(true)
	// window.open must reach the create signal so popups can be routed.
	settings.SetJavascriptCanOpenWindowsAutomatically(true)
	settings.SetEnableDeveloperExtras(opts.DeveloperExtras)
	if opts.UserAgent != "" {
		settings.SetUserAgent(opts.UserAgent)
	}
}

func (w *WebView) connectSignals() {
	w.view.Connect("notify::uri", func() {
		w.mu.RLock()
		cb := w.onURIChanged
		w.mu.RUnlock()
		if cb != nil {
			cb(w.view.URI())
		}
	})
}

// LoadURI implements port.EmbeddedView.
func (w *WebView) LoadURI(ctx context.Context, uri string) error {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return ErrInvalidURI
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.destroyed {
		return ErrViewDestroyed
	}

	logging.FromContext(ctx).Debug().
		Str("uri", logging.TruncateURL(uri, 80)).
		Msg("loading uri")
	w.view.LoadURI(uri)
	return nil
}

// URI implements port.EmbeddedView.
func (w *WebView) URI() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.destroyed {
		return ""
	}
	return w.view.URI()
}

// OnURIChanged registers a callback for committed URI changes.
func (w *WebView) OnURIChanged(fn func(uri string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onURIChanged = fn
}

// Widget returns the view for packing into a container.
func (w *WebView) Widget() gtk.Widgetter {
	if w == nil || w.view == nil {
		return nil
	}
	return w.view
}

// Native returns the underlying WebKit view.
func (w *WebView) Native() *webkit.WebView {
	return w.view
}

// Destroy stops loading and marks the view unusable.
func (w *WebView) Destroy() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.onURIChanged = nil
	w.view.StopLoading()
}
