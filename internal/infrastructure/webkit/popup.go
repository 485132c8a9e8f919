package webkit

import (
	"context"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/application/usecase"
	"github.com/nemuelw/protodesk/internal/domain/allowlist"
	"github.com/nemuelw/protodesk/internal/logging"
)

// PopupRouter decides where popup navigations go.
type PopupRouter interface {
	OnLinkActivated(ctx context.Context, rawURL string) allowlist.Decision
	BeginPopup(ctx context.Context, dispose func()) *usecase.PopupCapture
}

// PopupHandler answers the create signal of a view. Popups never become
// windows: a known target is routed at once and the popup blocked; an unknown
// one is peeked through a transient related view that is discarded after its
// first real URL.
type PopupHandler struct {
	ctx    context.Context
	router PopupRouter
	parent *webkit.WebView

	mu        sync.Mutex
	transient map[*webkit.WebView]struct{}
}

// AttachPopupHandler connects a PopupHandler to view.
func AttachPopupHandler(ctx context.Context, view *WebView, router PopupRouter) *PopupHandler {
	h := &PopupHandler{
		ctx:       logging.WithComponent(ctx, "popup"),
		router:    router,
		parent:    view.Native(),
		transient: make(map[*webkit.WebView]struct{}),
	}
	h.parent.ConnectCreate(h.onCreate)
	return h
}

func (h *PopupHandler) onCreate(action *webkit.NavigationAction) gtk.Widgetter {
	req := popupRequest(action)
	log := logging.FromContext(h.ctx)
	log.Debug().
		Str("target", logging.TruncateURL(req.TargetURI, 80)).
		Str("frame", req.FrameName).
		Bool("user_gesture", req.IsUserGesture).
		Msg("popup requested")

	if target, ok := immediateTarget(req); ok {
		h.router.OnLinkActivated(h.ctx, target)
		return nil
	}

	transient := newRelatedWebView(h.parent)
	if transient == nil {
		log.Warn().Msg("failed to create transient view, popup blocked")
		return nil
	}
	h.track(transient)

	capture := h.router.BeginPopup(h.ctx, func() { h.dispose(transient) })
	transient.Connect("notify::uri", func() {
		capture.Observe(transient.URI())
	})
	transient.ConnectClose(capture.Discard)

	return transient
}

// Pending returns how many transient views are still alive.
func (h *PopupHandler) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.transient)
}

func (h *PopupHandler) track(v *webkit.WebView) {
	h.mu.Lock()
	h.transient[v] = struct{}{}
	h.mu.Unlock()
}

func (h *PopupHandler) dispose(v *webkit.WebView) {
	h.mu.Lock()
	delete(h.transient, v)
	h.mu.Unlock()

	v.StopLoading()
	v.TryClose()
}

func popupRequest(action *webkit.NavigationAction) port.PopupRequest {
	if action == nil {
		return port.PopupRequest{}
	}
	req := port.PopupRequest{
		FrameName:     action.FrameName(),
		IsUserGesture: action.IsUserGesture(),
	}
	if r := action.Request(); r != nil {
		req.TargetURI = r.URI()
	}
	return req
}

// immediateTarget returns the URL to route without a transient view.
func immediateTarget(req port.PopupRequest) (string, bool) {
	if usecase.IsBlankURL(req.TargetURI) {
		return "", false
	}
	return req.TargetURI, true
}
