package webkit

/*
#cgo pkg-config: webkitgtk-6.0 gtk4
#include <webkit/webkit.h>
#include <gtk/gtk.h>

// network-session and related-view are construct-only properties, so they
// must be passed to g_object_new.
static inline WebKitWebView* new_web_view_in_session(WebKitNetworkSession* session) {
	return WEBKIT_WEB_VIEW(g_object_new(
		WEBKIT_TYPE_WEB_VIEW,
		"network-session", session,
		NULL
	));
}

static inline WebKitWebView* new_related_web_view(WebKitWebView* parent) {
	return WEBKIT_WEB_VIEW(g_object_new(
		WEBKIT_TYPE_WEB_VIEW,
		"related-view", parent,
		NULL
	));
}
*/
import "C"

import (
	"runtime"
	"unsafe"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// newSessionWebView creates a view bound to session. A nil session falls back
// to the default one.
func newSessionWebView(session *webkit.NetworkSession) *webkit.WebView {
	if session == nil {
		return webkit.NewWebView()
	}
	native := (*C.WebKitNetworkSession)(unsafe.Pointer(coreglib.InternObject(session).Native()))
	view := C.new_web_view_in_session(native)
	runtime.KeepAlive(session)
	if view == nil {
		return nil
	}
	return wrapWebView(unsafe.Pointer(view))
}

// newRelatedWebView creates a view that shares the web process and session of
// parent, as WebKit requires for views returned from the create signal.
func newRelatedWebView(parent *webkit.WebView) *webkit.WebView {
	if parent == nil {
		return webkit.NewWebView()
	}
	native := (*C.WebKitWebView)(unsafe.Pointer(coreglib.InternObject(parent).Native()))
	view := C.new_related_web_view(native)
	runtime.KeepAlive(parent)
	if view == nil {
		return nil
	}
	return wrapWebView(unsafe.Pointer(view))
}

// wrapWebView builds the gotk4 struct hierarchy around a native view, since
// gotk4-webkitgtk keeps its own wrapper unexported.
// WebView -> WebViewBase -> gtk.Widget -> coreglib.InitiallyUnowned -> coreglib.Object
func wrapWebView(ptr unsafe.Pointer) *webkit.WebView {
	obj := coreglib.Take(ptr)
	widget := gtk.Widget{
		InitiallyUnowned: coreglib.InitiallyUnowned{Object: obj},
		Object:           obj,
		Accessible:       gtk.Accessible{Object: obj},
		Buildable:        gtk.Buildable{Object: obj},
		ConstraintTarget: gtk.ConstraintTarget{Object: obj},
	}
	return &webkit.WebView{
		WebViewBase: webkit.WebViewBase{Widget: widget},
	}
}
