package webkit

import (
	"context"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/nemuelw/protodesk/internal/logging"
)

// DownloadRequester receives every download the session starts.
type DownloadRequester interface {
	HandleRequest(ctx context.Context, transfer port.Transfer) entity.DownloadTask
}

// DownloadHandler bridges the session's download-started signal to a
// DownloadRequester.
type DownloadHandler struct {
	ctx       context.Context
	requester DownloadRequester

	mu     sync.Mutex
	active map[*Transfer]struct{}
}

// AttachDownloadHandler listens for downloads on the session of wkCtx.
func AttachDownloadHandler(ctx context.Context, wkCtx *WebKitContext, requester DownloadRequester) *DownloadHandler {
	h := &DownloadHandler{
		ctx:       logging.WithComponent(ctx, "downloads"),
		requester: requester,
		active:    make(map[*Transfer]struct{}),
	}
	wkCtx.NetworkSession().ConnectDownloadStarted(h.onDownloadStarted)
	return h
}

func (h *DownloadHandler) onDownloadStarted(d *webkit.Download) {
	uri := ""
	if req := d.Request(); req != nil {
		uri = req.URI()
	}
	t := newTransfer(d, uri, "")
	h.track(t)

	log := logging.FromContext(h.ctx)
	log.Debug().Str("uri", logging.TruncateURL(uri, 80)).Msg("download started")

	d.ConnectFailed(func(err error) {
		t.markFailed(err)
		log.Debug().Err(err).Str("uri", logging.TruncateURL(uri, 80)).Msg("download failed")
	})
	d.ConnectFinished(func() {
		t.markFinished()
		h.untrack(t)
	})

	// Returning true keeps the download paused until Accept sets the
	// destination or Cancel aborts it.
	d.ConnectDecideDestination(func(suggested string) bool {
		t.setSuggested(suggested)
		h.requester.HandleRequest(h.ctx, t)
		return true
	})
}

// Active returns the number of transfers WebKit has not finished yet.
func (h *DownloadHandler) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.active)
}

func (h *DownloadHandler) track(t *Transfer) {
	h.mu.Lock()
	h.active[t] = struct{}{}
	h.mu.Unlock()
}

func (h *DownloadHandler) untrack(t *Transfer) {
	h.mu.Lock()
	delete(h.active, t)
	h.mu.Unlock()
}
