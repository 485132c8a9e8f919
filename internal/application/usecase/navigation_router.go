package usecase

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/domain/allowlist"
	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/nemuelw/protodesk/internal/logging"
)

// logURLMaxLen is the max length for URLs in log messages.
const logURLMaxLen = 60

// NavigationRouter owns the service shown in the embedded view and decides
// where activated links are opened.
type NavigationRouter struct {
	catalog *entity.ServiceCatalog
	allowed allowlist.HostSet
	view    port.EmbeddedView
	browser port.ExternalBrowser

	mu      sync.Mutex
	current entity.ServiceID
}

// NewNavigationRouter creates a router showing the mail service.
// The view is not loaded until SelectService is called.
func NewNavigationRouter(
	catalog *entity.ServiceCatalog,
	allowed allowlist.HostSet,
	view port.EmbeddedView,
	browser port.ExternalBrowser,
) *NavigationRouter {
	return &NavigationRouter{
		catalog: catalog,
		allowed: allowed,
		view:    view,
		browser: browser,
		current: entity.ServiceMail,
	}
}

// Current returns the service currently shown.
func (r *NavigationRouter) Current() entity.ServiceID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// SelectService loads the start URL of the service named id, falling back to
// mail for unknown ids, and returns the URL it loaded.
func (r *NavigationRouter) SelectService(ctx context.Context, id string) string {
	log := logging.FromContext(ctx)

	svc := r.catalog.Lookup(id)
	if !r.catalog.Has(id) {
		log.Debug().Str("requested", id).Str("resolved", string(svc.ID)).Msg("unknown service, using fallback")
	}

	r.load(ctx, entity.NavigationRequest{URL: svc.URL, Cause: entity.CauseExplicitSelection})

	r.mu.Lock()
	r.current = svc.ID
	r.mu.Unlock()

	return svc.URL
}

// OnLinkActivated routes a link that asked for a new navigation context.
// Internal links replace the current page; external links are handed to the
// system browser and leave the view untouched.
func (r *NavigationRouter) OnLinkActivated(ctx context.Context, rawURL string) allowlist.Decision {
	log := logging.FromContext(ctx)

	host := allowlist.HostOf(rawURL)
	decision := allowlist.Classify(host, r.allowed)

	log.Debug().
		Str("url", logging.TruncateURL(rawURL, logURLMaxLen)).
		Str("host", host).
		Stringer("decision", decision).
		Msg("link activated")

	if decision == allowlist.External {
		if err := r.browser.OpenURL(ctx, rawURL); err != nil {
			log.Warn().Err(err).Str("url", logging.TruncateURL(rawURL, logURLMaxLen)).Msg("failed to open external browser")
		}
		return decision
	}

	r.load(ctx, entity.NavigationRequest{URL: rawURL, Cause: entity.CauseLinkClick})

	owner, ok := r.catalog.ServiceForHost(host)
	if !ok {
		owner = entity.ServiceOtherInternal
	}
	r.mu.Lock()
	r.current = owner
	r.mu.Unlock()

	return decision
}

func (r *NavigationRouter) load(ctx context.Context, req entity.NavigationRequest) {
	if err := r.view.LoadURI(ctx, req.URL); err != nil {
		logging.FromContext(ctx).Error().
			Err(err).
			Str("url", logging.TruncateURL(req.URL, logURLMaxLen)).
			Stringer("cause", req.Cause).
			Msg("failed to load URL")
	}
}

// BeginPopup starts observing a transient navigation context. dispose tears
// the context down and is called exactly once, either after the first real
// URL was routed or on Discard.
func (r *NavigationRouter) BeginPopup(ctx context.Context, dispose func()) *PopupCapture {
	return &PopupCapture{ctx: ctx, router: r, dispose: dispose}
}

// PopupCapture peeks the destination of a popup request and routes it.
// Only the first non-blank URL is considered; redirects are ignored.
type PopupCapture struct {
	ctx     context.Context
	router  *NavigationRouter
	dispose func()

	claimed atomic.Bool
}

// Observe feeds one URL reported by the transient context.
// It reports whether the URL was routed.
func (p *PopupCapture) Observe(url string) bool {
	if IsBlankURL(url) {
		return false
	}
	if !p.claimed.CompareAndSwap(false, true) {
		return false
	}
	p.router.OnLinkActivated(p.ctx, url)
	p.close()
	return true
}

// Discard disposes the context without routing anything. dispose may
// re-enter Discard (closing the view emits close); later calls are no-ops.
func (p *PopupCapture) Discard() {
	if p.claimed.CompareAndSwap(false, true) {
		p.close()
	}
}

func (p *PopupCapture) close() {
	if p.dispose != nil {
		p.dispose()
	}
}

// IsBlankURL reports whether u is empty or about:blank, the placeholder a
// popup shows before its real destination is known.
func IsBlankURL(u string) bool {
	u = strings.TrimSpace(u)
	return u == "" || u == "about:blank"
}
