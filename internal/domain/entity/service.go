package entity

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/nemuelw/protodesk/internal/domain/allowlist"
)

// ServiceID is the short key naming one of the embedded web applications.
type ServiceID string

const (
	// ServiceMail is the Proton Mail service and the catalog fallback.
	ServiceMail ServiceID = "mail"
	// ServiceCalendar is the Proton Calendar service.
	ServiceCalendar ServiceID = "calendar"
	// ServiceDrive is the Proton Drive service.
	ServiceDrive ServiceID = "drive"
	// ServiceOtherInternal marks a trusted page that no sidebar entry owns,
	// such as the account management host.
	ServiceOtherInternal ServiceID = "other-internal"
)

var (
	// ErrMissingFallbackService is returned when a catalog has no mail entry.
	ErrMissingFallbackService = errors.New("service catalog must contain the mail service")
	// ErrDuplicateService is returned when two catalog entries share an ID.
	ErrDuplicateService = errors.New("duplicate service id")
	// ErrInvalidServiceURL is returned for non-HTTPS or host-less service URLs.
	ErrInvalidServiceURL = errors.New("invalid service url")
)

// Service is one sidebar entry and the URL it opens.
type Service struct {
	ID    ServiceID
	Title string
	URL   string
	Icon  string
}

// Host returns the canonical host of the service URL (see allowlist.NormalizeHost).
func (s Service) Host() string {
	return allowlist.HostOf(s.URL)
}

// ServiceCatalog maps service identifiers to their start URLs.
// It is immutable after construction.
type ServiceCatalog struct {
	services []Service
	byID     map[ServiceID]int
	byHost   map[string]ServiceID
}

// DefaultServices returns the Proton services shown in the sidebar.
func DefaultServices() []Service {
	return []Service{
		{ID: ServiceMail, Title: "Mail", URL: "https://mail.proton.me", Icon: "mail.svg"},
		{ID: ServiceCalendar, Title: "Calendar", URL: "https://calendar.proton.me", Icon: "calendar.svg"},
		{ID: ServiceDrive, Title: "Drive", URL: "https://drive.proton.me", Icon: "drive.svg"},
	}
}

// NewServiceCatalog validates services and builds a catalog preserving their order.
func NewServiceCatalog(services []Service) (*ServiceCatalog, error) {
	c := &ServiceCatalog{
		services: make([]Service, 0, len(services)),
		byID:     make(map[ServiceID]int, len(services)),
		byHost:   make(map[string]ServiceID, len(services)),
	}

	for _, svc := range services {
		svc.ID = ServiceID(strings.ToLower(strings.TrimSpace(string(svc.ID))))
		if _, exists := c.byID[svc.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateService, svc.ID)
		}
		u, err := url.Parse(svc.URL)
		if err != nil || u.Scheme != "https" || u.Hostname() == "" {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidServiceURL, svc.ID, svc.URL)
		}
		c.byID[svc.ID] = len(c.services)
		c.byHost[allowlist.NormalizeHost(u.Hostname())] = svc.ID
		c.services = append(c.services, svc)
	}

	if _, ok := c.byID[ServiceMail]; !ok {
		return nil, ErrMissingFallbackService
	}
	return c, nil
}

// MustDefaultCatalog returns the built-in catalog. It panics only if the
// built-in table itself is broken.
func MustDefaultCatalog() *ServiceCatalog {
	c, err := NewServiceCatalog(DefaultServices())
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the service for id, or the mail service when id is unknown.
func (c *ServiceCatalog) Lookup(id string) Service {
	if idx, ok := c.byID[ServiceID(strings.ToLower(strings.TrimSpace(id)))]; ok {
		return c.services[idx]
	}
	return c.services[c.byID[ServiceMail]]
}

// Has reports whether id names a catalog entry.
func (c *ServiceCatalog) Has(id string) bool {
	_, ok := c.byID[ServiceID(strings.ToLower(strings.TrimSpace(id)))]
	return ok
}

// ServiceForHost returns the service whose start URL lives on host.
func (c *ServiceCatalog) ServiceForHost(host string) (ServiceID, bool) {
	id, ok := c.byHost[allowlist.NormalizeHost(host)]
	return id, ok
}

// Services returns a copy of the catalog entries in sidebar order.
func (c *ServiceCatalog) Services() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Hosts returns the host of every service URL in sidebar order.
func (c *ServiceCatalog) Hosts() []string {
	out := make([]string, 0, len(c.services))
	for _, svc := range c.services {
		out = append(out, svc.Host())
	}
	return out
}
