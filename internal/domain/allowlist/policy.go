// Package allowlist decides whether a navigation target belongs to the
// trusted application or must be handed to the system browser.
package allowlist

import (
	"net/url"
	"sort"
	"strings"
)

// Decision is the outcome of classifying a host.
type Decision int

const (
	// External means the URL leaves the application and opens in the default browser.
	External Decision = iota
	// Internal means the URL is loaded inside the embedded view.
	Internal
)

// String returns a human-readable representation of the decision.
func (d Decision) String() string {
	switch d {
	case Internal:
		return "internal"
	default:
		return "external"
	}
}

// HostSet is an immutable set of trusted host names.
// Hosts are stored in canonical form (see NormalizeHost).
type HostSet struct {
	hosts map[string]struct{}
}

// NewHostSet builds a HostSet from the given hosts. Empty entries are ignored.
func NewHostSet(hosts ...string) HostSet {
	set := HostSet{hosts: make(map[string]struct{}, len(hosts))}
	for _, h := range hosts {
		if n := NormalizeHost(h); n != "" {
			set.hosts[n] = struct{}{}
		}
	}
	return set
}

// Contains reports whether host (in any casing) is part of the set.
func (s HostSet) Contains(host string) bool {
	_, ok := s.hosts[NormalizeHost(host)]
	return ok
}

// Len returns the number of hosts in the set.
func (s HostSet) Len() int {
	return len(s.hosts)
}

// Hosts returns the hosts in lexical order.
func (s HostSet) Hosts() []string {
	out := make([]string, 0, len(s.hosts))
	for h := range s.hosts {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// ClassifyURL extracts the host from raw and classifies it.
// Unparsable URLs and URLs without a host are External.
func (s HostSet) ClassifyURL(raw string) Decision {
	return Classify(HostOf(raw), s)
}

// Classify returns Internal iff host is a member of allowed.
func Classify(host string, allowed HostSet) Decision {
	if host == "" || !allowed.Contains(host) {
		return External
	}
	return Internal
}

// NormalizeHost lowercases host and strips surrounding whitespace and a
// trailing root dot, so "Mail.Proton.ME." and "mail.proton.me" compare equal.
func NormalizeHost(host string) string {
	host = strings.TrimSpace(host)
	host = strings.TrimSuffix(host, ".")
	return strings.ToLower(host)
}

// HostOf returns the normalized host of raw, without port.
// It returns an empty string when raw cannot be parsed or has no host.
func HostOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return NormalizeHost(u.Hostname())
}
