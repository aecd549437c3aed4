// Package classifier decides, per target URL, whether a request is served by
// the in-process application under test or by a real network host.
package classifier

import (
	"errors"
	"fmt"
	"net/url"

	"webpilot/domain/browse"
)

// ErrInvalidURL marks a target that cannot be classified: unparseable, or an
// absolute URL with an empty host. Such inputs fail loudly instead of being
// guessed at.
var ErrInvalidURL = errors.New("invalid target url")

// IsRemote reports whether rawurl should travel over the network transport.
//
// A target without a host classifies like the host of lastURL; with no prior
// navigation it is local. An absolute target classifies purely on its own
// hostname against the roots: equal to AppHost when one is set, otherwise
// equal to DefaultHost or a member of LocalHosts, otherwise remote. With no
// roots configured at all, every hosted URL is remote and every hostless URL
// is local. Hostname comparison is exact string equality; scheme and port
// never participate.
//
// Pure predicate: no session or configuration state is touched.
func IsRemote(rawurl, lastURL string, roots browse.HostRoots) (bool, error) {
	host, err := hostOf(rawurl)
	if err != nil {
		return false, err
	}
	if host == "" {
		if lastURL == "" {
			return false, nil
		}
		host, err = hostOf(lastURL)
		if err != nil {
			return false, err
		}
		if host == "" {
			return false, nil
		}
	}

	if roots.AppHost != "" {
		appHost, err := hostOf(roots.AppHost)
		if err != nil {
			return false, fmt.Errorf("app host: %w", err)
		}
		return host != appHost, nil
	}

	if roots.DefaultHost != "" {
		defaultHost, err := hostOf(roots.DefaultHost)
		if err != nil {
			return false, fmt.Errorf("default host: %w", err)
		}
		if host == defaultHost || roots.IsLocalHost(host) {
			return false, nil
		}
		return true, nil
	}

	return true, nil
}

// hostOf extracts the hostname of rawurl, "" for relative references. An
// http(s) URL whose authority carries no hostname is rejected.
func hostOf(rawurl string) (string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidURL, rawurl, err)
	}
	host := u.Hostname()
	if host == "" && (u.Scheme == "http" || u.Scheme == "https") {
		return "", fmt.Errorf("%w %q: missing host", ErrInvalidURL, rawurl)
	}
	return host, nil
}
