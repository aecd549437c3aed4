// Package httpclient provides HTTP client utilities with driver identification headers.
package httpclient

import (
	"net/http"
	"runtime"
	"time"

	"webpilot/version"
)

// DriverTransport wraps an http.RoundTripper and injects driver identification headers.
type DriverTransport struct {
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *DriverTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid mutating the original
	clone := req.Clone(req.Context())

	clone.Header.Set("X-Webpilot-Version", version.Version)
	clone.Header.Set("X-Webpilot-OS", runtime.GOOS)
	clone.Header.Set("X-Webpilot-Arch", runtime.GOARCH)
	if clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", "webpilot/"+version.Version)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// NewClient returns an *http.Client configured with DriverTransport and the specified timeout.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &DriverTransport{},
		Timeout:   timeout,
	}
}
