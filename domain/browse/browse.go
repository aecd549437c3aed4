// Package browse holds the value types a navigation moves through: the
// request handed to a transport, the response it produces, and the redirect
// chain connecting them.
package browse

import (
	"fmt"
	"net/http"
	"net/url"
)

// Request describes one outgoing request before a transport is selected.
// URL is absolute by the time a transport sees it; Headers carry the
// driver's configured header set and are attached verbatim on every hop.
type Request struct {
	Method      string
	URL         string
	Headers     map[string]string
	Body        []byte
	ContentType string
}

// Response is the uniform result surface both transports produce. FinalURL
// is the URL of the last non-redirecting hop, or the request URL when
// redirects were not followed.
type Response struct {
	Status   int
	Headers  http.Header
	Body     []byte
	FinalURL string
}

// IsRedirect reports whether the response asks the client to go elsewhere:
// a 3xx status carrying a Location header. A 3xx without Location is
// terminal content.
func (r *Response) IsRedirect() bool {
	return r.Status >= http.StatusMultipleChoices && r.Status < http.StatusBadRequest && r.Location() != ""
}

// Location returns the Location header, or "" when absent.
func (r *Response) Location() string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers.Get("Location")
}

// BodyString returns the response body as a string.
func (r *Response) BodyString() string {
	return string(r.Body)
}

// RedirectChain is the ordered list of absolute URLs visited while resolving
// one navigation, the initial request first. It is rebuilt per navigation
// and discarded on reset.
type RedirectChain []string

// Hops counts the redirects that were followed.
func (c RedirectChain) Hops() int {
	if len(c) < 2 {
		return 0
	}
	return len(c) - 1
}

// Link is a hyperlink the caller discovered on the current page. Locating
// elements in the page is the caller's job; the driver only navigates.
type Link struct {
	Href string
}

// Form is a form ready for submission. Method defaults to POST; Fields are
// urlencoded into the request body, or into the query string for GET forms.
type Form struct {
	Action string
	Method string
	Fields url.Values
}

// Resolve resolves a possibly-relative reference against a base URL and
// returns the absolute result. Absolute references resolve to themselves.
func Resolve(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", base, err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid target url %q: %w", ref, err)
	}
	return b.ResolveReference(r).String(), nil
}
