// Package redirect resolves HTTP redirect chains hop by hop.
//
// The follower never lets the underlying transport chase redirects itself.
// Each 3xx response surfaces here, where the next hop's URL is resolved
// against the current one and the transport is re-selected, because a
// redirect can cross from an in-process host to a remote one or back.
package redirect

import (
	"context"
	"net/http"

	"webpilot/domain/browse"
	"webpilot/internal/transport"
)

// DefaultLimit caps how many consecutive redirects are followed.
const DefaultLimit = 5

// SelectorFunc picks the transport for one hop's absolute URL.
type SelectorFunc func(rawurl string) (transport.Transport, error)

// Follower follows redirect chains up to Limit hops. With Follow disabled the
// first response is returned untouched, redirect or not. A Limit of zero or
// less disallows any hop.
type Follower struct {
	Limit  int
	Follow bool
}

// New returns a follower with the default policy.
func New() *Follower {
	return &Follower{
		Limit:  DefaultLimit,
		Follow: true,
	}
}

// Resolve dispatches req and walks the redirect chain until a non-redirect
// response arrives. The returned chain lists every URL requested, starting
// with the initial one, and is populated even when an error cuts the walk
// short. Exceeding the hop limit fails with a LimitError.
func (f *Follower) Resolve(ctx context.Context, req *browse.Request, pick SelectorFunc) (*browse.Response, browse.RedirectChain, error) {
	chain := browse.RedirectChain{req.URL}
	current := *req

	hops := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, chain, err
		}

		tr, err := pick(current.URL)
		if err != nil {
			return nil, chain, err
		}

		resp, err := tr.Do(ctx, &current)
		if err != nil {
			return nil, chain, err
		}

		if !f.Follow || !resp.IsRedirect() {
			return resp, chain, nil
		}

		hops++
		if hops > f.Limit {
			return nil, chain, &LimitError{Limit: f.Limit, Chain: chain}
		}

		next, err := browse.Resolve(current.URL, resp.Location())
		if err != nil {
			return nil, chain, err
		}

		current = nextRequest(&current, next, resp.Status)
		chain = append(chain, next)
	}
}

// nextRequest builds the follow-up request for one hop. A 301, 302 or 303
// turns everything but HEAD into a bodyless GET; 307 and 308 keep the method
// and body. The configured header set rides along on every hop.
func nextRequest(prev *browse.Request, nextURL string, status int) browse.Request {
	next := browse.Request{
		Method:      prev.Method,
		URL:         nextURL,
		Headers:     prev.Headers,
		Body:        prev.Body,
		ContentType: prev.ContentType,
	}

	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther:
		if prev.Method != http.MethodHead {
			next.Method = http.MethodGet
		}
		next.Body = nil
		next.ContentType = ""
	}

	return next
}
