// Package transport dispatches browse requests either against an in-process
// application handler or over the real network. Both transports execute a
// single request and never follow redirects themselves; redirect handling is
// layered on top by the caller.
package transport

import (
	"bytes"
	"context"
	"net/http"

	"webpilot/domain/browse"
)

// Transport executes one request and returns the raw response.
type Transport interface {
	Do(ctx context.Context, req *browse.Request) (*browse.Response, error)
}

func newHTTPRequest(ctx context.Context, req *browse.Request) (*http.Request, error) {
	hreq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		hreq.Header.Set(k, v)
	}
	if req.ContentType != "" {
		hreq.Header.Set("Content-Type", req.ContentType)
	}
	return hreq, nil
}
