package transport

import (
	"context"
	"net/http"
	"net/http/httptest"

	"webpilot/domain/browse"
)

// Local dispatches requests straight into an http.Handler without opening a
// socket. The handler is typically the application under test.
type Local struct {
	handler http.Handler
}

// NewLocal wraps the given application handler.
func NewLocal(handler http.Handler) *Local {
	return &Local{handler: handler}
}

// Do implements Transport by calling the handler's ServeHTTP directly.
func (l *Local) Do(ctx context.Context, req *browse.Request) (*browse.Response, error) {
	if l.handler == nil {
		return nil, ErrNoApplication
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hreq, err := newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	// Server handlers read the host from the request, not the URL.
	if hreq.Host == "" {
		hreq.Host = hreq.URL.Host
	}
	hreq.RequestURI = hreq.URL.RequestURI()

	rec := httptest.NewRecorder()
	l.handler.ServeHTTP(rec, hreq)
	res := rec.Result()
	defer res.Body.Close()

	return &browse.Response{
		Status:   res.StatusCode,
		Headers:  res.Header,
		Body:     rec.Body.Bytes(),
		FinalURL: req.URL,
	}, nil
}
