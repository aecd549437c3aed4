package transport

import (
	"context"
	"io"
	"net/http"
	"time"

	"webpilot/domain/browse"
	"webpilot/internal/httpclient"
)

// DefaultTimeout bounds remote requests unless overridden.
const DefaultTimeout = 30 * time.Second

type NetConf struct {
	Timeout time.Duration
	Client  *http.Client
}

type NetOpts func(*NetConf)

func NewNetConf() *NetConf {
	return &NetConf{
		Timeout: DefaultTimeout,
	}
}

func WithTimeout(timeout time.Duration) NetOpts {
	return func(n *NetConf) {
		n.Timeout = timeout
	}
}

// WithHTTPClient swaps in a caller-provided client. The client is copied so
// the redirect policy below never leaks back into the original.
func WithHTTPClient(client *http.Client) NetOpts {
	return func(n *NetConf) {
		n.Client = client
	}
}

// Network performs requests over a real connection.
type Network struct {
	client *http.Client
}

// NewNetwork builds a network transport. Redirects are surfaced to the
// caller rather than followed by the underlying client.
func NewNetwork(options ...NetOpts) *Network {
	conf := NewNetConf()
	for _, o := range options {
		o(conf)
	}

	var client http.Client
	if conf.Client != nil {
		client = *conf.Client
	} else {
		client = *httpclient.NewClient(conf.Timeout)
	}
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &Network{client: &client}
}

// Do implements Transport over the wire. Failures to reach the host are
// wrapped in a NetworkError.
func (n *Network) Do(ctx context.Context, req *browse.Request) (*browse.Response, error) {
	hreq, err := newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	res, err := n.client.Do(hreq)
	if err != nil {
		return nil, &NetworkError{URL: req.URL, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &NetworkError{URL: req.URL, Err: err}
	}

	return &browse.Response{
		Status:   res.StatusCode,
		Headers:  res.Header,
		Body:     body,
		FinalURL: req.URL,
	}, nil
}
