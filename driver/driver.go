// Package driver implements a single-session browsing facade for automated
// tests. One driver navigates, clicks links and submits forms against either
// an in-process application or real remote hosts, choosing the transport per
// URL and re-choosing it on every redirect hop.
//
// A driver is sequential by design. Operations mutate one shared session, so
// it must not be used from multiple goroutines at once.
package driver

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"

	"webpilot/domain/browse"
	"webpilot/domain/history"
	"webpilot/internal/classifier"
	"webpilot/internal/redirect"
	"webpilot/internal/runinfo"
	"webpilot/internal/transport"
)

type Driver struct {
	conf     *Conf
	session  *browse.Session
	follower *redirect.Follower
	local    transport.Transport
	network  transport.Transport
	runID    string
}

// New builds a driver around the application under test. app may be nil when
// only remote hosts will ever be visited.
func New(app http.Handler, options ...Opts) *Driver {
	conf := NewConf()
	for _, o := range options {
		o(conf)
	}

	network := transport.NewNetwork(transport.WithTimeout(conf.NetworkTimeout))
	return NewWithTransports(transport.NewLocal(app), network, conf)
}

// NewWithTransports wires explicit transports. Tests use it to substitute
// scripted transports for the real ones.
func NewWithTransports(local, network transport.Transport, conf *Conf) *Driver {
	if conf == nil {
		conf = NewConf()
	}

	d := &Driver{
		conf:    conf,
		session: browse.NewSession(),
		follower: &redirect.Follower{
			Limit:  conf.RedirectLimit,
			Follow: conf.FollowRedirects,
		},
		local:   local,
		network: network,
	}
	d.startRun()
	return d
}

// Visit navigates to rawurl, which may be absolute or relative to the
// current location.
func (d *Driver) Visit(ctx context.Context, rawurl string) (*browse.Response, error) {
	return d.navigate(ctx, &browse.Request{
		Method: http.MethodGet,
		URL:    rawurl,
	})
}

// ClickLink follows a link found on the current page. A relative href is
// resolved against the last visited URL, so a link discovered on a remote
// page stays remote.
func (d *Driver) ClickLink(ctx context.Context, link browse.Link) (*browse.Response, error) {
	return d.navigate(ctx, &browse.Request{
		Method: http.MethodGet,
		URL:    link.Href,
	})
}

// SubmitForm sends the form's fields to its action target. GET forms encode
// the fields into the query string, everything else posts an urlencoded body.
func (d *Driver) SubmitForm(ctx context.Context, form browse.Form) (*browse.Response, error) {
	method := strings.ToUpper(form.Method)
	if method == "" {
		method = http.MethodPost
	}

	req := &browse.Request{
		Method: method,
		URL:    form.Action,
	}
	if len(form.Fields) > 0 {
		if method == http.MethodGet {
			target, err := appendQuery(form.Action, form.Fields)
			if err != nil {
				return nil, err
			}
			req.URL = target
		} else {
			req.Body = []byte(form.Fields.Encode())
			req.ContentType = "application/x-www-form-urlencoded"
		}
	}
	return d.navigate(ctx, req)
}

// IsRemote reports whether rawurl would be dispatched over the network,
// given the current session and host roots.
func (d *Driver) IsRemote(rawurl string) (bool, error) {
	return classifier.IsRemote(rawurl, d.session.LastURL, d.conf.Roots)
}

// SetHostRoots swaps the classification roots. The change applies from the
// next classification on, mid-session included.
func (d *Driver) SetHostRoots(roots browse.HostRoots) {
	d.conf.Roots = roots
}

// Reset clears the session: last URL, last response and redirect chain.
// Configured headers and the redirect policy are construction-time
// configuration and survive a reset.
func (d *Driver) Reset() {
	d.session.Reset()
}

// LastURL returns the URL of the last completed navigation, or an empty
// string right after construction or a reset.
func (d *Driver) LastURL() string {
	return d.session.LastURL
}

// LastResponse returns the response of the last completed navigation.
func (d *Driver) LastResponse() *browse.Response {
	return d.session.Last
}

// Chain returns the URLs requested while resolving the last completed
// navigation, the initial one included.
func (d *Driver) Chain() browse.RedirectChain {
	return d.session.Chain
}

func (d *Driver) navigate(ctx context.Context, req *browse.Request) (*browse.Response, error) {
	target, err := d.resolveTarget(req.URL)
	if err != nil {
		d.record(req, nil, nil, err)
		return nil, err
	}
	req.URL = target
	req.Headers = mergeHeaders(d.conf.Headers, req.Headers)

	resp, chain, err := d.follower.Resolve(ctx, req, d.pickTransport)
	if err != nil {
		d.record(req, nil, chain, err)
		return nil, err
	}

	d.session.Apply(resp, chain)
	d.record(req, resp, chain, nil)

	if d.conf.RaiseServerErrors && resp.Status >= http.StatusBadRequest {
		return resp, d.serverError(req.Method, resp)
	}
	return resp, nil
}

// resolveTarget turns the operation's URL into an absolute one. Relative
// URLs resolve against the last visited URL, or the configured base when
// nothing was visited yet.
func (d *Driver) resolveTarget(rawurl string) (string, error) {
	base := d.session.LastURL
	if base == "" {
		base = d.conf.Roots.Base()
	}
	return browse.Resolve(base, rawurl)
}

// pickTransport classifies one hop's URL. Classification reads the roots
// fresh every time because they may change between operations.
func (d *Driver) pickTransport(rawurl string) (transport.Transport, error) {
	remote, err := classifier.IsRemote(rawurl, d.session.LastURL, d.conf.Roots)
	if err != nil {
		return nil, err
	}
	if remote {
		return d.network, nil
	}
	return d.local, nil
}

func (d *Driver) serverError(method string, resp *browse.Response) error {
	path := resp.FinalURL
	if u, err := url.Parse(resp.FinalURL); err == nil && u.Path != "" {
		path = u.Path
	}
	return &ServerError{Method: method, Path: path, Status: resp.Status}
}

func (d *Driver) startRun() {
	if d.conf.Recorder == nil {
		return
	}

	collector := d.conf.RunInfo
	if collector == nil {
		collector = runinfo.New()
	}

	ctx := context.Background()
	info, err := collector.Collect(ctx)
	if err != nil {
		log.Warnf("run environment probe incomplete: %v", err)
	}

	run := &history.Run{
		Hostname:        info.Hostname,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		Arch:            info.Arch,
	}
	if err := d.conf.Recorder.CreateRun(ctx, run); err != nil {
		log.Warnf("history: create run failed: %v", err)
		return
	}
	d.runID = run.ID
}

// record archives one navigation row. It runs on a fresh context so a
// cancelled navigation still gets recorded, and it never fails the
// navigation itself.
func (d *Driver) record(req *browse.Request, resp *browse.Response, chain browse.RedirectChain, navErr error) {
	if d.conf.Recorder == nil || d.runID == "" {
		return
	}

	nav := &history.Navigation{
		RunID:      d.runID,
		Method:     req.Method,
		RequestURL: req.URL,
		Hops:       chain.Hops(),
	}
	if remote, err := classifier.IsRemote(req.URL, "", d.conf.Roots); err == nil {
		nav.Remote = remote
	}
	if resp != nil {
		nav.FinalURL = resp.FinalURL
		nav.Status = resp.Status
	}
	if navErr != nil {
		nav.Error = navErr.Error()
	}

	if err := d.conf.Recorder.CreateNavigation(context.Background(), nav); err != nil {
		log.Warnf("history: record navigation failed: %v", err)
	}
}

func mergeHeaders(configured, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(configured)+len(extra))
	for k, v := range configured {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

func appendQuery(action string, fields url.Values) (string, error) {
	u, err := url.Parse(action)
	if err != nil {
		return "", err
	}

	q := u.Query()
	for k, vs := range fields {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
