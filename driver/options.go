package driver

import (
	"time"

	"webpilot/domain/browse"
	"webpilot/domain/history"
	"webpilot/internal/redirect"
	"webpilot/internal/runinfo"
	"webpilot/internal/transport"
)

// Conf is the construction-time configuration of a driver. Headers and the
// redirect policy are fixed for the driver's lifetime; host roots may be
// swapped between operations via SetHostRoots.
type Conf struct {
	Headers           map[string]string
	FollowRedirects   bool
	RedirectLimit     int
	Roots             browse.HostRoots
	RaiseServerErrors bool
	Recorder          history.Repository
	RunInfo           runinfo.Collector
	NetworkTimeout    time.Duration
}

type Opts func(*Conf)

func NewConf() *Conf {
	return &Conf{
		Headers:         map[string]string{},
		FollowRedirects: true,
		RedirectLimit:   redirect.DefaultLimit,
		// The built-in base host dispatches in-process unless roots are
		// configured otherwise, so a fresh driver always has a local home.
		Roots:          browse.HostRoots{DefaultHost: browse.DefaultBase},
		NetworkTimeout: transport.DefaultTimeout,
	}
}

// WithHeaders sets the header set attached to every request the driver
// issues, every redirect hop included. The map is copied.
func WithHeaders(headers map[string]string) Opts {
	return func(c *Conf) {
		for k, v := range headers {
			c.Headers[k] = v
		}
	}
}

// WithHeader adds a single persistent header.
func WithHeader(name, value string) Opts {
	return func(c *Conf) {
		c.Headers[name] = value
	}
}

// WithRedirectLimit bounds redirect chains. Non-positive limits are ignored.
func WithRedirectLimit(limit int) Opts {
	return func(c *Conf) {
		if limit > 0 {
			c.RedirectLimit = limit
		}
	}
}

// WithoutRedirects makes the driver return the first response untouched,
// even when it is a redirect.
func WithoutRedirects() Opts {
	return func(c *Conf) {
		c.FollowRedirects = false
	}
}

func WithHostRoots(roots browse.HostRoots) Opts {
	return func(c *Conf) {
		c.Roots = roots
	}
}

// WithRaiseServerErrors makes navigations fail with a ServerError when the
// final status is 400 or above.
func WithRaiseServerErrors() Opts {
	return func(c *Conf) {
		c.RaiseServerErrors = true
	}
}

// WithRecorder archives one run row per driver and one navigation row per
// operation into the given repository.
func WithRecorder(repo history.Repository) Opts {
	return func(c *Conf) {
		c.Recorder = repo
	}
}

// WithRunInfo overrides the run-environment collector used by the recorder.
func WithRunInfo(collector runinfo.Collector) Opts {
	return func(c *Conf) {
		c.RunInfo = collector
	}
}

func WithNetworkTimeout(timeout time.Duration) Opts {
	return func(c *Conf) {
		c.NetworkTimeout = timeout
	}
}
