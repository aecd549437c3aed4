package transport

import (
	"errors"
	"fmt"
)

// ErrNoApplication is returned by the local transport when it was built
// without an application handler.
var ErrNoApplication = errors.New("no application handler configured")

// NetworkError reports a failure to reach a remote host. It wraps the
// underlying cause so callers can still inspect DNS errors, refused
// connections and timeouts.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure for %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
