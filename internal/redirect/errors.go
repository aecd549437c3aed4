package redirect

import (
	"errors"
	"fmt"

	"webpilot/domain/browse"
)

// ErrInfiniteRedirect marks a chain that ran past the configured hop limit.
// It signals a likely redirect loop or misconfiguration, not a transient
// fault, so callers should not retry.
var ErrInfiniteRedirect = errors.New("infinite redirect loop")

// LimitError reports the chain that exceeded the limit.
type LimitError struct {
	Limit int
	Chain browse.RedirectChain
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("stopped after %d redirects (limit: %d)", e.Chain.Hops(), e.Limit)
}

func (e *LimitError) Unwrap() error { return ErrInfiniteRedirect }
