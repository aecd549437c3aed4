package browse

// Session is the mutable navigation state owned by a single driver: the last
// resolved URL, the last response, and the redirect chain that produced it.
// Configured headers and redirect policy are driver construction config, not
// session state, and survive a reset.
type Session struct {
	LastURL string
	Last    *Response
	Chain   RedirectChain
}

// NewSession returns an empty session with no navigation context.
func NewSession() *Session {
	return &Session{}
}

// Apply records a completed navigation. LastURL moves to the response's
// final URL, so subsequent relative targets resolve and classify against it.
func (s *Session) Apply(resp *Response, chain RedirectChain) {
	s.LastURL = resp.FinalURL
	s.Last = resp
	s.Chain = chain
}

// Reset clears all navigation context. A previously remote session
// classifies relative paths as local again afterwards.
func (s *Session) Reset() {
	s.LastURL = ""
	s.Last = nil
	s.Chain = nil
}

// Visited reports whether any navigation has completed since the session
// was created or last reset.
func (s *Session) Visited() bool {
	return s.LastURL != ""
}
