package browse

// DefaultBase is the conventional base URL for relative targets when no
// navigation has happened yet and no host root is configured. It mirrors the
// www.example.com convention test tooling has always used.
const DefaultBase = "http://www.example.com"

// HostRoots is the host configuration consulted on every classification
// call. It is a plain value handed to the classifier each time, so swapping
// it between operations takes effect immediately; nothing caches it.
//
// AppHost, when set, is the application under test's own base URL and wins
// over DefaultHost. LocalHosts lists extra hostnames treated as local when
// classification falls through to DefaultHost.
type HostRoots struct {
	AppHost     string   `yaml:"app_host"`
	DefaultHost string   `yaml:"default_host"`
	LocalHosts  []string `yaml:"local_hosts"`
}

// IsLocalHost reports whether host is a member of the additional local
// hostname list. Comparison is exact string equality.
func (r HostRoots) IsLocalHost(host string) bool {
	for _, h := range r.LocalHosts {
		if h == host {
			return true
		}
	}
	return false
}

// Base returns the URL relative targets resolve against when the session has
// no prior navigation: AppHost first, then DefaultHost, then DefaultBase.
func (r HostRoots) Base() string {
	if r.AppHost != "" {
		return r.AppHost
	}
	if r.DefaultHost != "" {
		return r.DefaultHost
	}
	return DefaultBase
}
