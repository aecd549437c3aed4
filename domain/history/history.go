package history

import (
	"time"
)

// Run is one driver session. The environment fields describe the machine the
// run executed on.
type Run struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	Hostname        string    `json:"hostname"`
	Platform        string    `json:"platform"`
	PlatformVersion string    `json:"platform_version"`
	Arch            string    `json:"arch"`
}

// Navigation is one completed driver operation within a run. Error holds the
// failure message for operations that did not produce a response.
type Navigation struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	RunID      string    `json:"run_id"`
	Method     string    `json:"method"`
	RequestURL string    `json:"request_url"`
	FinalURL   string    `json:"final_url"`
	Status     int       `json:"status"`
	Remote     bool      `json:"remote"`
	Hops       int       `json:"hops"`
	Error      string    `json:"error"`
}

type NavigationFilters struct {
	RunID  *string
	Remote *bool
}
