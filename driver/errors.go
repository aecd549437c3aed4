package driver

import "fmt"

// ServerError reports a server-side failure status on an otherwise completed
// navigation. It is only returned when the driver is configured to raise on
// such statuses; the session still advances to the failing page first.
type ServerError struct {
	Method string
	Path   string
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d on %s %s", e.Status, e.Method, e.Path)
}
