// Package redirects serves configurable redirect chains, including chains
// that jump to another host.
package redirects

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Countdown redirects to itself with a decremented counter until it reaches
// zero, producing a chain of exactly :times hops.
func (h Handler) Countdown(c echo.Context) error {
	times, err := strconv.Atoi(c.Param("times"))
	if err != nil || times < 0 {
		return c.String(http.StatusBadRequest, "times must be a non-negative integer")
	}

	if times == 0 {
		return c.String(http.StatusOK, "redirection complete")
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/redirect/%d/times", times-1))
}

// To redirects wherever the url parameter points, other hosts included.
func (h Handler) To(c echo.Context) error {
	target := c.QueryParam("url")
	if target == "" {
		return c.String(http.StatusBadRequest, "url parameter is required")
	}
	return c.Redirect(http.StatusFound, target)
}

// WithCode redirects with a caller-chosen 3xx status.
func (h Handler) WithCode(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil || code < 300 || code > 399 {
		return c.String(http.StatusBadRequest, "code must be a 3xx status")
	}

	target := c.QueryParam("url")
	if target == "" {
		return c.String(http.StatusBadRequest, "url parameter is required")
	}
	return c.Redirect(code, target)
}

func Register(g *echo.Group) {
	h := NewHandler()

	g.GET("/redirect/:times/times", h.Countdown)
	g.GET("/redirect_to", h.To)
	g.GET("/redirect_with/:code", h.WithCode)
}
