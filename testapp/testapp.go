// Package testapp ships the reference application the driver is exercised
// against. It serves pages, bounded redirect chains, cross-host redirects and
// header echoes, which is everything a browsing session needs on the other
// side of the wire.
package testapp

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"webpilot/internal/validator"
)

// New builds the application with all routes registered. The returned echo
// instance is an http.Handler, so it can be dispatched in-process by the
// driver or served on a real port.
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Validator = validator.New()

	AddRoutes(e)
	return e
}
