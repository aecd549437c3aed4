package testapp

import (
	"github.com/labstack/echo/v4"

	"webpilot/testapp/controller/health"
	"webpilot/testapp/controller/inspect"
	"webpilot/testapp/controller/pages"
	"webpilot/testapp/controller/redirects"
)

func AddRoutes(e *echo.Echo) {
	root := e.Group("")

	health.Register(root)
	pages.Register(root)
	redirects.Register(root)
	inspect.Register(root)
}
