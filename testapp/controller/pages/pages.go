// Package pages serves the plain browsable pages of the test application.
package pages

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
)

const welcomePage = `<!DOCTYPE html>
<html>
<head><title>webpilot test app</title></head>
<body>
<h1>Hello world!</h1>
<ul>
  <li><a href="/host">Current host</a></li>
  <li><a href="/form">A form</a></li>
  <li><a href="/redirect/3/times">A short redirect chain</a></li>
</ul>
</body>
</html>`

const formPage = `<!DOCTYPE html>
<html>
<head><title>A form</title></head>
<body>
<form action="/form" method="post">
  <input type="text" name="name" />
  <input type="text" name="locale" />
  <input type="submit" value="Send" />
</form>
</body>
</html>`

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h Handler) Welcome(c echo.Context) error {
	return c.HTML(http.StatusOK, welcomePage)
}

// Host reports which host the request landed on, so tests can tell local and
// remote dispatch apart by body content alone.
func (h Handler) Host(c echo.Context) error {
	return c.String(http.StatusOK, fmt.Sprintf("Current host is %s://%s", c.Scheme(), c.Request().Host))
}

func (h Handler) Form(c echo.Context) error {
	return c.HTML(http.StatusOK, formPage)
}

// SubmitForm echoes the posted fields back in a stable order.
func (h Handler) SubmitForm(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return c.String(http.StatusBadRequest, "unreadable form")
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Form submitted\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, strings.Join(params[k], ","))
	}
	return c.String(http.StatusOK, b.String())
}

func (h Handler) Error(c echo.Context) error {
	return echo.NewHTTPError(http.StatusInternalServerError, "boom")
}

func Register(g *echo.Group) {
	h := NewHandler()

	g.GET("/", h.Welcome)
	g.GET("/host", h.Host)
	g.GET("/form", h.Form)
	g.POST("/form", h.SubmitForm)
	g.GET("/error", h.Error)
}
