// Package health is for the health route
package health

import (
	"net/http"

	"webpilot/version"

	"github.com/labstack/echo/v4"
)

type (
	Handler    struct{}
	OkResponse struct {
		Ok      bool   `json:"ok"`
		Version string `json:"version"`
	}
)

func NewHandler() *Handler {
	return &Handler{}
}

func (h Handler) GET(c echo.Context) error {
	ok := OkResponse{
		Ok:      true,
		Version: version.Version,
	}
	return c.JSON(http.StatusOK, ok)
}

func Register(g *echo.Group) {
	h := NewHandler()

	g.GET("/health", h.GET)
}
