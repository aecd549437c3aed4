// Package inspect lets a browsing session verify what actually arrived at
// the server: injected headers and posted payloads.
package inspect

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type (
	Handler       struct{}
	SubmitRequest struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"omitempty,email"`
	}
	SubmitResponse struct {
		Ok   bool   `json:"ok"`
		Name string `json:"name"`
	}
)

func NewHandler() *Handler {
	return &Handler{}
}

// EchoHeader returns the value of the named request header as the body.
func (h Handler) EchoHeader(c echo.Context) error {
	name := c.Param("name")
	return c.String(http.StatusOK, c.Request().Header.Get(name))
}

func (h Handler) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SubmitResponse{Ok: true, Name: req.Name})
}

func Register(g *echo.Group) {
	h := NewHandler()

	g.GET("/echo_header/:name", h.EchoHeader)
	g.POST("/submit", h.Submit)
}
