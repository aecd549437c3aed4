package inspect

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webpilot/internal/validator"
)

func TestHandler_EchoHeader(t *testing.T) {
	t.Run("should return the named header value", func(t *testing.T) {
		handler := NewHandler()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/echo_header/X-Team-Site", nil)
		req.Header.Set("X-Team-Site", "fixtures")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("name")
		c.SetParamValues("X-Team-Site")

		err := handler.EchoHeader(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "fixtures", rec.Body.String())
	})

	t.Run("should return an empty body for an absent header", func(t *testing.T) {
		handler := NewHandler()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/echo_header/X-Missing", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("name")
		c.SetParamValues("X-Missing")

		err := handler.EchoHeader(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestHandler_Submit(t *testing.T) {
	t.Run("should accept a valid payload", func(t *testing.T) {
		handler := NewHandler()

		e := echo.New()
		e.Validator = validator.New()

		body, _ := json.Marshal(SubmitRequest{Name: "Jonas", Email: "jonas@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/submit", bytes.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Submit(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response SubmitResponse
		json.Unmarshal(rec.Body.Bytes(), &response)
		assert.True(t, response.Ok)
		assert.Equal(t, "Jonas", response.Name)
	})

	t.Run("should return 400 when name is missing", func(t *testing.T) {
		handler := NewHandler()

		e := echo.New()
		e.Validator = validator.New()

		body, _ := json.Marshal(SubmitRequest{Email: "jonas@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/submit", bytes.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Submit(c)
		require.Error(t, err)

		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}
