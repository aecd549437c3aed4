package pages

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Welcome(t *testing.T) {
	t.Run("should serve the landing page", func(t *testing.T) {
		handler := NewHandler()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Welcome(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Hello world!")
	})
}

func TestHandler_Host(t *testing.T) {
	t.Run("should report the request host", func(t *testing.T) {
		handler := NewHandler()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "http://app.test/host", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Host(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Current host is http://app.test", rec.Body.String())
	})

	t.Run("should keep the port when the host carries one", func(t *testing.T) {
		handler := NewHandler()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "http://app.test:3000/host", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Host(c)
		require.NoError(t, err)
		assert.Equal(t, "Current host is http://app.test:3000", rec.Body.String())
	})
}

func TestHandler_SubmitForm(t *testing.T) {
	t.Run("should echo submitted fields in stable order", func(t *testing.T) {
		handler := NewHandler()

		e := echo.New()
		form := "name=Jonas&locale=de"
		req := httptest.NewRequest(http.MethodPost, "/form", strings.NewReader(form))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.SubmitForm(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Form submitted\nlocale=de\nname=Jonas\n", rec.Body.String())
	})
}

func TestHandler_Error(t *testing.T) {
	t.Run("should fail with a server error", func(t *testing.T) {
		handler := NewHandler()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/error", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Error(c)
		require.Error(t, err)

		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, he.Code)
	})
}
