package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBodyLimitRouter(max int64, read *error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(BodyLimit(max))
	r.POST("/api/contact", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		*read = err
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusCreated)
	})
	return r
}

func TestBodyLimit(t *testing.T) {
	t.Run("within the cap", func(t *testing.T) {
		var readErr error
		r := newBodyLimitRouter(16, &readErr)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{"name":"Ada"}`)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, readErr)
	})

	t.Run("declared length over the cap", func(t *testing.T) {
		called := false
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(BodyLimit(16))
		r.POST("/api/contact", func(c *gin.Context) { called = true })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/api/contact", strings.NewReader(strings.Repeat("x", 17))))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "request body too large")
		assert.False(t, called)
	})

	t.Run("unknown length stops at the cap", func(t *testing.T) {
		var readErr error
		r := newBodyLimitRouter(16, &readErr)

		req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(strings.Repeat("x", 1<<10)))
		req.ContentLength = -1
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var tooLarge *http.MaxBytesError
		require.True(t, errors.As(readErr, &tooLarge))
		assert.Equal(t, int64(16), tooLarge.Limit)
	})
}
