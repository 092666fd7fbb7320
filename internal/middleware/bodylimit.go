package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trinextgen/site-api/internal/modules/serializer"
)

// BodyLimit caps request bodies at max bytes. A declared length over the cap
// is refused with 413 up front; bodies without one fail to bind once the
// reader passes the cap.
func BodyLimit(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > max {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				serializer.Err(http.StatusRequestEntityTooLarge, "request body too large", nil))
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		}
		c.Next()
	}
}
