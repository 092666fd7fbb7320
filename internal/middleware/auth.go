package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trinextgen/site-api/internal/modules/serializer"
	"github.com/trinextgen/site-api/internal/modules/service"
)

// AdminAuth returns a middleware that authenticates requests using admin bearer tokens.
// It resolves the token to an admin and sets it in the context under "admin".
// It also sets the admin_id attribute on the current span for telemetry filtering.
func AdminAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		admin := auth.Resolve(c.Request.Context(), raw)
		if admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			span.SetAttributes(attribute.String("admin_id", admin.ID.String()))
		}

		c.Set("admin", admin)
		c.Next()
	}
}
