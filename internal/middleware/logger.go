package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger returns a middleware that logs HTTP requests using zap logger.
// API paths (/api/*) log at info, server errors at error, everything else at debug.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)

		path := c.Request.URL.Path
		status := c.Writer.Status()

		lvl := zapcore.DebugLevel
		switch {
		case status >= 500:
			lvl = zapcore.ErrorLevel
		case strings.HasPrefix(path, "/api/"):
			lvl = zapcore.InfoLevel
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("latency", dur),
			zap.String("clientIP", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if ce := log.Check(lvl, "HTTP"); ce != nil {
			ce.Write(fields...)
		}
	}
}
