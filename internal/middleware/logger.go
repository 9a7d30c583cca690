package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger リクエストごとに1行のログを出力する。
// 5xx は Error、4xx は Warn、それ以外は Info
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var e *zerolog.Event
		switch {
		case status >= 500:
			e = logger.Error()
			if len(c.Errors) > 0 {
				e = e.Err(c.Errors.Last())
			}
		case status >= 400:
			e = logger.Warn()
		default:
			e = logger.Info()
		}

		if claims := GetClaims(c); claims != nil {
			e = e.Str("subject", claims.Subject)
		}

		e.
			Dur("latency", time.Since(start)).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("uri", c.Request.RequestURI).
			Str("route", c.FullPath()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Msg("API")
	}
}

// Recovery panic を 500 に変換してログに残す
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("uri", c.Request.RequestURI).
			Msg("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "internal server error",
		})
	})
}
