package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет access-лог каждого запроса.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithField("component", "http")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			entry.WithFields(fields).WithError(c.Errors[0]).Error("request failed")
			return
		}
		entry.WithFields(fields).Info("request processed")
	}
}
