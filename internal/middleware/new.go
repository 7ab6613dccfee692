package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"wellness-planner/pkg/log"
)

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}

// Logger logs one line per request. Server errors log at error level, client
// errors at warn, the rest at debug.
func (mw Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		switch {
		case status >= 500:
			mw.l.Errorf(ctx, "http %s %s %d %s %s", c.Request.Method, path, status, latency, c.Errors.String())
		case status >= 400:
			mw.l.Warnf(ctx, "http %s %s %d %s", c.Request.Method, path, status, latency)
		default:
			mw.l.Debugf(ctx, "http %s %s %d %s", c.Request.Method, path, status, latency)
		}
	}
}
