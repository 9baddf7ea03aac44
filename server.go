package main

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Cicchelli/portifoliowebstephan/internal/config"
	"github.com/Cicchelli/portifoliowebstephan/internal/content"
	"github.com/Cicchelli/portifoliowebstephan/internal/metrics"
	"github.com/Cicchelli/portifoliowebstephan/internal/page"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// newRouter builds the web server: the portfolio page, its static assets,
// a health check and the metrics endpoint.
func newRouter(cfg config.Config, m *metrics.Metrics) (*gin.Engine, error) {
	tmpl, err := page.Parse()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(requestIDMiddleware(), requestLogger(gin.DefaultWriter), gin.Recovery(), m.Middleware())
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(page.Static()))

	// Home page route. Every load starts in light mode with all sections
	// hidden; the browser reveals them as they scroll into view.
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, page.IndexTemplate, page.NewView(content.Default(), revealOptions(cfg)))
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.GET("/metrics", gin.WrapH(m.Handler()))

	return r, nil
}

// requestIDMiddleware tags every request with an ID, keeping one supplied
// by a proxy.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// requestLogger writes one line per request, tagged with its request ID.
func requestLogger(out io.Writer) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Output: out,
		Formatter: func(p gin.LogFormatterParams) string {
			return fmt.Sprintf("[GIN] %s | %3d | %13v | %15s | %-7s %#v request_id=%v\n",
				p.TimeStamp.Format(time.DateTime),
				p.StatusCode,
				p.Latency,
				p.ClientIP,
				p.Method,
				p.Path,
				p.Keys[requestIDKey],
			)
		},
	})
}
